package extensions

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHookManagerExecute(t *testing.T) {
	ctx := context.Background()

	t.Run("runs hooks in registration order", func(t *testing.T) {
		m := NewHookManager()
		var trail []string

		m.Register(HookAfterRebuild, func(_ context.Context, _ interface{}) error {
			trail = append(trail, "notify")
			return nil
		})
		m.Register(HookAfterRebuild, func(_ context.Context, _ interface{}) error {
			trail = append(trail, "audit")
			return nil
		})

		require.NoError(t, m.Execute(ctx, HookAfterRebuild, &HookData{CelebrityID: "c-1"}))
		assert.Equal(t, []string{"notify", "audit"}, trail)
	})

	t.Run("passes the data through untouched", func(t *testing.T) {
		m := NewHookManager()
		var seen *HookData

		m.Register(HookAfterSwap, func(_ context.Context, data interface{}) error {
			seen = data.(*HookData)
			return nil
		})

		payload := &HookData{CelebrityID: "c-2", Operation: "manual", NodeCount: 7}
		require.NoError(t, m.Execute(ctx, HookAfterSwap, payload))
		assert.Same(t, payload, seen)
	})

	t.Run("the first failure stops the chain", func(t *testing.T) {
		m := NewHookManager()
		boom := errors.New("webhook refused")
		ran := 0

		m.Register(HookBeforeRebuild, func(_ context.Context, _ interface{}) error {
			return boom
		})
		m.Register(HookBeforeRebuild, func(_ context.Context, _ interface{}) error {
			ran++
			return nil
		})

		err := m.Execute(ctx, HookBeforeRebuild, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), string(HookBeforeRebuild))
		assert.Zero(t, ran)
	})

	t.Run("a point with no hooks is a no-op", func(t *testing.T) {
		m := NewHookManager()
		assert.NoError(t, m.Execute(ctx, HookAfterScore, nil))
	})

	t.Run("clear drops one point and leaves the rest", func(t *testing.T) {
		m := NewHookManager()
		ran := make(map[string]int)

		m.Register(HookAfterRebuild, func(_ context.Context, _ interface{}) error {
			ran["rebuild"]++
			return nil
		})
		m.Register(HookAfterDraft, func(_ context.Context, _ interface{}) error {
			ran["draft"]++
			return nil
		})

		m.Clear(HookAfterRebuild)
		require.NoError(t, m.Execute(ctx, HookAfterRebuild, nil))
		require.NoError(t, m.Execute(ctx, HookAfterDraft, nil))

		assert.Zero(t, ran["rebuild"])
		assert.Equal(t, 1, ran["draft"])

		m.ClearAll()
		require.NoError(t, m.Execute(ctx, HookAfterDraft, nil))
		assert.Equal(t, 1, ran["draft"])
	})
}

func TestHookManagerExecuteAsync(t *testing.T) {
	ctx := context.Background()

	t.Run("fires every hook and swallows errors", func(t *testing.T) {
		m := NewHookManager()
		var wg sync.WaitGroup
		wg.Add(2)

		var mu sync.Mutex
		ran := 0

		m.Register(HookRebuildFailed, func(_ context.Context, _ interface{}) error {
			defer wg.Done()
			mu.Lock()
			defer mu.Unlock()
			ran++
			return errors.New("ignored")
		})
		m.Register(HookRebuildFailed, func(_ context.Context, _ interface{}) error {
			defer wg.Done()
			mu.Lock()
			defer mu.Unlock()
			ran++
			return nil
		})

		m.ExecuteAsync(ctx, HookRebuildFailed, &HookData{Err: errors.New("build broke")})

		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("async hooks never completed")
		}

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, 2, ran)
	})

	t.Run("registration during execution is safe", func(t *testing.T) {
		m := NewHookManager()
		m.Register(HookAfterStatusChange, func(_ context.Context, _ interface{}) error {
			return nil
		})

		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 25; j++ {
					m.Register(HookAfterStatusChange, func(_ context.Context, _ interface{}) error {
						return nil
					})
					m.ExecuteAsync(ctx, HookAfterStatusChange, nil)
				}
			}()
		}
		wg.Wait()
	})
}

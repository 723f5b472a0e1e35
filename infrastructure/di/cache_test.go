package di

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryCache(t *testing.T) {
	ctx := context.Background()

	t.Run("stores and retrieves within the TTL", func(t *testing.T) {
		cache := NewInMemoryCache()
		defer cache.Close()

		require.NoError(t, cache.Set(ctx, "graph:abc", 42, 60))

		value, ok := cache.Get(ctx, "graph:abc")
		require.True(t, ok)
		assert.Equal(t, 42, value)
	})

	t.Run("expired entries read as misses", func(t *testing.T) {
		cache := NewInMemoryCache()
		defer cache.Close()

		require.NoError(t, cache.Set(ctx, "graph:abc", 42, 0))
		time.Sleep(10 * time.Millisecond)

		_, ok := cache.Get(ctx, "graph:abc")
		assert.False(t, ok)
	})

	t.Run("delete removes a single key", func(t *testing.T) {
		cache := NewInMemoryCache()
		defer cache.Close()

		require.NoError(t, cache.Set(ctx, "keep", "a", 60))
		require.NoError(t, cache.Set(ctx, "drop", "b", 60))
		require.NoError(t, cache.Delete(ctx, "drop"))

		_, ok := cache.Get(ctx, "drop")
		assert.False(t, ok)
		_, ok = cache.Get(ctx, "keep")
		assert.True(t, ok)
	})

	t.Run("clear removes everything", func(t *testing.T) {
		cache := NewInMemoryCache()
		defer cache.Close()

		require.NoError(t, cache.Set(ctx, "a", 1, 60))
		require.NoError(t, cache.Set(ctx, "b", 2, 60))
		require.NoError(t, cache.Clear(ctx))

		_, ok := cache.Get(ctx, "a")
		assert.False(t, ok)
		_, ok = cache.Get(ctx, "b")
		assert.False(t, ok)
	})

	t.Run("close is idempotent", func(t *testing.T) {
		cache := NewInMemoryCache()
		require.NoError(t, cache.Close())
		require.NoError(t, cache.Close())
	})

	t.Run("concurrent readers and writers stay consistent", func(t *testing.T) {
		cache := NewInMemoryCache()
		defer cache.Close()

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				key := fmt.Sprintf("key-%d", n%4)
				for j := 0; j < 50; j++ {
					_ = cache.Set(ctx, key, j, 60)
					cache.Get(ctx, key)
				}
			}(i)
		}
		wg.Wait()
	})
}

func TestQueryCacheAdapter(t *testing.T) {
	ctx := context.Background()

	cache := NewInMemoryCache()
	defer cache.Close()
	adapter := queryCache{cache: cache}

	t.Run("duration TTLs carry through", func(t *testing.T) {
		require.NoError(t, adapter.Set(ctx, "path:xyz", "ranked", 30*time.Second))

		value, ok := adapter.Get(ctx, "path:xyz")
		require.True(t, ok)
		assert.Equal(t, "ranked", value)
	})

	t.Run("sub-second TTLs round up instead of expiring instantly", func(t *testing.T) {
		require.NoError(t, adapter.Set(ctx, "path:short", "ranked", 100*time.Millisecond))
		time.Sleep(10 * time.Millisecond)

		_, ok := adapter.Get(ctx, "path:short")
		assert.True(t, ok)
	})
}

package sagas

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func passThrough(_ context.Context, data interface{}) (interface{}, error) {
	return data, nil
}

func TestSagaExecute(t *testing.T) {
	ctx := context.Background()

	t.Run("runs steps in order and threads data through", func(t *testing.T) {
		var trail []string

		saga := NewSaga("ordered", zap.NewNop()).
			AddStep(SagaStep{
				Name: "add",
				Execute: func(_ context.Context, data interface{}) (interface{}, error) {
					trail = append(trail, "add")
					return data.(int) + 1, nil
				},
			}).
			AddStep(SagaStep{
				Name: "scale",
				Execute: func(_ context.Context, data interface{}) (interface{}, error) {
					trail = append(trail, "scale")
					return data.(int) * 10, nil
				},
			})

		result, err := saga.Execute(ctx, 4)
		require.NoError(t, err)
		assert.Equal(t, 50, result)
		assert.Equal(t, []string{"add", "scale"}, trail)
		assert.Equal(t, SagaStateCompleted, saga.State())
		assert.NotEmpty(t, saga.ID())
	})

	t.Run("compensates completed steps in reverse", func(t *testing.T) {
		var undone []string
		boom := errors.New("ledger write refused")

		saga := NewSaga("unwinds", zap.NewNop()).
			AddStep(SagaStep{
				Name:    "reserve",
				Execute: passThrough,
				Compensate: func(_ context.Context, _ interface{}) error {
					undone = append(undone, "reserve")
					return nil
				},
			}).
			AddStep(SagaStep{
				Name:    "charge",
				Execute: passThrough,
				Compensate: func(_ context.Context, _ interface{}) error {
					undone = append(undone, "charge")
					return nil
				},
			}).
			AddStep(SagaStep{
				Name: "record",
				Execute: func(_ context.Context, _ interface{}) (interface{}, error) {
					return nil, boom
				},
			})

		_, err := saga.Execute(ctx, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "record")
		assert.Equal(t, []string{"charge", "reserve"}, undone)
		assert.Equal(t, SagaStateCompensated, saga.State())
		assert.Equal(t, 2, saga.CurrentStep())
	})

	t.Run("hands each compensation its own step output", func(t *testing.T) {
		var seen interface{}

		saga := NewSaga("threads", zap.NewNop()).
			AddStep(SagaStep{
				Name: "issue",
				Execute: func(_ context.Context, _ interface{}) (interface{}, error) {
					return "token-42", nil
				},
				Compensate: func(_ context.Context, data interface{}) error {
					seen = data
					return nil
				},
			}).
			AddStep(SagaStep{
				Name: "burn",
				Execute: func(_ context.Context, _ interface{}) (interface{}, error) {
					return nil, errors.New("downstream refused")
				},
			})

		_, err := saga.Execute(ctx, nil)
		require.Error(t, err)
		assert.Equal(t, "token-42", seen)
	})

	t.Run("a failing compensation does not stop the rest", func(t *testing.T) {
		var undone []string

		saga := NewSaga("stubborn", zap.NewNop()).
			AddStep(SagaStep{
				Name:    "first",
				Execute: passThrough,
				Compensate: func(_ context.Context, _ interface{}) error {
					undone = append(undone, "first")
					return nil
				},
			}).
			AddStep(SagaStep{
				Name:    "second",
				Execute: passThrough,
				Compensate: func(_ context.Context, _ interface{}) error {
					return errors.New("already gone")
				},
			}).
			AddStep(SagaStep{
				Name: "third",
				Execute: func(_ context.Context, _ interface{}) (interface{}, error) {
					return nil, errors.New("no capacity")
				},
			})

		_, err := saga.Execute(ctx, nil)
		require.Error(t, err)
		assert.Equal(t, []string{"first"}, undone)
		assert.Equal(t, SagaStateCompensated, saga.State())
	})
}

func TestSagaRetries(t *testing.T) {
	ctx := context.Background()

	t.Run("retries a flaky step until it succeeds", func(t *testing.T) {
		attempts := 0

		saga := NewSaga("flaky", zap.NewNop()).
			AddStep(SagaStep{
				Name: "call_out",
				Execute: func(_ context.Context, _ interface{}) (interface{}, error) {
					attempts++
					if attempts < 3 {
						return nil, errors.New("timeout")
					}
					return "ok", nil
				},
				MaxRetries: 3,
				RetryDelay: time.Millisecond,
			})

		result, err := saga.Execute(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, "ok", result)
		assert.Equal(t, 3, attempts)
	})

	t.Run("gives up after the attempt budget", func(t *testing.T) {
		attempts := 0
		boom := errors.New("still down")

		saga := NewSaga("exhausted", zap.NewNop()).
			AddStep(SagaStep{
				Name: "call_out",
				Execute: func(_ context.Context, _ interface{}) (interface{}, error) {
					attempts++
					return nil, boom
				},
				MaxRetries: 2,
				RetryDelay: time.Millisecond,
			})

		_, err := saga.Execute(ctx, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "after 2 attempts")
		assert.Equal(t, 2, attempts)
	})

	t.Run("stops retrying when the context is done", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		attempts := 0

		saga := NewSaga("cancelled", zap.NewNop()).
			AddStep(SagaStep{
				Name: "call_out",
				Execute: func(_ context.Context, _ interface{}) (interface{}, error) {
					attempts++
					return nil, errors.New("timeout")
				},
				MaxRetries: 5,
				RetryDelay: time.Minute,
			})

		_, err := saga.Execute(cancelled, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, attempts)
	})
}

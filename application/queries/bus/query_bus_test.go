package bus

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	pkgerrors "accessengine-backend/pkg/errors"
)

type stubQuery struct {
	CelebrityID string
	Invalid     bool
}

func (q stubQuery) Validate() error {
	if q.Invalid {
		return errors.New("stub query is invalid")
	}
	return nil
}

// mapCache is a plain map behind the Cache interface
type mapCache struct {
	mu    sync.Mutex
	items map[string]interface{}
	sets  int
}

func newMapCache() *mapCache {
	return &mapCache{items: make(map[string]interface{})}
}

func (c *mapCache) Get(_ context.Context, key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.items[key]
	return value, ok
}

func (c *mapCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
	c.sets++
	return nil
}

// countingMetrics tallies increments per metric name
type countingMetrics struct {
	mu     sync.Mutex
	counts map[string]int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{counts: make(map[string]int)}
}

func (m *countingMetrics) StartTimer(string, string) Timer { return noopTimer{} }

func (m *countingMetrics) Increment(metric, _ string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[metric]++
}

type noopTimer struct{}

func (noopTimer) Stop() {}

func TestQueryBusDispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("routes a query to its registered handler", func(t *testing.T) {
		queryBus := NewQueryBus()
		require.NoError(t, queryBus.Register(stubQuery{}, QueryHandlerFunc(
			func(_ context.Context, query Query) (interface{}, error) {
				typed := query.(stubQuery)
				return "result for " + typed.CelebrityID, nil
			})))

		result, err := queryBus.Ask(ctx, stubQuery{CelebrityID: "abc"})
		require.NoError(t, err)
		assert.Equal(t, "result for abc", result)
	})

	t.Run("fails when no handler is registered", func(t *testing.T) {
		queryBus := NewQueryBus()

		_, err := queryBus.Ask(ctx, stubQuery{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrHandlerNotFound)
	})

	t.Run("refuses a second handler for the same query", func(t *testing.T) {
		queryBus := NewQueryBus()
		handler := QueryHandlerFunc(func(_ context.Context, _ Query) (interface{}, error) {
			return nil, nil
		})

		require.NoError(t, queryBus.Register(stubQuery{}, handler))
		err := queryBus.Register(stubQuery{}, handler)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDuplicateHandler)
	})

	t.Run("turns validation failures into 400-class errors", func(t *testing.T) {
		queryBus := NewQueryBus()
		require.NoError(t, queryBus.Register(stubQuery{}, QueryHandlerFunc(
			func(_ context.Context, _ Query) (interface{}, error) {
				t.Fatal("handler must not run for an invalid query")
				return nil, nil
			})))

		_, err := queryBus.Ask(ctx, stubQuery{Invalid: true})
		require.Error(t, err)

		var appErr *pkgerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	})
}

func TestCachingMiddleware(t *testing.T) {
	ctx := context.Background()

	t.Run("serves repeat reads from cache", func(t *testing.T) {
		cache := newMapCache()
		calls := 0
		handler := NewCachingMiddleware(cache, time.Minute).Wrap(QueryHandlerFunc(
			func(_ context.Context, _ Query) (interface{}, error) {
				calls++
				return "payload", nil
			}))

		for i := 0; i < 3; i++ {
			result, err := handler.Handle(ctx, stubQuery{CelebrityID: "abc"})
			require.NoError(t, err)
			assert.Equal(t, "payload", result)
		}
		assert.Equal(t, 1, calls)
		assert.Equal(t, 1, cache.sets)
	})

	t.Run("keys on the query's field values", func(t *testing.T) {
		cache := newMapCache()
		calls := 0
		handler := NewCachingMiddleware(cache, time.Minute).Wrap(QueryHandlerFunc(
			func(_ context.Context, _ Query) (interface{}, error) {
				calls++
				return calls, nil
			}))

		first, err := handler.Handle(ctx, stubQuery{CelebrityID: "abc"})
		require.NoError(t, err)
		second, err := handler.Handle(ctx, stubQuery{CelebrityID: "xyz"})
		require.NoError(t, err)

		assert.Equal(t, 2, calls)
		assert.NotEqual(t, first, second)
	})

	t.Run("never caches failures", func(t *testing.T) {
		cache := newMapCache()
		calls := 0
		handler := NewCachingMiddleware(cache, time.Minute).Wrap(QueryHandlerFunc(
			func(_ context.Context, _ Query) (interface{}, error) {
				calls++
				return nil, errors.New("snapshot missing")
			}))

		for i := 0; i < 2; i++ {
			_, err := handler.Handle(ctx, stubQuery{CelebrityID: "abc"})
			require.Error(t, err)
		}
		assert.Equal(t, 2, calls)
		assert.Zero(t, cache.sets)
	})
}

func TestMetricsMiddleware(t *testing.T) {
	ctx := context.Background()

	t.Run("counts successes", func(t *testing.T) {
		metrics := newCountingMetrics()
		handler := NewMetricsMiddleware(metrics).Wrap(QueryHandlerFunc(
			func(_ context.Context, _ Query) (interface{}, error) {
				return "ok", nil
			}))

		_, err := handler.Handle(ctx, stubQuery{})
		require.NoError(t, err)

		assert.Equal(t, 1, metrics.counts["query_count"])
		assert.Equal(t, 1, metrics.counts["query_success"])
		assert.Zero(t, metrics.counts["query_errors"])
	})

	t.Run("counts failures", func(t *testing.T) {
		metrics := newCountingMetrics()
		handler := NewMetricsMiddleware(metrics).Wrap(QueryHandlerFunc(
			func(_ context.Context, _ Query) (interface{}, error) {
				return nil, errors.New("boom")
			}))

		_, err := handler.Handle(ctx, stubQuery{})
		require.Error(t, err)

		assert.Equal(t, 1, metrics.counts["query_count"])
		assert.Equal(t, 1, metrics.counts["query_errors"])
		assert.Zero(t, metrics.counts["query_success"])
	})
}

func TestQueryLoggingMiddleware(t *testing.T) {
	ctx := context.Background()

	handler := LoggingMiddleware(zap.NewNop(), time.Millisecond)(QueryHandlerFunc(
		func(_ context.Context, _ Query) (interface{}, error) {
			return "value", nil
		}))

	result, err := handler.Handle(ctx, stubQuery{})
	require.NoError(t, err)
	assert.Equal(t, "value", result)

	failure := errors.New("downstream failed")
	handler = LoggingMiddleware(zap.NewNop(), time.Millisecond)(QueryHandlerFunc(
		func(_ context.Context, _ Query) (interface{}, error) {
			return nil, failure
		}))
	_, err = handler.Handle(ctx, stubQuery{})
	assert.ErrorIs(t, err, failure)
}

package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlidingWindowLimiter_EnforcesLimit(t *testing.T) {
	ctx := context.Background()
	limiter := NewSlidingWindowLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "client-a")
		assert.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, err := limiter.Allow(ctx, "client-a")
	assert.NoError(t, err)
	assert.False(t, allowed)

	// A different key has its own window
	allowed, err = limiter.Allow(ctx, "client-b")
	assert.NoError(t, err)
	assert.True(t, allowed)
}

func TestSlidingWindowLimiter_Reset(t *testing.T) {
	ctx := context.Background()
	limiter := NewSlidingWindowLimiter(1, time.Minute)

	allowed, _ := limiter.Allow(ctx, "client-a")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow(ctx, "client-a")
	assert.False(t, allowed)

	assert.NoError(t, limiter.Reset(ctx, "client-a"))

	allowed, _ = limiter.Allow(ctx, "client-a")
	assert.True(t, allowed)
}

func TestTokenBucketLimiter_BurstThenDrained(t *testing.T) {
	ctx := context.Background()
	limiter := NewTokenBucketLimiter(2, time.Hour)

	allowed, _ := limiter.Allow(ctx, "caller")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow(ctx, "caller")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow(ctx, "caller")
	assert.False(t, allowed)
}

func TestGenerationRateLimiter_KeysAreNamespaced(t *testing.T) {
	ctx := context.Background()
	gen := NewGenerationRateLimiter(1, time.Hour)

	allowed, err := gen.Allow(ctx, "10.0.0.1")
	assert.NoError(t, err)
	assert.True(t, allowed)

	allowed, _ = gen.Allow(ctx, "10.0.0.1")
	assert.False(t, allowed)

	assert.NoError(t, gen.Reset(ctx, "10.0.0.1"))
	allowed, _ = gen.Allow(ctx, "10.0.0.1")
	assert.True(t, allowed)
}

func TestCompositeRateLimiter_AllMustAllow(t *testing.T) {
	ctx := context.Background()
	strict := NewSlidingWindowLimiter(1, time.Minute)
	loose := NewSlidingWindowLimiter(100, time.Minute)
	composite := NewCompositeRateLimiter(strict, loose)

	allowed, err := composite.Allow(ctx, "key")
	assert.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = composite.Allow(ctx, "key")
	assert.NoError(t, err)
	assert.False(t, allowed)
}

func TestDistributedRateLimiter_NilClientAllowsAll(t *testing.T) {
	ctx := context.Background()
	limiter := NewDistributedIPRateLimiter(nil, "", 1)

	// Without a table to count in, the limiter must never block
	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(ctx, "192.0.2.1")
		assert.NoError(t, err)
		assert.True(t, allowed)
	}

	assert.NoError(t, limiter.Reset(ctx, "192.0.2.1"))
}

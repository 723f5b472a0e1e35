package common

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-42")

	id, ok := GetRequestID(ctx)
	assert.True(t, ok)
	assert.Equal(t, "req-42", id)
}

func TestTraceIDRoundTrip(t *testing.T) {
	ctx := WithTraceID(context.Background(), "Root=1-abc-def")

	id, ok := GetTraceID(ctx)
	assert.True(t, ok)
	assert.Equal(t, "Root=1-abc-def", id)
}

func TestCelebrityIDRoundTrip(t *testing.T) {
	ctx := WithCelebrityID(context.Background(), "8f14e45f")

	id, ok := GetCelebrityID(ctx)
	assert.True(t, ok)
	assert.Equal(t, "8f14e45f", id)
}

func TestMissingValuesReportAbsent(t *testing.T) {
	ctx := context.Background()

	_, ok := GetRequestID(ctx)
	assert.False(t, ok)
	_, ok = GetTraceID(ctx)
	assert.False(t, ok)
	_, ok = GetCelebrityID(ctx)
	assert.False(t, ok)
}

func TestKeysDoNotCollideAcrossTypes(t *testing.T) {
	// A value another package stores under its own key type with the
	// same literal must stay invisible to the typed accessors.
	type foreignKey string
	ctx := context.WithValue(context.Background(), foreignKey("request_id"), "foreign")

	_, ok := GetRequestID(ctx)
	assert.False(t, ok)
}

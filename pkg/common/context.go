package common

import "context"

// ContextKey is a private key type so request metadata cannot collide
// with values other packages stash under plain strings.
type ContextKey string

// Context keys
const (
	ContextKeyRequestID   ContextKey = "request_id"
	ContextKeyTraceID     ContextKey = "trace_id"
	ContextKeyCelebrityID ContextKey = "celebrity_id"
)

// WithRequestID adds request ID to context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// GetRequestID extracts request ID from context
func GetRequestID(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(ContextKeyRequestID).(string)
	return requestID, ok
}

// WithTraceID adds trace ID to context
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, ContextKeyTraceID, traceID)
}

// GetTraceID extracts trace ID from context
func GetTraceID(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(ContextKeyTraceID).(string)
	return traceID, ok
}

// WithCelebrityID tags the context with the celebrity an operation targets,
// so logs from deep inside a request can be correlated without threading the
// id through every call.
func WithCelebrityID(ctx context.Context, celebrityID string) context.Context {
	return context.WithValue(ctx, ContextKeyCelebrityID, celebrityID)
}

// GetCelebrityID extracts the target celebrity ID from context
func GetCelebrityID(ctx context.Context) (string, bool) {
	celebrityID, ok := ctx.Value(ContextKeyCelebrityID).(string)
	return celebrityID, ok
}

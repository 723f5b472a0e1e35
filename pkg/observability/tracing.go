package observability

import (
	"context"

	"github.com/aws/aws-xray-sdk-go/xray"
)

// Tracer wraps the engine's hot paths in X-Ray subsegments. Tracing
// engages when the context carries an open segment or a Lambda trace
// header; everywhere else, and on a nil Tracer, the wrappers call the
// function directly.
type Tracer struct {
	serviceName string
}

// NewTracer creates a new tracer instance
func NewTracer(serviceName string) *Tracer {
	return &Tracer{
		serviceName: serviceName,
	}
}

// active reports whether a subsegment begun now would have a parent.
// In Lambda the parent is a facade segment the SDK builds from the
// trace header, so the header alone is enough.
func (t *Tracer) active(ctx context.Context) bool {
	if t == nil {
		return false
	}
	if xray.GetSegment(ctx) != nil {
		return true
	}
	traceHeader, _ := ctx.Value(xray.LambdaTraceHeaderKey).(string)
	return traceHeader != ""
}

// TraceRebuild wraps a rebuild pass in a subsegment annotated with its
// trigger reason, so scheduled and manual passes are filterable in the
// console.
func (t *Tracer) TraceRebuild(ctx context.Context, reason string, fn func(context.Context) error) error {
	if !t.active(ctx) {
		return fn(ctx)
	}
	return xray.Capture(ctx, t.serviceName+".rebuild", func(ctx context.Context) error {
		if seg := xray.GetSegment(ctx); seg != nil {
			seg.AddAnnotation("reason", reason)
		}
		return fn(ctx)
	})
}

// TraceGeneration wraps a model call in a subsegment named by the kind
// of artifact generated (leverage, message, strategy).
func (t *Tracer) TraceGeneration(ctx context.Context, kind string, fn func(context.Context) error) error {
	if !t.active(ctx) {
		return fn(ctx)
	}
	return xray.Capture(ctx, t.serviceName+".generation."+kind, fn)
}

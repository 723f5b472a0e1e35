package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"accessengine-backend/pkg/common"
)

// RequestContext copies the chi-generated request ID and the inbound trace
// header into the shared context keys, so layers below the router can
// correlate responses and logs without reaching back into chi.
func RequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if id := middleware.GetReqID(ctx); id != "" {
			ctx = common.WithRequestID(ctx, id)
		}
		if trace := traceHeader(r); trace != "" {
			ctx = common.WithTraceID(ctx, trace)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// traceHeader prefers the trace id API Gateway stamps on forwarded
// requests over a client-supplied one.
func traceHeader(r *http.Request) string {
	if trace := r.Header.Get("X-Amzn-Trace-Id"); trace != "" {
		return trace
	}
	return r.Header.Get("X-Trace-ID")
}

// CelebrityContext tags the context with the celebrityID route parameter.
// Mounted on per-celebrity routes so error logs carry the id without each
// handler threading it.
func CelebrityContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := chi.URLParam(r, "celebrityID"); id != "" {
			r = r.WithContext(common.WithCelebrityID(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}

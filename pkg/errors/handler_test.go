package errors

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"accessengine-backend/pkg/common"
)

func errorRequest(ctx context.Context) *http.Request {
	return httptest.NewRequest(http.MethodGet, "/api/v1/celebrities/abc/graph", nil).WithContext(ctx)
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "body: %s", rec.Body.String())
	return resp
}

func TestHandle_DomainError(t *testing.T) {
	h := NewErrorHandler(zap.NewNop(), false)
	rec := httptest.NewRecorder()

	h.Handle(rec, errorRequest(context.Background()), ErrCelebrityNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Error)
	assert.Equal(t, "CELEBRITY_NOT_FOUND", resp.Code)
	assert.Equal(t, string(DomainNotFoundError), resp.Type)
}

func TestHandle_CorrelationFromContext(t *testing.T) {
	h := NewErrorHandler(zap.NewNop(), false)
	rec := httptest.NewRecorder()

	ctx := common.WithRequestID(context.Background(), "req-7")
	ctx = common.WithTraceID(ctx, "Root=1-abc")
	h.Handle(rec, errorRequest(ctx), ErrCelebrityNotFound)

	resp := decodeResponse(t, rec)
	assert.Equal(t, "req-7", resp.RequestID)
	assert.Equal(t, "Root=1-abc", resp.TraceID)
}

func TestHandle_HeaderFallback(t *testing.T) {
	h := NewErrorHandler(zap.NewNop(), false)
	rec := httptest.NewRecorder()

	req := errorRequest(context.Background())
	req.Header.Set("X-Request-ID", "client-55")
	h.Handle(rec, req, ErrCelebrityNotFound)

	resp := decodeResponse(t, rec)
	assert.Equal(t, "client-55", resp.RequestID)
}

func TestHandleStatus_MapsStatusToType(t *testing.T) {
	h := NewErrorHandler(zap.NewNop(), false)
	rec := httptest.NewRecorder()

	ctx := common.WithRequestID(context.Background(), "req-9")
	h.HandleStatus(rec, errorRequest(ctx), http.StatusTooManyRequests, "slow down")

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, string(ErrorTypeRateLimit), resp.Type)
	assert.Equal(t, "slow down", resp.Message)
	assert.Equal(t, "req-9", resp.RequestID)
}

func TestMiddleware_RecoversPanics(t *testing.T) {
	h := NewErrorHandler(zap.NewNop(), false)
	rec := httptest.NewRecorder()

	handler := h.Middleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("graph exploded")
	}))
	handler.ServeHTTP(rec, errorRequest(context.Background()))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, string(ErrorTypeInternal), resp.Type)
}

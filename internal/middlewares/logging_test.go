package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		target       string
		status       int
		body         string
		expectedSize string
	}{
		{name: "pot list", method: http.MethodGet, target: "/api/v1/pots/?page=2", status: http.StatusOK, body: `{"pots":[]}`, expectedSize: "11B"},
		{name: "missing tea", method: http.MethodGet, target: "/tea/42", status: http.StatusNotFound, body: "", expectedSize: "0B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.InfoLevel)

			var ctxID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxID = RequestIDFromContext(r.Context())
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			rr := httptest.NewRecorder()
			LoggingMiddleware(zap.New(core).Sugar())(next).ServeHTTP(rr, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.body, rr.Body.String())

			reqID := rr.Header().Get("X-Request-ID")
			require.NotEmpty(t, reqID)
			assert.Equal(t, reqID, ctxID)

			entries := logs.All()
			require.Len(t, entries, 2)
			req, resp := entries[0].ContextMap(), entries[1].ContextMap()
			assert.Equal(t, "request", entries[0].Message)
			assert.Equal(t, tt.method, req["method"])
			assert.Equal(t, tt.target, req["uri"])
			assert.Equal(t, reqID, req["request_id"])
			assert.Equal(t, "response", entries[1].Message)
			assert.EqualValues(t, tt.status, resp["status"])
			assert.Equal(t, tt.expectedSize, resp["response_size"])
		})
	}
}

func TestResponseWriter_FirstStatusWins(t *testing.T) {
	rr := httptest.NewRecorder()
	rw := newResponseWriter(rr)

	rw.WriteHeader(http.StatusNotFound)
	rw.WriteHeader(http.StatusOK)
	n, err := rw.Write([]byte("gone"))

	assert.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, http.StatusNotFound, rw.statusCode)
	assert.Equal(t, 4, rw.size)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rr := httptest.NewRecorder()
	rw := newResponseWriter(rr)

	assert.Same(t, rr, rw.Unwrap().(*httptest.ResponseRecorder))
	rw.Flush()
	assert.True(t, rr.Flushed)
}

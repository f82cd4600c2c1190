package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(GetClientFromContext(r.Context())))
	})
}

func TestAPIKeyAuth(t *testing.T) {
	h := APIKeyAuth(map[string]string{"web": "secret-1"})(okHandler())

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"missing", "", http.StatusUnauthorized, ""},
		{"wrong", "Bearer nope", http.StatusUnauthorized, ""},
		{"bearer", "Bearer secret-1", http.StatusOK, "web"},
		{"bare", "secret-1", http.StatusOK, "web"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/analyses", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tc.status, rec.Code)
			if tc.body != "" {
				assert.Equal(t, tc.body, rec.Body.String())
			}
		})
	}
}

func TestAPIKeyAuthDisabledWithoutKeys(t *testing.T) {
	rec := httptest.NewRecorder()
	APIKeyAuth(nil)(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/analyses", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTokenBucket(t *testing.T) {
	tb := NewTokenBucket(2, 0)
	assert.True(t, tb.Allow())
	assert.True(t, tb.Allow())
	assert.False(t, tb.Allow())
}

func TestRateLimitMiddleware(t *testing.T) {
	h := RateLimitMiddleware(1, 0)(okHandler())

	send := func(path, addr string) int {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("/analyze", "10.0.0.1:1000"))
	// different port, same host
	assert.Equal(t, http.StatusTooManyRequests, send("/analyze", "10.0.0.1:2000"))
	assert.Equal(t, http.StatusOK, send("/analyze", "10.0.0.2:1000"))
	assert.Equal(t, http.StatusOK, send("/health", "10.0.0.1:1000"))
}

func TestValidateText(t *testing.T) {
	require.Error(t, ValidateText(" \n"))
	require.Error(t, ValidateText(strings.Repeat("a", MaxTextLength+1)))
	require.NoError(t, ValidateText("hello"))
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "ab\tc\nd", SanitizeString("  a\x00b\tc\nd\x07 "))
}

func TestPagination(t *testing.T) {
	assert.Equal(t, 20, ValidatePageSize(0))
	assert.Equal(t, 100, ValidatePageSize(500))
	assert.Equal(t, 5, ValidatePageSize(5))
	assert.Equal(t, 1, ValidatePage(-3))
	assert.Equal(t, 4, ValidatePage(4))
}

func TestValidateRecordID(t *testing.T) {
	require.NoError(t, ValidateRecordID("3f1c7b2e-8a4d-4c3b-9e2f-1a2b3c4d5e6f"))
	require.Error(t, ValidateRecordID("../etc"))
	require.Error(t, ValidateRecordID(""))
}

func TestHealthHandler(t *testing.T) {
	checkers := map[string]HealthChecker{
		"classifier": CheckerFunc(func(ctx context.Context) error { return nil }),
	}
	rec := httptest.NewRecorder()
	HealthHandler(checkers)(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body HealthStatus
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "ok", body.Status)

	checkers["database"] = CheckerFunc(func(ctx context.Context) error { return errors.New("down") })
	rec = httptest.NewRecorder()
	HealthHandler(checkers)(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMetricsMiddlewareCounts(t *testing.T) {
	before := GetMetrics()["requests_failed"].(uint64)
	h := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, before+1, GetMetrics()["requests_failed"].(uint64))
}

package mcp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimit_RejectsWhenBucketEmpty(t *testing.T) {
	handler := rateLimit(okHandler(), rate.NewLimiter(rate.Every(1e12), 2))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimit_RetryAfterHeader(t *testing.T) {
	handler := rateLimit(okHandler(), rate.NewLimiter(0, 0))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
}

func TestRateLimit_NilLimiterPassesThrough(t *testing.T) {
	handler := rateLimit(okHandler(), nil)

	for i := 0; i < 100; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestServer_SetRateLimit(t *testing.T) {
	server, err := NewServer(newTestPorts(t))
	require.NoError(t, err)
	require.NotNil(t, server.limiter)
	assert.Equal(t, rate.Limit(DefaultRequestRate), server.limiter.Limit())

	server.SetRateLimit(5, 0)
	require.NotNil(t, server.limiter)
	assert.Equal(t, rate.Limit(5), server.limiter.Limit())
	assert.Equal(t, 1, server.limiter.Burst())

	server.SetRateLimit(0, 10)
	assert.Nil(t, server.limiter)
	assert.NotNil(t, server.Handler())
}

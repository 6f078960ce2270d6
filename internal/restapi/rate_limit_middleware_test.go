package restapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimitMiddlewareAllowsWithinLimit(t *testing.T) {
	middleware := NewRateLimitMiddleware(5, time.Second)
	handler := middleware(okHandler())

	for i := 0; i < 5; i++ {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest("GET", "/api/where/current-time.json?key=TEST", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	}
}

func TestRateLimitMiddlewareBlocksBurst(t *testing.T) {
	middleware := NewRateLimitMiddleware(2, time.Second)
	handler := middleware(okHandler())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest("GET", "/api/where/current-time.json?key=TEST", nil))
		codes = append(codes, rr.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimitMiddlewareIsPerKey(t *testing.T) {
	middleware := NewRateLimitMiddleware(1, time.Second)
	handler := middleware(okHandler())

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/x?key=one", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	// The first key is exhausted, a different key is not.
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/x?key=one", nil))
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/x?key=two", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRateLimitMiddlewareDisabled(t *testing.T) {
	middleware := NewRateLimitMiddleware(-1, time.Second)
	handler := middleware(okHandler())

	for i := 0; i < 100; i++ {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest("GET", "/x?key=TEST", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	}
}

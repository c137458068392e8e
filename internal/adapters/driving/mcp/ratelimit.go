package mcp

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/fraction/internal/logger"
)

const (
	// DefaultRequestRate is the sustained HTTP request rate per second.
	DefaultRequestRate = 20

	// DefaultRequestBurst is the number of requests allowed at once.
	DefaultRequestBurst = 40
)

// SetRateLimit sets the HTTP request throttle. A non-positive rps disables it.
// It has no effect on the stdio transport.
func (s *Server) SetRateLimit(rps float64, burst int) {
	if rps <= 0 {
		s.limiter = nil
		return
	}
	if burst < 1 {
		burst = 1
	}
	s.limiter = rate.NewLimiter(rate.Limit(rps), burst)
}

// rateLimit rejects requests with 429 once the limiter's bucket is empty.
func rateLimit(next http.Handler, limiter *rate.Limiter) http.Handler {
	if limiter == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			logger.Debug("Throttled %s %s", r.Method, r.URL.Path)
			w.Header().Set("Retry-After", "1")
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// HTTPObserver records HTTP request metrics.
type HTTPObserver interface {
	ObserveHTTP(method, path string, status int, duration time.Duration)
	RequestStarted()
	RequestFinished()
}

// Metrics returns a middleware that records request counts, latency and
// in-flight requests. Paths are labelled by their chi route pattern to keep
// cardinality bounded.
func Metrics(observer HTTPObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			observer.RequestStarted()
			defer observer.RequestFinished()

			wrapped := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapped, r)

			observer.ObserveHTTP(r.Method, routePattern(r), wrapped.statusCode, time.Since(start))
		})
	}
}

// routePattern returns the matched chi pattern, or "unmatched" when routing
// did not resolve one.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return "unmatched"
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return "unmatched"
}

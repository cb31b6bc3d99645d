package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/iho/matchedbet/internal/infrastructure/metrics"
)

func TestMetricsMiddlewareRecordsRequest(t *testing.T) {
	testCases := []struct {
		name       string
		method     string
		path       string
		wantRoute  string
		statusCode int
	}{
		{
			name:       "labels by route pattern",
			method:     http.MethodGet,
			path:       "/api/v1/bets/01ABC123",
			wantRoute:  "/api/v1/bets/{id}",
			statusCode: http.StatusTeapot,
		},
		{
			name:       "static route",
			method:     http.MethodPost,
			path:       "/api/v1/balances/increments",
			wantRoute:  "/api/v1/balances/increments",
			statusCode: http.StatusCreated,
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			path:       "/nope",
			wantRoute:  "unmatched",
			statusCode: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := metrics.New(prometheus.NewRegistry())

			handler := func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPInFlight))
				w.WriteHeader(tc.statusCode)
			}

			r := chi.NewRouter()
			r.Use(Metrics(m))
			r.Get("/api/v1/bets/{id}", handler)
			r.Post("/api/v1/balances/increments", handler)
			r.NotFound(handler)

			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, nil))

			assert.Equal(t, tc.statusCode, rr.Code)
			assert.Equal(t, 1.0, testutil.ToFloat64(
				m.HTTPRequests.WithLabelValues(tc.method, tc.wantRoute, strconv.Itoa(tc.statusCode))))
			assert.Equal(t, 1, testutil.CollectAndCount(m.HTTPDuration))
			assert.Equal(t, 0.0, testutil.ToFloat64(m.HTTPInFlight))
		})
	}
}


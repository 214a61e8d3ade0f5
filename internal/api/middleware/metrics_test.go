package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counterValue returns the value of the geekshop_http_requests_total series
// with the given labels, or 0 when it does not exist yet.
func counterValue(t *testing.T, labels map[string]string) float64 {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != "geekshop_http_requests_total" {
			continue
		}
	metrics:
		for _, metric := range family.GetMetric() {
			got := make(map[string]string)
			for _, pair := range metric.GetLabel() {
				got[pair.GetName()] = pair.GetValue()
			}
			for k, v := range labels {
				if got[k] != v {
					continue metrics
				}
			}
			return metric.GetCounter().GetValue()
		}
	}
	return 0
}

func TestMetricsLabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/api/v1/universes/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	labels := map[string]string{"method": "GET", "route": "/api/v1/universes/{id}", "status": "200"}
	before := counterValue(t, labels)

	for _, path := range []string{"/api/v1/universes/1", "/api/v1/universes/2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, before+2, counterValue(t, labels))
}

func TestMetricsUnmatchedRoute(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {})

	labels := map[string]string{"method": "GET", "route": unmatchedRoute, "status": "404"}
	before := counterValue(t, labels)

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/nope/123", nil))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, before+1, counterValue(t, labels))
}

func TestRateLimitExceeded(t *testing.T) {
	recorder := httptest.NewRecorder()

	RateLimitExceeded(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/toys", nil))

	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	assert.JSONEq(t, `{"error":"Too many requests"}`, recorder.Body.String())
}

func TestMetricsCountsPanickingRequests(t *testing.T) {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(Metrics)
	r.Get("/api/v1/toys/{id}", func(w http.ResponseWriter, r *http.Request) {
		panic("nil toy")
	})

	labels := map[string]string{"method": "GET", "route": "/api/v1/toys/{id}", "status": "500"}
	before := counterValue(t, labels)

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/toys/3", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, before+1, counterValue(t, labels))
}

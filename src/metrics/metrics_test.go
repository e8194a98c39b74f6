package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest(t *testing.T) {
	m := New()
	m.ObserveRequest(http.MethodGet, "/api/goals", http.StatusOK, 0.01)
	m.ObserveRequest(http.MethodGet, "/api/goals", http.StatusOK, 0.02)
	m.ObserveRequest(http.MethodGet, "/api/goals", http.StatusNotFound, 0.01)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/goals", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/goals", "404")))
}

func TestAdviceOutcome(t *testing.T) {
	m := New()
	m.AdviceOutcome("fallback")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.advice.WithLabelValues("fallback")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.advice.WithLabelValues("model")))
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.AdviceOutcome("model")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `fintrack_advice_requests_total{outcome="model"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

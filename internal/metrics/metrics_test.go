package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"figure_catalog/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m := metrics.New()
	m.Requests.WithLabelValues("GET", "/api/figures", "200").Inc()
	m.WindowTokens.Observe(7)

	require.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("GET", "/api/figures", "200")))

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "catalog_http_requests_total")
	require.Contains(t, w.Body.String(), "catalog_page_window_tokens_count 1")
}

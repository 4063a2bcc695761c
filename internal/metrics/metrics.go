package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics хранит собственный реестр и метрики сервиса каталога.
type Metrics struct {
	Registry        *prometheus.Registry
	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	WindowTokens    prometheus.Histogram
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_http_requests_total",
			Help: "Number of HTTP requests by method, path and status.",
		}, []string{"method", "path", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "catalog_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		WindowTokens: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "catalog_page_window_tokens",
			Help:    "Length of rendered page windows.",
			Buckets: prometheus.LinearBuckets(0, 1, 8),
		}),
	}
	m.Registry.MustRegister(m.Requests, m.RequestDuration, m.WindowTokens)
	return m
}

// Handler отдаёт метрики в формате Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

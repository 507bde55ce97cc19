package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics keeps its own registry so several servers can coexist in one
// process.
type Metrics struct {
	registry    *prometheus.Registry
	reqCount    *prometheus.CounterVec
	reqDuration *prometheus.HistogramVec
	errorCount  *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		reqCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dailies_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		reqDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dailies_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		errorCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dailies_errors_total",
				Help: "Total request errors by handler and kind",
			},
			[]string{"handler", "type"},
		),
	}

	m.registry.MustRegister(m.reqCount, m.reqDuration, m.errorCount)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

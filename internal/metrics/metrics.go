// Package metrics exposes Prometheus instrumentation for provider calls.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the provider call metrics on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	segmentsTotal   *prometheus.CounterVec

	registry *prometheus.Registry
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fusiontranslate_provider_requests_total",
				Help: "Translation calls by provider and outcome",
			},
			[]string{"provider", "outcome"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fusiontranslate_provider_request_duration_seconds",
				Help:    "Translation call latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider"},
		),
		segmentsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fusiontranslate_provider_segments_total",
				Help: "Text segments submitted for translation by provider",
			},
			[]string{"provider"},
		),
		registry: registry,
	}

	registry.MustRegister(m.requestsTotal, m.requestDuration, m.segmentsTotal)
	return m
}

// ObserveCall records one finished call.
func (m *Metrics) ObserveCall(provider, outcome string, segments int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(provider, outcome).Inc()
	m.requestDuration.WithLabelValues(provider).Observe(elapsed.Seconds())
	if segments > 0 {
		m.segmentsTotal.WithLabelValues(provider).Add(float64(segments))
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "teabrew"

// Metrics contains all Prometheus metrics for teabrew. Each instance
// carries its own registry so multiple servers can coexist in one
// process.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP.
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Entities.
	EntityOperationsTotal *prometheus.CounterVec

	// Events.
	EventsBroadcastTotal *prometheus.CounterVec
	EventClients         prometheus.Gauge

	// Build info.
	BuildInfo *prometheus.GaugeVec
}

// New creates a new Metrics instance and registers all metrics.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	m := &Metrics{
		registry: registry,

		// HTTP.
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// Entities.
		EntityOperationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "entity_operations_total",
				Help:      "Total number of entity operations",
			},
			[]string{"entity", "operation"},
		),

		// Events.
		EventsBroadcastTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "events_broadcast_total",
				Help:      "Total number of events broadcast to subscribers",
			},
			[]string{"type"},
		),
		EventClients: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "event_clients",
				Help:      "Current number of connected event stream clients",
			},
		),

		// Build info.
		BuildInfo: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "build_info",
				Help:      "Build information",
			},
			[]string{"version", "commit", "date"},
		),
	}

	return m
}

// Handler returns an HTTP handler serving this instance's registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// SetBuildInfo sets the build info metric.
func (m *Metrics) SetBuildInfo(version, commit, date string) {
	m.BuildInfo.WithLabelValues(version, commit, date).Set(1)
}

// RecordHTTPRequest records an HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration float64) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

// RecordEntityOperation increments the entity operations counter.
func (m *Metrics) RecordEntityOperation(entity, operation string) {
	m.EntityOperationsTotal.WithLabelValues(entity, operation).Inc()
}

// RecordEventBroadcast increments the events broadcast counter.
func (m *Metrics) RecordEventBroadcast(eventType string) {
	m.EventsBroadcastTotal.WithLabelValues(eventType).Inc()
}

// SetEventClients sets the connected event clients gauge.
func (m *Metrics) SetEventClients(count float64) {
	m.EventClients.Set(count)
}

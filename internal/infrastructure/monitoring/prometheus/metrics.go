// Package prometheus wires the platform's Prometheus instrumentation: HTTP
// traffic, screening throughput, and per-source attempt outcomes for the
// prediction fallback chain.
package prometheus

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"

	mtypes "github.com/turtacn/MolScreen/pkg/types/molecule"
)

const namespace = "molscreen"

var httpDurationBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// sourceDurationBuckets reach the 20 s remote timeout ceiling.
var sourceDurationBuckets = []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 20, 30}

// Metrics holds all application metrics.  It implements the prediction
// chain's Observer interface so source attempts are recorded without the
// infrastructure layer importing this package.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	ScreeningsTotal   *prometheus.CounterVec
	ScreeningDuration prometheus.Histogram

	SourceAttemptsTotal *prometheus.CounterVec
	SourceDuration      *prometheus.HistogramVec

	CacheHitsTotal   *prometheus.CounterVec
	CacheMissesTotal *prometheus.CounterVec
}

// NewMetrics registers all collectors on a fresh registry, which also carries
// the standard Go runtime and process collectors.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Metrics{
		registry: registry,

		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by method, path and status code.",
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and path.",
			Buckets:   httpDurationBuckets,
		}, []string{"method", "path"}),

		ScreeningsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "screenings_total",
			Help:      "Completed screenings by resolving source and Lipinski verdict.",
		}, []string{"source", "lipinski"}),

		ScreeningDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "screening_duration_seconds",
			Help:      "End-to-end screening latency including source resolution.",
			Buckets:   sourceDurationBuckets,
		}),

		SourceAttemptsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "source_attempts_total",
			Help:      "Prediction source attempts by source and outcome.",
		}, []string{"source", "outcome"}),

		SourceDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "source_duration_seconds",
			Help:      "Prediction source latency by source.",
			Buckets:   sourceDurationBuckets,
		}, []string{"source"}),

		CacheHitsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "prediction_cache_hits_total",
			Help:      "Prediction cache hits by source.",
		}, []string{"source"}),

		CacheMissesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "prediction_cache_misses_total",
			Help:      "Prediction cache misses by source.",
		}, []string{"source"}),
	}
}

// Registry exposes the registry for the /metrics handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveSourceAttempt records one prediction source attempt.
func (m *Metrics) ObserveSourceAttempt(source mtypes.SourceName, success bool, elapsed time.Duration) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	m.SourceAttemptsTotal.WithLabelValues(string(source), outcome).Inc()
	m.SourceDuration.WithLabelValues(string(source)).Observe(elapsed.Seconds())
}

// ObserveScreening records one completed screening.
func (m *Metrics) ObserveScreening(source mtypes.SourceName, lipinskiPasses bool, elapsed time.Duration) {
	m.ScreeningsTotal.WithLabelValues(string(source), strconv.FormatBool(lipinskiPasses)).Inc()
	m.ScreeningDuration.Observe(elapsed.Seconds())
}

// ObserveCacheHit records a prediction served from the cache.
func (m *Metrics) ObserveCacheHit(source mtypes.SourceName) {
	m.CacheHitsTotal.WithLabelValues(string(source)).Inc()
}

// ObserveCacheMiss records a prediction that had to go upstream.
func (m *Metrics) ObserveCacheMiss(source mtypes.SourceName) {
	m.CacheMissesTotal.WithLabelValues(string(source)).Inc()
}

// ObserveHTTPRequest records one served HTTP request.
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, elapsed time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

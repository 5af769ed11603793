// Package metrics provides Prometheus metrics for the ranking engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the engine.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Evaluation metrics
	evaluationsTotal  prometheus.Counter
	candidatesSkipped prometheus.Counter
	evaluationLatency prometheus.Histogram

	// Ranking run metrics
	rankingRuns    prometheus.Counter
	rankingLatency prometheus.Histogram
	poolSize       prometheus.Gauge
	workerCount    prometheus.Gauge

	// Cache metrics
	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter
	cacheSize   prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "matchengine",
		subsystem:        "ranking",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.evaluationsTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "evaluations_total",
		Help:      "Total number of candidate evaluations completed",
	})

	m.candidatesSkipped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "candidates_skipped_total",
		Help:      "Total number of malformed candidates skipped during batch ranking",
	})

	m.evaluationLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "evaluation_latency_ms",
		Help:      "Latency of a single candidate evaluation in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.rankingRuns = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "runs_total",
		Help:      "Total number of batch ranking runs",
	})

	m.rankingLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "run_latency_ms",
		Help:      "End-to-end latency of a batch ranking run in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.poolSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "pool_size",
		Help:      "Number of candidates in the most recent ranking pool",
	})

	m.workerCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "worker_count",
		Help:      "Number of evaluation workers used by the most recent run",
	})

	m.cacheHits = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "cache_hits_total",
		Help:      "Total number of evaluation cache hits",
	})

	m.cacheMisses = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "cache_misses_total",
		Help:      "Total number of evaluation cache misses",
	})

	m.cacheSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "cache_entries",
		Help:      "Current number of entries in the evaluation cache",
	})
}

// Package-level helpers on the global manager.

// RecordEvaluation increments the completed-evaluation counter.
func RecordEvaluation() {
	globalManager.evaluationsTotal.Inc()
}

// RecordCandidateSkipped increments the skipped-candidate counter.
func RecordCandidateSkipped() {
	globalManager.candidatesSkipped.Inc()
}

// ObserveEvaluationLatency records a single evaluation's latency.
func ObserveEvaluationLatency(latencyMs float64) {
	globalManager.evaluationLatency.Observe(latencyMs)
}

// RecordRankingRun increments the ranking-run counter.
func RecordRankingRun() {
	globalManager.rankingRuns.Inc()
}

// ObserveRankingLatency records a batch run's latency.
func ObserveRankingLatency(latencyMs float64) {
	globalManager.rankingLatency.Observe(latencyMs)
}

// UpdatePoolSize sets the pool-size gauge.
func UpdatePoolSize(size int) {
	globalManager.poolSize.Set(float64(size))
}

// UpdateWorkerCount sets the worker-count gauge.
func UpdateWorkerCount(count int) {
	globalManager.workerCount.Set(float64(count))
}

// RecordCacheHit increments the cache-hit counter.
func RecordCacheHit() {
	globalManager.cacheHits.Inc()
}

// RecordCacheMiss increments the cache-miss counter.
func RecordCacheMiss() {
	globalManager.cacheMisses.Inc()
}

// UpdateCacheSize sets the cache-size gauge.
func UpdateCacheSize(size int64) {
	globalManager.cacheSize.Set(float64(size))
}

// GetRegistry returns the custom registry for the metrics HTTP handler.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

package core

import (
	"runtime"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// PerformanceMetrics is the read-only snapshot handed to callers.
type PerformanceMetrics struct {
	TotalOperations       uint64  `json:"total_operations"`
	AverageProcessingTime float64 `json:"average_processing_time"` // milliseconds
	MemoryUsage           uint64  `json:"memory_usage"`            // heap bytes at snapshot time
	ActiveThreads         int     `json:"active_threads"`          // parallel worker bound
}

// Metrics aggregates per-request observations. The dispatcher owns one
// instance; there is no package-level mutable state. The running mean
// uses the incremental update avg += (new-avg)/count, and the counter
// and mean move together under one mutex so concurrent requests observe
// consistent snapshots. A Prometheus registry mirrors the same
// observations for scraping.
type Metrics struct {
	mu      sync.Mutex
	total   uint64
	avgMS   float64
	workers int

	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics creates a Metrics instance with its own Prometheus
// registry. workers is reported as ActiveThreads in snapshots.
func NewMetrics(workers int) *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		workers:  workers,
		registry: registry,
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "eva_requests_total",
				Help: "Total dispatched requests by engine and status",
			},
			[]string{"engine", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "eva_request_duration_seconds",
				Help:    "Dispatch latency in seconds, parse and serialize included",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"engine"},
		),
	}
	registry.MustRegister(m.requestsTotal, m.requestDuration)

	return m
}

// Observe records one completed dispatch. Called exactly once per
// request regardless of outcome, since elapsed time was spent either way.
func (m *Metrics) Observe(engine string, seconds float64, success bool) {
	status := "ok"
	if !success {
		status = "error"
	}
	m.requestsTotal.WithLabelValues(engine, status).Inc()
	m.requestDuration.WithLabelValues(engine).Observe(seconds)

	ms := seconds * 1000

	m.mu.Lock()
	m.total++
	m.avgMS += (ms - m.avgMS) / float64(m.total) // incremental running mean
	m.mu.Unlock()
}

// Snapshot returns the current metrics view.
func (m *Metrics) Snapshot() PerformanceMetrics {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)

	m.mu.Lock()
	snap := PerformanceMetrics{
		TotalOperations:       m.total,
		AverageProcessingTime: m.avgMS,
		MemoryUsage:           stats.HeapAlloc,
		ActiveThreads:         m.workers,
	}
	m.mu.Unlock()

	return snap
}

// Registry exposes the Prometheus registry for embedding into a
// surrounding service's scrape handler.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

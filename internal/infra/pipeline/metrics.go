package pipeline

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRecorder defines the interface for recording pipeline metrics.
// The abstraction keeps the adapters testable with a mock recorder and
// reusable across backends.
type MetricsRecorder interface {
	// RecordRun records the outcome and duration of one pipeline call.
	RecordRun(backend string, success bool, duration time.Duration)
}

// PrometheusMetrics implements MetricsRecorder using Prometheus metrics.
type PrometheusMetrics struct {
	runsTotal         *prometheus.CounterVec
	durationHistogram *prometheus.HistogramVec
}

var (
	prometheusMetricsInstance *PrometheusMetrics
	prometheusMetricsOnce     sync.Once
)

// NewPrometheusMetrics creates the Prometheus-based metrics recorder.
// Uses a singleton to avoid duplicate metric registration in tests.
func NewPrometheusMetrics() *PrometheusMetrics {
	prometheusMetricsOnce.Do(func() {
		prometheusMetricsInstance = &PrometheusMetrics{
			runsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "nlp_pipeline_runs_total",
				Help: "Total NLP pipeline calls by backend and status",
			}, []string{"backend", "status"}),
			durationHistogram: promauto.NewHistogramVec(prometheus.HistogramOpts{
				Name:    "nlp_pipeline_run_duration_seconds",
				Help:    "Time taken for one NLP pipeline call",
				Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
			}, []string{"backend"}),
		}
	})
	return prometheusMetricsInstance
}

// RecordRun implements MetricsRecorder.
func (p *PrometheusMetrics) RecordRun(backend string, success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "failure"
	}
	p.runsTotal.WithLabelValues(backend, status).Inc()
	p.durationHistogram.WithLabelValues(backend).Observe(duration.Seconds())
}

// Package slo tracks service level objectives: availability, latency
// percentiles, and error rate. A Tracker accumulates per-request
// measurements; a periodic job publishes the derived ratios as gauges.
package slo

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SLO targets for the application.
const (
	// AvailabilitySLO is the target uptime percentage (99.9%).
	AvailabilitySLO = 99.9

	// LatencyP95SLO is the target 95th percentile latency in seconds.
	LatencyP95SLO = 0.200

	// LatencyP99SLO is the target 99th percentile latency in seconds.
	LatencyP99SLO = 0.500

	// ErrorRateSLO is the maximum acceptable error rate as a ratio.
	ErrorRateSLO = 0.001
)

// Gauges updated by Tracker.Publish.
var (
	// SLOAvailability tracks the current availability ratio (0-1),
	// calculated as (total_requests - 5xx_errors) / total_requests.
	SLOAvailability = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_availability_ratio",
			Help: "Current availability ratio (0-1), target: 0.999",
		},
	)

	// SLOLatencyP95 tracks the current p95 latency in seconds.
	SLOLatencyP95 = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_latency_p95_seconds",
			Help: "Current p95 latency in seconds, target: 0.200",
		},
	)

	// SLOLatencyP99 tracks the current p99 latency in seconds.
	SLOLatencyP99 = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_latency_p99_seconds",
			Help: "Current p99 latency in seconds, target: 0.500",
		},
	)

	// SLOErrorRate tracks the current error rate ratio (0-1).
	SLOErrorRate = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_error_rate_ratio",
			Help: "Current error rate ratio (0-1), target: 0.001",
		},
	)
)

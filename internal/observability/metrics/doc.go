// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - HTTP request metrics (duration, count, size)
//   - Business metrics (transformations, quizzes, sessions)
//   - Content fetch metrics (duration, size, result)
//
// All metrics are automatically registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "tasktamer/internal/observability/metrics"
//
//	func summarize(text string) string {
//	    start := time.Now()
//	    // ... run the transformation ...
//	    metrics.RecordTransformation(metrics.ToolSummary, false, time.Since(start))
//	    return result
//	}
package metrics

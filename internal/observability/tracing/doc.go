// Package tracing provides OpenTelemetry tracing integration.
//
// Features:
//   - Automatic HTTP request tracing via middleware
//   - W3C Trace Context propagation from incoming requests
//   - Trace ID exposure through the X-Trace-Id response header
//
// Example usage:
//
//	import "tasktamer/internal/observability/tracing"
//
//	func resolveContent(ctx context.Context, url string) {
//	    ctx, span := tracing.GetTracer().Start(ctx, "locate-content")
//	    defer span.End()
//	    // ... fetch and extract ...
//	}
package tracing

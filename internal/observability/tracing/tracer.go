package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the process-wide tracer all spans hang off.
var tracer = otel.Tracer("tasktamer")

// GetTracer returns the application tracer.
//
//	ctx, span := tracing.GetTracer().Start(ctx, "quiz.generate")
//	defer span.End()
func GetTracer() trace.Tracer {
	return tracer
}

package pipeline

import (
	"context"

	"tasktamer/internal/usecase/transform"
)

// NoOp is the pipeline used when no backend API key is configured.
// Every Run fails with transform.ErrUnavailable, which routes each
// feature onto its deterministic heuristic.
type NoOp struct{}

// NewNoOp creates a new NoOp pipeline.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Name implements transform.Pipeline.
func (n *NoOp) Name() string { return "none" }

// Available implements transform.Pipeline.
func (n *NoOp) Available() bool { return false }

// Run implements transform.Pipeline. It always fails.
func (n *NoOp) Run(_ context.Context, _ string, _ []string) ([]string, error) {
	return nil, transform.ErrUnavailable
}

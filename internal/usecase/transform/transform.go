// Package transform defines the strategy contract shared by the three
// content-transformation features. Each feature pairs a deterministic
// heuristic implementation with an optional external NLP pipeline; the
// pipeline is consulted first when available and the heuristic is the
// mandatory fallback on any failure.
package transform

import (
	"context"
	"errors"
	"strings"
)

// Pipeline is an interface to an optional external NLP pipeline.
// Implementations submit the documents together with a natural-language
// instruction and return a list of result strings.
//
// Implementations must be safe for concurrent use. Callers must treat
// every error, including ErrUnavailable and ErrMalformedResult, as a
// signal to run their deterministic fallback.
type Pipeline interface {
	// Run submits documents with an instruction and returns the result list.
	Run(ctx context.Context, instruction string, documents []string) ([]string, error)

	// Available reports whether the pipeline can serve requests at all
	// (e.g. an API key is configured). It does not guarantee that a
	// subsequent Run will succeed.
	Available() bool

	// Name identifies the pipeline backend for logs and health reporting.
	Name() string
}

// Instruction templates submitted to the pipeline, one per feature.
const (
	SummarizeInstruction = "Summarize the following document:"
	QuestionInstruction  = "Generate a multiple-choice question with one correct answer and three incorrect alternatives from:"
	BreakTaskInstruction = "Break the following task into smaller steps:"
)

// Sentinel errors for pipeline operations.
var (
	// ErrUnavailable indicates the pipeline backend is not configured or
	// its circuit breaker is open.
	ErrUnavailable = errors.New("nlp pipeline unavailable")

	// ErrMalformedResult indicates the pipeline answered but the response
	// shape was unusable (empty result list, blank strings).
	ErrMalformedResult = errors.New("malformed nlp pipeline result")
)

// FirstResult runs the pipeline and returns the first non-blank result.
// Any failure, including a well-formed but empty response, surfaces as an
// error so the caller falls back to its heuristic.
func FirstResult(ctx context.Context, p Pipeline, instruction string, document string) (string, error) {
	if p == nil || !p.Available() {
		return "", ErrUnavailable
	}
	results, err := p.Run(ctx, instruction, []string{document})
	if err != nil {
		return "", err
	}
	for _, r := range results {
		if s := strings.TrimSpace(r); s != "" {
			return s, nil
		}
	}
	return "", ErrMalformedResult
}

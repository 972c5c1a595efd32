// Package summarize produces extractive summaries of arbitrary text.
// It delegates to the NLP pipeline when one is configured and falls back
// to a deterministic sentence-scoring heuristic otherwise. All edge cases
// resolve to a sentinel message rather than an error, so callers always
// receive displayable text.
package summarize

import (
	"context"
	"log/slog"
	"strings"

	"tasktamer/internal/observability/logging"
	"tasktamer/internal/usecase/transform"
	"tasktamer/internal/utils/text"
)

const (
	// MsgTooShort is returned for inputs under the minimum length.
	MsgTooShort = "Text is too short to summarize. Please provide a longer text."
	// MsgNoSentences is returned when no sentence survives filtering.
	MsgNoSentences = "Could not extract valid sentences for summarization."

	// minInputChars is the minimum trimmed input length worth summarizing.
	minInputChars = 50
)

// Service generates summaries, preferring the NLP pipeline when available.
type Service struct {
	pipeline transform.Pipeline
}

// NewService creates a summarization service.
//
// Parameters:
//   - pipeline: optional NLP backend; may be nil or unavailable, in which
//     case the heuristic summarizer handles every request
func NewService(pipeline transform.Pipeline) *Service {
	return &Service{pipeline: pipeline}
}

// Summarize returns a summary of input. The result is always a displayable
// string: validation failures and backend errors surface as fixed sentinel
// messages, never as an error value. The second return is true when the
// result came from the heuristic fallback rather than the NLP pipeline.
func (s *Service) Summarize(ctx context.Context, input string) (string, bool) {
	trimmed := strings.TrimSpace(input)
	if text.CountRunes(trimmed) < minInputChars {
		return MsgTooShort, true
	}

	log := logging.WithRequestID(ctx, slog.Default())
	if result, err := transform.FirstResult(ctx, s.pipeline, transform.SummarizeInstruction, trimmed); err == nil {
		log.Info("Summary produced by NLP pipeline",
			slog.String("backend", s.pipeline.Name()),
			slog.Int("input_chars", text.CountRunes(trimmed)))
		return result, false
	} else if s.pipeline != nil && s.pipeline.Available() {
		log.Warn("NLP pipeline summarization failed, using heuristic fallback",
			slog.String("backend", s.pipeline.Name()),
			slog.Any("error", err))
	}

	return extractiveSummary(trimmed), true
}

// Package breakdown decomposes free-form task descriptions into ordered,
// actionable steps, with helpers for next-action tips and coarse
// scheduling. Like the other transformers it prefers the NLP pipeline
// when one is configured and falls back to a rule-based decomposer.
package breakdown

import (
	"context"
	"log/slog"
	"strings"

	"tasktamer/internal/domain/entity"
	"tasktamer/internal/observability/logging"
	"tasktamer/internal/usecase/transform"
	"tasktamer/internal/utils/text"
)

// MsgMoreDetail is the single step returned for inputs too short to
// decompose.
const MsgMoreDetail = "Please provide a more detailed task description."

// minInputChars is the minimum trimmed description length worth
// decomposing.
const minInputChars = 10

// Service breaks tasks into steps.
type Service struct {
	pipeline transform.Pipeline
}

// NewService creates a task-breakdown service. pipeline may be nil.
func NewService(pipeline transform.Pipeline) *Service {
	return &Service{pipeline: pipeline}
}

// BreakTask decomposes description into at least two actionable steps.
// Too-short input yields a single prompt asking for more detail; every
// other path returns real steps, substituting a generic template when
// the description resists decomposition. The second return is true when
// the steps came from the rule-based fallback rather than the pipeline.
func (s *Service) BreakTask(ctx context.Context, description string) (entity.StepList, bool) {
	trimmed := strings.TrimSpace(description)
	if text.CountRunes(trimmed) < minInputChars {
		return entity.StepList{MsgMoreDetail}, true
	}

	log := logging.WithRequestID(ctx, slog.Default())
	if result, err := transform.FirstResult(ctx, s.pipeline, transform.BreakTaskInstruction, trimmed); err == nil {
		if steps := parsePipelineSteps(result); len(steps) >= 2 {
			log.Info("Task breakdown produced by NLP pipeline",
				slog.String("backend", s.pipeline.Name()),
				slog.Int("steps", len(steps)))
			return steps, false
		}
		log.Warn("NLP pipeline breakdown output unusable, using heuristic fallback",
			slog.String("backend", s.pipeline.Name()))
	} else if s.pipeline != nil && s.pipeline.Available() {
		log.Warn("NLP pipeline breakdown failed, using heuristic fallback",
			slog.String("backend", s.pipeline.Name()),
			slog.Any("error", err))
	}

	return decompose(trimmed), true
}

// parsePipelineSteps turns the pipeline's line-oriented answer into a
// step list, stripping list markers such as "1." or "-".
func parsePipelineSteps(raw string) entity.StepList {
	var steps entity.StepList
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "0123456789.-) ")
		if line == "" {
			continue
		}
		steps = append(steps, line)
	}
	return steps
}

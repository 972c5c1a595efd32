package pipeline

import (
	"log/slog"

	"tasktamer/internal/usecase/transform"
)

// Detect selects the pipeline backend once at startup based on which API
// keys are configured. Claude is preferred, then OpenAI; with no key the
// NoOp backend is returned and every feature runs in degraded mode.
func Detect(anthropicKey, openaiKey string, config Config) transform.Pipeline {
	switch {
	case anthropicKey != "":
		return NewClaude(anthropicKey, config)
	case openaiKey != "":
		return NewOpenAI(openaiKey, config)
	default:
		slog.Warn("no NLP pipeline API key configured, heuristic fallbacks will serve all requests")
		return NewNoOp()
	}
}

package locate

import (
	"context"
	"errors"
	"log/slog"

	"tasktamer/internal/observability/logging"
)

// User-facing messages for location failures. Errors never escape
// Resolve; they are folded into one of these strings.
const (
	MsgNoContent = "No readable content found."
	MsgNoVideoID = "Could not extract YouTube video ID from URL."

	errPrefix = "Error fetching webpage: "
)

// Service wraps a ContentLocator and converts its errors into displayable
// sentinel strings, so callers always receive text.
type Service struct {
	locator ContentLocator
}

// NewService creates a content location service.
func NewService(locator ContentLocator) *Service {
	return &Service{locator: locator}
}

// Resolve fetches the URL and returns its plain-text content. Failures
// resolve to a descriptive message rather than an error.
func (s *Service) Resolve(ctx context.Context, url string) string {
	text, err := s.locator.Resolve(ctx, url)
	if err == nil {
		return text
	}

	logging.WithRequestID(ctx, slog.Default()).Warn("Content location failed",
		slog.String("url", url),
		slog.Any("error", err))

	switch {
	case errors.Is(err, ErrNoContent):
		return MsgNoContent
	case errors.Is(err, ErrVideoID):
		return MsgNoVideoID
	default:
		return errPrefix + err.Error()
	}
}

// Package logging configures log/slog for the application and carries
// loggers and request IDs through contexts.
//
// The API server installs NewLogger as the process default; everything
// else logs through slog.Default or a request-scoped derivative:
//
//	logger := logging.NewLogger()
//	slog.SetDefault(logger)
//
//	// inside a request
//	log := logging.WithRequestID(ctx, slog.Default())
//	log.Info("quiz generated", slog.Int("questions", 5))
package logging

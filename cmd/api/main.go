package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"tasktamer/internal/infra/locator"
	"tasktamer/internal/infra/pipeline"
	"tasktamer/internal/observability/logging"
	"tasktamer/internal/observability/metrics"
	"tasktamer/internal/observability/slo"
	"tasktamer/internal/observability/tracing"
	"tasktamer/internal/session"
	"tasktamer/pkg/config"

	breakdownUC "tasktamer/internal/usecase/breakdown"
	locateUC "tasktamer/internal/usecase/locate"
	quizUC "tasktamer/internal/usecase/quiz"
	summarizeUC "tasktamer/internal/usecase/summarize"

	hhttp "tasktamer/internal/handler/http"
	hbreakdown "tasktamer/internal/handler/http/breakdown"
	hquiz "tasktamer/internal/handler/http/quiz"
	"tasktamer/internal/handler/http/requestid"
	"tasktamer/internal/handler/http/sessionctx"
	hsummary "tasktamer/internal/handler/http/summary"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg, err := config.LoadAppConfig()
	if err != nil {
		logger.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	features, err := config.LoadFeatures(cfg.FeaturesPath)
	if err != nil {
		logger.Error("failed to load feature flags", slog.Any("error", err))
		os.Exit(1)
	}

	version := getVersion()
	components := setupServer(logger, cfg, features, version)

	runServer(logger, cfg, components, version)
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// ServerComponents holds the assembled handlers and the shared state the
// server needs for background jobs and shutdown.
type ServerComponents struct {
	Handler        http.Handler
	MetricsHandler http.Handler
	Sessions       *session.Store
}

// setupServer wires the services, registers routes per the feature flags,
// and applies the middleware chain.
func setupServer(logger *slog.Logger, cfg *config.AppConfig, features config.Features, version string) *ServerComponents {
	pipe := pipeline.Detect(cfg.AnthropicAPIKey, cfg.OpenAIAPIKey, pipeline.Config{
		Model: cfg.PipelineModel,
	})
	if pipe.Available() {
		logger.Info("NLP pipeline active", slog.String("backend", pipe.Name()))
	}

	sessions := session.NewStore(session.Config{TTL: cfg.SessionTTL})

	var locateSvc *locateUC.Service
	if features.Locator {
		locateSvc = locateUC.NewService(locator.NewResolver(locator.DefaultConfig()))
	}

	mux := http.NewServeMux()
	if features.Summarizer {
		hsummary.Register(mux, summarizeUC.NewService(pipe), locateSvc)
	}
	if features.Breakdown {
		hbreakdown.Register(mux, breakdownUC.NewService(pipe), locateSvc)
	}
	if features.Quiz {
		hquiz.Register(mux, quizUC.NewService(pipe, cfg.MaxQuizQuestions), locateSvc)
	}
	logger.Info("features registered",
		slog.Bool("breakdown", features.Breakdown),
		slog.Bool("summarizer", features.Summarizer),
		slog.Bool("quiz", features.Quiz),
		slog.Bool("locator", features.Locator))

	// Tool routes carry the session cookie and per-IP rate limiting;
	// probe endpoints stay outside both so monitoring never creates
	// sessions or eats the rate budget.
	tools := applyToolMiddleware(cfg, sessions, mux)

	rootMux := http.NewServeMux()
	rootMux.Handle("/healthz", &hhttp.HealthHandler{
		Pipeline:    pipe,
		Sessions:    sessions,
		MaxSessions: session.DefaultConfig().MaxSessions,
		Version:     version,
	})
	rootMux.Handle("/readyz", &hhttp.ReadyHandler{Sessions: sessions})
	rootMux.Handle("/livez", &hhttp.LiveHandler{})
	rootMux.Handle("/", tools)

	handler := applyMiddleware(logger, cfg, rootMux)

	return &ServerComponents{
		Handler:        handler,
		MetricsHandler: hhttp.MetricsHandler(),
		Sessions:       sessions,
	}
}

// applyToolMiddleware wraps the tool routes with session resolution and
// rate limiting.
func applyToolMiddleware(cfg *config.AppConfig, sessions *session.Store, handler http.Handler) http.Handler {
	chain := sessionctx.Middleware(sessions)(handler)
	if cfg.RateLimitEnabled {
		limiter := hhttp.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		chain = limiter.Limit(chain)
	}
	return chain
}

// applyMiddleware wraps the root handler with the global middleware chain.
// Order, outermost first: Recover, Request ID, Tracing, Input Validation,
// Timeout, Logging, Metrics.
func applyMiddleware(logger *slog.Logger, cfg *config.AppConfig, handler http.Handler) http.Handler {
	// Applied in reverse so the first listed runs outermost.
	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Timeout(cfg.RequestTimeout)(chain)
	chain = hhttp.InputValidation()(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)
	chain = hhttp.Recover(logger)(chain)
	return chain
}

// startBackgroundJobs schedules the session purge and SLO publishing jobs.
// The returned cron is already started.
func startBackgroundJobs(logger *slog.Logger, cfg *config.AppConfig, sessions *session.Store) (*cron.Cron, error) {
	c := cron.New()

	purgeSpec := "@every " + cfg.SessionPurgeInterval.String()
	if _, err := c.AddFunc(purgeSpec, func() {
		purged := sessions.Purge()
		metrics.RecordSessionsPurged(purged)
		metrics.UpdateSessionsActive(sessions.Count())
		if purged > 0 {
			logger.Info("expired sessions purged",
				slog.Int("purged", purged),
				slog.Int("active", sessions.Count()))
		}
	}); err != nil {
		return nil, fmt.Errorf("schedule session purge: %w", err)
	}

	if _, err := c.AddFunc("@every 1m", func() {
		slo.Default.Publish()
	}); err != nil {
		return nil, fmt.Errorf("schedule SLO publish: %w", err)
	}

	c.Start()
	logger.Info("background jobs started", slog.String("purge_interval", cfg.SessionPurgeInterval.String()))
	return c, nil
}

// runServer starts the API and metrics servers and blocks until a
// shutdown signal arrives, then drains both within the shutdown timeout.
func runServer(logger *slog.Logger, cfg *config.AppConfig, components *ServerComponents, version string) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	jobs, err := startBackgroundJobs(logger, cfg, components.Sessions)
	if err != nil {
		logger.Error("failed to start background jobs", slog.Any("error", err))
		os.Exit(1)
	}

	apiSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           components.Handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", components.MetricsHandler)
	metricsSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.MetricsPort),
		Handler:           metricsMux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", apiSrv.Addr),
			slog.String("version", version))
		if err := apiSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("api server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		logger.Info("metrics server starting", slog.String("addr", metricsSrv.Addr))
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("shutting down server...")

		cronCtx := jobs.Stop()
		<-cronCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := apiSrv.Shutdown(shutdownCtx); err != nil {
			logger.Error("api server shutdown failed", slog.Any("error", err))
		}
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown failed", slog.Any("error", err))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}

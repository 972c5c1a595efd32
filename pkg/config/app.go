package config

import (
	"fmt"
	"time"
)

// AppConfig holds the full runtime configuration of the API server.
//
// All values are read from environment variables with sensible defaults,
// so the server starts with no configuration at all in development.
type AppConfig struct {
	// Port is the HTTP listen port for the API server.
	Port int

	// MetricsPort is the listen port for the Prometheus /metrics endpoint.
	MetricsPort int

	// MaxQuizQuestions caps the number of questions a single quiz request
	// may ask for. Counts outside [1, MaxQuizQuestions] reset to the
	// service default rather than failing the request.
	MaxQuizQuestions int

	// PipelineModel optionally pins the text pipeline to a specific model
	// identifier instead of the provider default.
	PipelineModel string

	// AnthropicAPIKey enables the Claude pipeline backend when non-empty.
	AnthropicAPIKey string

	// OpenAIAPIKey enables the OpenAI pipeline backend when non-empty.
	OpenAIAPIKey string

	// SessionTTL is how long an idle session is kept before being purged.
	SessionTTL time.Duration

	// SessionPurgeInterval is how often the background purge job runs.
	SessionPurgeInterval time.Duration

	// RequestTimeout bounds the total handling time of a single request.
	RequestTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown on SIGTERM.
	ShutdownTimeout time.Duration

	// RateLimitRPS and RateLimitBurst configure the per-client token
	// bucket. RateLimitEnabled turns the middleware off entirely.
	RateLimitEnabled bool
	RateLimitRPS     float64
	RateLimitBurst   int

	// FeaturesPath points at an optional YAML feature-flags file.
	// Empty means all features are enabled.
	FeaturesPath string
}

// LoadAppConfig reads the application configuration from the environment.
//
// Invalid values fall back to defaults with a warning log; Validate is
// called before returning so the caller gets a config that is safe to use.
func LoadAppConfig() (*AppConfig, error) {
	cfg := &AppConfig{
		Port:                 GetEnvInt("PORT", 8080),
		MetricsPort:          GetEnvInt("METRICS_PORT", 9090),
		MaxQuizQuestions:     GetEnvInt("MAX_QUIZ_QUESTIONS", 10),
		PipelineModel:        GetEnvString("PIPELINE_MODEL", ""),
		AnthropicAPIKey:      GetEnvString("ANTHROPIC_API_KEY", ""),
		OpenAIAPIKey:         GetEnvString("OPENAI_API_KEY", ""),
		SessionTTL:           GetEnvDuration("SESSION_TTL", 30*time.Minute),
		SessionPurgeInterval: GetEnvDuration("SESSION_PURGE_INTERVAL", 5*time.Minute),
		RequestTimeout:       GetEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
		ShutdownTimeout:      GetEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		RateLimitEnabled:     GetEnvBool("RATELIMIT_ENABLED", true),
		RateLimitRPS:         float64(GetEnvInt("RATELIMIT_RPS", 10)),
		RateLimitBurst:       GetEnvInt("RATELIMIT_BURST", 20),
		FeaturesPath:         GetEnvString("FEATURES_PATH", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks configuration invariants.
func (c *AppConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}

	if c.MetricsPort < 1 || c.MetricsPort > 65535 {
		return fmt.Errorf("metrics port must be between 1 and 65535, got %d", c.MetricsPort)
	}

	if c.MetricsPort == c.Port {
		return fmt.Errorf("metrics port must differ from API port, both are %d", c.Port)
	}

	if c.MaxQuizQuestions < 1 {
		return fmt.Errorf("max quiz questions must be at least 1, got %d", c.MaxQuizQuestions)
	}

	if err := ValidatePositiveDuration(c.SessionTTL); err != nil {
		return fmt.Errorf("invalid session TTL: %w", err)
	}

	if err := ValidateDurationRange(c.SessionPurgeInterval, 10*time.Second, 1*time.Hour); err != nil {
		return fmt.Errorf("invalid session purge interval: %w", err)
	}

	if err := ValidatePositiveDuration(c.RequestTimeout); err != nil {
		return fmt.Errorf("invalid request timeout: %w", err)
	}

	if err := ValidatePositiveDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if c.RateLimitEnabled {
		if c.RateLimitRPS <= 0 {
			return fmt.Errorf("rate limit RPS must be positive, got %v", c.RateLimitRPS)
		}
		if c.RateLimitBurst < 1 {
			return fmt.Errorf("rate limit burst must be at least 1, got %d", c.RateLimitBurst)
		}
	}

	return nil
}

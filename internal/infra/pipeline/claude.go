// Package pipeline provides adapters for the optional external NLP pipeline.
// It includes Claude (Anthropic) and OpenAI backends with circuit breaker and
// retry reliability patterns, plus a NoOp backend used when no API key is
// configured. Observability is provided through structured logging and
// Prometheus metrics.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"tasktamer/internal/resilience/circuitbreaker"
	"tasktamer/internal/resilience/retry"
	"tasktamer/internal/usecase/transform"
	"tasktamer/internal/utils/text"
)

const defaultClaudeModel = "claude-sonnet-4-5-20250929"

// Claude implements the transform.Pipeline interface using Anthropic's API.
// It includes circuit breaker and retry logic for improved reliability.
type Claude struct {
	client          anthropic.Client
	circuitBreaker  *circuitbreaker.CircuitBreaker
	retryConfig     retry.Config
	config          Config
	metricsRecorder MetricsRecorder
}

// NewClaude creates a new Claude pipeline adapter with the given API key.
// It automatically configures circuit breaker, retry logic, and metrics
// recording. Zero-valued config fields fall back to defaults.
func NewClaude(apiKey string, config Config) *Claude {
	config = config.withDefaults(defaultClaudeModel)

	slog.Info("Initialized Claude pipeline with configuration",
		slog.String("model", config.Model),
		slog.Int("max_tokens", config.MaxTokens))

	return &Claude{
		client:          anthropic.NewClient(option.WithAPIKey(apiKey)),
		circuitBreaker:  circuitbreaker.New(circuitbreaker.PipelineAPIConfig("claude-api")),
		retryConfig:     retry.PipelineAPIConfig(),
		config:          config,
		metricsRecorder: NewPrometheusMetrics(),
	}
}

// Name implements transform.Pipeline.
func (c *Claude) Name() string { return "claude" }

// Available implements transform.Pipeline. The adapter is only constructed
// with a key, so it always reports available; the circuit breaker governs
// per-call availability.
func (c *Claude) Available() bool { return true }

// Run submits the documents with the given instruction and returns the
// pipeline's result strings. It uses circuit breaker and retry logic.
func (c *Claude) Run(ctx context.Context, instruction string, documents []string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	var results []string

	retryErr := retry.WithBackoff(ctx, c.retryConfig, func() error {
		cbResult, err := c.circuitBreaker.Execute(func() (any, error) {
			return c.doRun(ctx, instruction, documents)
		})

		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("claude api circuit breaker open, request rejected",
					slog.String("service", "claude-api"),
					slog.String("state", c.circuitBreaker.State().String()))
				return fmt.Errorf("%w: circuit breaker open", transform.ErrUnavailable)
			}
			return err
		}

		results = cbResult.([]string)
		return nil
	})

	if retryErr != nil {
		return nil, fmt.Errorf("claude pipeline failed after retries: %w", retryErr)
	}

	return results, nil
}

// doRun performs the actual API call without retry or circuit breaker.
func (c *Claude) doRun(ctx context.Context, instruction string, documents []string) ([]string, error) {
	requestID := uuid.New().String()

	prompt, truncated := buildPrompt(instruction, documents)
	if truncated {
		slog.Warn("document truncated for claude api",
			slog.String("request_id", requestID))
	}

	slog.InfoContext(ctx, "Starting pipeline run",
		slog.String("request_id", requestID),
		slog.String("backend", c.Name()),
		slog.Int("prompt_length", text.CountRunes(prompt)))

	start := time.Now()

	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.config.Model),
		MaxTokens: int64(c.config.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewTextBlock(prompt),
			),
		},
	})

	duration := time.Since(start)

	if err != nil {
		slog.ErrorContext(ctx, "Pipeline run failed",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		c.metricsRecorder.RecordRun(c.Name(), false, duration)
		return nil, fmt.Errorf("claude api error: %w", err)
	}

	if len(message.Content) == 0 {
		slog.ErrorContext(ctx, "Claude API returned empty response",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration))
		c.metricsRecorder.RecordRun(c.Name(), false, duration)
		return nil, fmt.Errorf("%w: empty response", transform.ErrMalformedResult)
	}

	textBlock, ok := message.Content[0].AsAny().(anthropic.TextBlock)
	if !ok {
		slog.ErrorContext(ctx, "Claude API returned unexpected response type",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration))
		c.metricsRecorder.RecordRun(c.Name(), false, duration)
		return nil, fmt.Errorf("%w: unexpected response type", transform.ErrMalformedResult)
	}

	slog.InfoContext(ctx, "Pipeline run completed",
		slog.String("request_id", requestID),
		slog.Int("result_length", text.CountRunes(textBlock.Text)),
		slog.Duration("duration", duration))

	c.metricsRecorder.RecordRun(c.Name(), true, duration)

	return []string{textBlock.Text}, nil
}

// buildPrompt joins the instruction and documents into a single prompt,
// truncating oversized document text.
func buildPrompt(instruction string, documents []string) (string, bool) {
	doc := strings.Join(documents, "\n\n")
	doc, truncated := truncateDocument(doc)
	return instruction + "\n" + doc, truncated
}

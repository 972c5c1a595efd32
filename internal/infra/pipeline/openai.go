package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"

	"tasktamer/internal/resilience/circuitbreaker"
	"tasktamer/internal/resilience/retry"
	"tasktamer/internal/usecase/transform"
	"tasktamer/internal/utils/text"
)

const defaultOpenAIModel = "gpt-4o-mini"

// OpenAI implements the transform.Pipeline interface using OpenAI's API.
// It includes circuit breaker and retry logic for improved reliability.
type OpenAI struct {
	client          *openai.Client
	circuitBreaker  *circuitbreaker.CircuitBreaker
	retryConfig     retry.Config
	config          Config
	metricsRecorder MetricsRecorder
}

// NewOpenAI creates a new OpenAI pipeline adapter with the given API key.
// Zero-valued config fields fall back to defaults.
func NewOpenAI(apiKey string, config Config) *OpenAI {
	config = config.withDefaults(defaultOpenAIModel)

	slog.Info("Initialized OpenAI pipeline with configuration",
		slog.String("model", config.Model),
		slog.Int("max_tokens", config.MaxTokens))

	return &OpenAI{
		client:          openai.NewClient(apiKey),
		circuitBreaker:  circuitbreaker.New(circuitbreaker.PipelineAPIConfig("openai-api")),
		retryConfig:     retry.PipelineAPIConfig(),
		config:          config,
		metricsRecorder: NewPrometheusMetrics(),
	}
}

// Name implements transform.Pipeline.
func (o *OpenAI) Name() string { return "openai" }

// Available implements transform.Pipeline.
func (o *OpenAI) Available() bool { return true }

// Run submits the documents with the given instruction and returns the
// pipeline's result strings. It uses circuit breaker and retry logic.
func (o *OpenAI) Run(ctx context.Context, instruction string, documents []string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.config.Timeout)
	defer cancel()

	var results []string

	retryErr := retry.WithBackoff(ctx, o.retryConfig, func() error {
		cbResult, err := o.circuitBreaker.Execute(func() (any, error) {
			return o.doRun(ctx, instruction, documents)
		})

		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("openai api circuit breaker open, request rejected",
					slog.String("service", "openai-api"),
					slog.String("state", o.circuitBreaker.State().String()))
				return fmt.Errorf("%w: circuit breaker open", transform.ErrUnavailable)
			}
			return err
		}

		results = cbResult.([]string)
		return nil
	})

	if retryErr != nil {
		return nil, fmt.Errorf("openai pipeline failed after retries: %w", retryErr)
	}

	return results, nil
}

// doRun performs the actual API call without retry or circuit breaker.
func (o *OpenAI) doRun(ctx context.Context, instruction string, documents []string) ([]string, error) {
	requestID := uuid.New().String()

	prompt, truncated := buildPrompt(instruction, documents)
	if truncated {
		slog.Warn("document truncated for openai api",
			slog.String("request_id", requestID))
	}

	slog.InfoContext(ctx, "Starting pipeline run",
		slog.String("request_id", requestID),
		slog.String("backend", o.Name()),
		slog.Int("prompt_length", text.CountRunes(prompt)))

	start := time.Now()

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     o.config.Model,
		MaxTokens: o.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})

	duration := time.Since(start)

	if err != nil {
		slog.ErrorContext(ctx, "Pipeline run failed",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		o.metricsRecorder.RecordRun(o.Name(), false, duration)
		return nil, fmt.Errorf("openai api error: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		slog.ErrorContext(ctx, "OpenAI API returned empty response",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration))
		o.metricsRecorder.RecordRun(o.Name(), false, duration)
		return nil, fmt.Errorf("%w: empty response", transform.ErrMalformedResult)
	}

	result := resp.Choices[0].Message.Content

	slog.InfoContext(ctx, "Pipeline run completed",
		slog.String("request_id", requestID),
		slog.Int("result_length", text.CountRunes(result)),
		slog.Duration("duration", duration))

	o.metricsRecorder.RecordRun(o.Name(), true, duration)

	return []string{result}, nil
}

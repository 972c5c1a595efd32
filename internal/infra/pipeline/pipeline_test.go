package pipeline_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tasktamer/internal/infra/pipeline"
	"tasktamer/internal/usecase/transform"
)

func TestNoOp(t *testing.T) {
	p := pipeline.NewNoOp()

	if p.Available() {
		t.Error("NoOp.Available() = true, want false")
	}
	if p.Name() != "none" {
		t.Errorf("NoOp.Name() = %q, want %q", p.Name(), "none")
	}

	_, err := p.Run(context.Background(), transform.SummarizeInstruction, []string{"text"})
	if !errors.Is(err, transform.ErrUnavailable) {
		t.Errorf("NoOp.Run() error = %v, want ErrUnavailable", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     pipeline.Config
		wantErr bool
	}{
		{
			name:    "valid",
			cfg:     pipeline.Config{Model: "gpt-4o-mini", MaxTokens: 1024, Timeout: time.Minute},
			wantErr: false,
		},
		{
			name:    "missing model",
			cfg:     pipeline.Config{MaxTokens: 1024, Timeout: time.Minute},
			wantErr: true,
		},
		{
			name:    "non-positive max tokens",
			cfg:     pipeline.Config{Model: "m", MaxTokens: 0, Timeout: time.Minute},
			wantErr: true,
		},
		{
			name:    "non-positive timeout",
			cfg:     pipeline.Config{Model: "m", MaxTokens: 10},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name         string
		anthropicKey string
		openaiKey    string
		wantName     string
		wantAvail    bool
	}{
		{"claude preferred", "sk-ant-test", "sk-test", "claude", true},
		{"openai fallback", "", "sk-test", "openai", true},
		{"no keys", "", "", "none", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := pipeline.Detect(tt.anthropicKey, tt.openaiKey, pipeline.Config{})
			if p.Name() != tt.wantName {
				t.Errorf("Detect() backend = %q, want %q", p.Name(), tt.wantName)
			}
			if p.Available() != tt.wantAvail {
				t.Errorf("Detect() Available() = %v, want %v", p.Available(), tt.wantAvail)
			}
		})
	}
}

func TestClaude_Run_ContextTimeout(t *testing.T) {
	p := pipeline.NewClaude("invalid-test-key", pipeline.Config{})

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Millisecond)
	defer cancel()
	time.Sleep(10 * time.Millisecond)

	_, err := p.Run(ctx, transform.SummarizeInstruction, []string{"some text"})
	if err == nil {
		t.Error("Run() with expired context should return error")
	}
}

func TestFirstResult_Fallbacks(t *testing.T) {
	// Nil and unavailable pipelines both surface ErrUnavailable.
	if _, err := transform.FirstResult(context.Background(), nil, "x", "doc"); !errors.Is(err, transform.ErrUnavailable) {
		t.Errorf("FirstResult(nil) error = %v, want ErrUnavailable", err)
	}
	if _, err := transform.FirstResult(context.Background(), pipeline.NewNoOp(), "x", "doc"); !errors.Is(err, transform.ErrUnavailable) {
		t.Errorf("FirstResult(noop) error = %v, want ErrUnavailable", err)
	}
}

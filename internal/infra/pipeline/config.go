package pipeline

import (
	"fmt"
	"time"
)

const (
	// maxDocumentChars caps the document text submitted per request to
	// stay clear of token limits across backends.
	maxDocumentChars = 10000

	defaultMaxTokens = 1024
	defaultTimeout   = 60 * time.Second
)

// Config holds configuration parameters shared by the pipeline adapters.
type Config struct {
	// Model is the backend model identifier. Opaque to this application;
	// forwarded verbatim to the provider API.
	Model string

	// MaxTokens is the maximum number of tokens for the API response.
	MaxTokens int

	// Timeout is the maximum duration for a single pipeline API call.
	Timeout time.Duration
}

// Validate checks the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("model cannot be empty")
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive, got %d", c.MaxTokens)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	return nil
}

// withDefaults fills zero-valued fields with defaults, leaving Model as-is
// so each adapter can supply its own default model.
func (c Config) withDefaults(defaultModel string) Config {
	if c.Model == "" {
		c.Model = defaultModel
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = defaultMaxTokens
	}
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
	return c
}

// truncateDocument shortens a document to maxDocumentChars runes, marking
// the cut. Truncating on runes keeps the cap consistent for multibyte text
// and never splits a character.
func truncateDocument(doc string) (string, bool) {
	runes := []rune(doc)
	if len(runes) <= maxDocumentChars {
		return doc, false
	}
	return string(runes[:maxDocumentChars]) + "...\n(content truncated due to length)", true
}

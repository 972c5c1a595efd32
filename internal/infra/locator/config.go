// Package locator implements content location: fetching webpages with a
// layered text-extraction strategy and resolving video URLs to
// transcripts.
package locator

import "time"

// browserUserAgent is sent with webpage requests. Some sites serve an
// empty shell to unknown clients.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Config controls webpage fetching.
type Config struct {
	// Timeout is the maximum duration for a single HTTP request.
	Timeout time.Duration

	// MaxBodySize is the maximum response body size in bytes. Larger
	// responses are rejected to prevent memory exhaustion.
	MaxBodySize int64

	// MaxRedirects is the maximum number of redirects to follow. Every
	// redirect target is re-validated against the SSRF rules.
	MaxRedirects int

	// DenyPrivateIPs blocks URLs resolving to private, loopback, or
	// link-local addresses. Should always be true in production.
	DenyPrivateIPs bool
}

// DefaultConfig returns production-ready fetch settings.
func DefaultConfig() Config {
	return Config{
		Timeout:        10 * time.Second,
		MaxBodySize:    10 * 1024 * 1024,
		MaxRedirects:   5,
		DenyPrivateIPs: true,
	}
}

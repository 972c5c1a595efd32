// Package locate resolves a URL into plain text content suitable for the
// summarizer and quiz generator. Webpages are fetched and stripped down
// to readable text; video-platform URLs resolve to a transcript.
package locate

import (
	"context"
	"errors"
)

// ContentLocator resolves a URL to plain text.
//
// Implementations must prevent Server-Side Request Forgery, enforce body
// size limits, and apply a request timeout; the caller treats every error
// as non-fatal and converts it to a user-facing message.
type ContentLocator interface {
	// Resolve fetches the URL and returns extracted plain text.
	//
	// Errors:
	//   - ErrInvalidURL: malformed URL or unsupported scheme
	//   - ErrPrivateIP: URL resolves to a private IP (SSRF prevention)
	//   - ErrTooManyRedirects: redirect chain exceeded the maximum
	//   - ErrBodyTooLarge: response body exceeded the size limit
	//   - ErrTimeout: request timed out
	//   - ErrNoContent: page fetched but no readable text found
	//   - ErrVideoID: video URL without an extractable video ID
	//   - gobreaker.ErrOpenState: circuit breaker is open
	Resolve(ctx context.Context, url string) (string, error)
}

// Sentinel errors for content location. Callers use these to pick the
// right user-facing message; none of them is fatal to a request.
var (
	// ErrInvalidURL indicates a malformed URL or a scheme other than
	// http/https.
	ErrInvalidURL = errors.New("invalid URL or unsupported scheme")

	// ErrPrivateIP indicates the URL resolves to a private, loopback, or
	// link-local address. SSRF prevention.
	ErrPrivateIP = errors.New("private IP access denied (SSRF prevention)")

	// ErrTooManyRedirects indicates the redirect chain exceeded the
	// configured maximum.
	ErrTooManyRedirects = errors.New("too many redirects")

	// ErrBodyTooLarge indicates the response body exceeded the size limit.
	ErrBodyTooLarge = errors.New("response body too large")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("request timeout")

	// ErrNoContent indicates the page was fetched but no readable text
	// survived extraction.
	ErrNoContent = errors.New("no readable content found")

	// ErrVideoID indicates a video-platform URL whose video ID could not
	// be extracted from the path or query.
	ErrVideoID = errors.New("could not extract video ID")
)

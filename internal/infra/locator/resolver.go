package locator

import (
	"context"
	"log/slog"
)

// Resolver dispatches URLs to the right content source: video URLs
// resolve to a transcript, everything else is fetched as a webpage.
// It implements locate.ContentLocator.
type Resolver struct {
	webpages *WebpageFetcher
}

// NewResolver creates a resolver with the given fetch configuration.
func NewResolver(config Config) *Resolver {
	return &Resolver{webpages: NewWebpageFetcher(config)}
}

// Resolve classifies the URL and returns its plain-text content.
func (r *Resolver) Resolve(ctx context.Context, url string) (string, error) {
	if IsVideoURL(url) {
		id, err := videoID(url)
		if err != nil {
			return "", err
		}
		slog.Info("Resolving video URL to synthetic transcript",
			slog.String("video_id", id))
		return syntheticTranscript(id), nil
	}
	return r.webpages.Fetch(ctx, url)
}

// Package summary provides the HTTP handler for the summarization endpoint.
package summary

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"tasktamer/internal/handler/http/respond"
	"tasktamer/internal/observability/metrics"
	"tasktamer/internal/usecase/locate"
	"tasktamer/internal/usecase/summarize"
)

// SummarizeHandler handles POST /summarize requests.
type SummarizeHandler struct {
	Svc     *summarize.Service
	Locator *locate.Service
}

// ServeHTTP summarizes the submitted text, or the text behind the
// submitted URL when "url" is given instead of "content".
func (h SummarizeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	content, err := resolveContent(r.Context(), h.Locator, req.Content, req.URL)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	start := time.Now()
	summary, degraded := h.Svc.Summarize(r.Context(), content)
	metrics.RecordTransformation(metrics.ToolSummary, !degraded, time.Since(start))

	respond.JSON(w, http.StatusOK, Response{
		Summary:  summary,
		Degraded: degraded,
	})
}

// resolveContent picks the request's text input: inline content wins, a
// URL is fetched through the locator, and neither is a validation error.
func resolveContent(ctx context.Context, locator *locate.Service, content, url string) (string, error) {
	if content != "" {
		return content, nil
	}
	if url == "" {
		return "", errors.New("content or url is required")
	}
	if locator == nil {
		return "", errors.New("url input is not supported: no content locator configured")
	}
	return locator.Resolve(ctx, url), nil
}

package breakdown

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"tasktamer/internal/handler/http/respond"
	"tasktamer/internal/handler/http/sessionctx"
	"tasktamer/internal/observability/metrics"
	"tasktamer/internal/usecase/breakdown"
	"tasktamer/internal/usecase/locate"
)

// BreakHandler handles POST /breakdown requests.
type BreakHandler struct {
	Svc     *breakdown.Service
	Locator *locate.Service
}

// ServeHTTP decomposes the submitted task into steps and remembers them
// on the session for the schedule endpoint.
func (h BreakHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req BreakRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	task, err := resolveTask(r.Context(), h.Locator, req.Task, req.URL)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	start := time.Now()
	steps, degraded := h.Svc.BreakTask(r.Context(), task)
	metrics.RecordTransformation(metrics.ToolBreakdown, !degraded, time.Since(start))

	if sess := sessionctx.FromContext(r.Context()); sess != nil {
		sess.Lock()
		sess.Steps = steps
		sess.Unlock()
	}

	respond.JSON(w, http.StatusOK, BreakResponse{
		Steps:    steps,
		Degraded: degraded,
	})
}

// resolveTask picks the request's task text: inline task wins, a URL is
// fetched through the locator, and neither is a validation error.
func resolveTask(ctx context.Context, locator *locate.Service, task, url string) (string, error) {
	if task != "" {
		return task, nil
	}
	if url == "" {
		return "", errors.New("task or url is required")
	}
	if locator == nil {
		return "", errors.New("url input is not supported: no content locator configured")
	}
	return locator.Resolve(ctx, url), nil
}

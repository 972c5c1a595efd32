package breakdown

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"tasktamer/internal/domain/entity"
	"tasktamer/internal/handler/http/respond"
	"tasktamer/internal/handler/http/sessionctx"
	"tasktamer/internal/usecase/breakdown"
)

// ScheduleHandler handles POST /breakdown/schedule requests.
type ScheduleHandler struct{}

// ServeHTTP assigns each step a date and time slot. Steps come from the
// request body, or from the session's last breakdown when omitted.
func (h ScheduleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req ScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	steps := entity.StepList(req.Steps)
	if steps.IsEmpty() {
		if sess := sessionctx.FromContext(r.Context()); sess != nil {
			sess.Lock()
			steps = sess.Steps
			sess.Unlock()
		}
	}
	if steps.IsEmpty() {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("steps are required: submit steps or run a breakdown first"))
		return
	}

	start := time.Now()
	if req.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			respond.SafeError(w, http.StatusBadRequest,
				errors.New("start_date must be in YYYY-MM-DD format"))
			return
		}
		start = parsed
	}

	scheduled := breakdown.Schedule(steps, start)

	entries := make([]ScheduledEntry, 0, len(scheduled))
	for _, s := range scheduled {
		entries = append(entries, ScheduledEntry{
			Step:            s.Step,
			Date:            s.Date.Format("2006-01-02"),
			TimeSlot:        s.TimeSlot,
			DurationMinutes: int(s.Duration.Minutes()),
		})
	}

	respond.JSON(w, http.StatusOK, ScheduleResponse{Schedule: entries})
}

package quiz

import (
	"errors"
	"net/http"

	"tasktamer/internal/domain/entity"
	"tasktamer/internal/handler/http/respond"
	"tasktamer/internal/handler/http/sessionctx"
)

// ResultsHandler handles GET /quiz/results requests.
type ResultsHandler struct{}

// ServeHTTP returns the score, percentage, and feedback for the session's
// quiz. Results are available at any point after generation; unanswered
// questions simply count as incorrect.
func (h ResultsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess := sessionctx.FromContext(r.Context())
	if sess == nil {
		respond.SafeError(w, http.StatusInternalServerError, errNoSession)
		return
	}

	sess.Lock()
	defer sess.Unlock()

	if sess.Quiz == nil || sess.Quiz.State() == entity.SessionNotStarted {
		respond.SafeError(w, http.StatusNotFound,
			errors.New("quiz not found: generate a quiz first"))
		return
	}

	score, pct := sess.Quiz.Score()
	respond.JSON(w, http.StatusOK, ResultsResponse{
		Score:      score,
		Total:      len(sess.Quiz.Questions),
		Percentage: pct,
		Feedback:   sess.Quiz.Feedback(),
		State:      sess.Quiz.State().String(),
	})
}

// ResetHandler handles POST /quiz/reset requests.
type ResetHandler struct{}

// ServeHTTP discards the session's quiz state. Resetting without a quiz
// is a no-op, not an error.
func (h ResetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess := sessionctx.FromContext(r.Context())
	if sess == nil {
		respond.SafeError(w, http.StatusInternalServerError, errNoSession)
		return
	}

	sess.Lock()
	if sess.Quiz != nil {
		sess.Quiz.Reset()
	}
	sess.Unlock()

	respond.JSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

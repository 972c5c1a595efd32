package quiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"tasktamer/internal/domain/entity"
	"tasktamer/internal/handler/http/respond"
	"tasktamer/internal/handler/http/sessionctx"
)

// AnswerHandler handles POST /quiz/answer requests.
type AnswerHandler struct{}

// ServeHTTP records the user's answer for one question and returns the
// running score. Re-answering a question is idempotent.
func (h AnswerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess := sessionctx.FromContext(r.Context())
	if sess == nil {
		respond.SafeError(w, http.StatusInternalServerError, errNoSession)
		return
	}

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	sess.Lock()
	defer sess.Unlock()

	if sess.Quiz == nil || sess.Quiz.State() == entity.SessionNotStarted {
		respond.SafeError(w, http.StatusNotFound,
			errors.New("quiz not found: generate a quiz first"))
		return
	}

	correct, err := sess.Quiz.RecordAnswer(req.QuestionIdx, req.Selected)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrQuestionIndex):
			respond.HandleError(w, http.StatusBadRequest,
				respond.NewAppError(http.StatusBadRequest, "question index out of range", err))
		case errors.Is(err, entity.ErrQuizNotInProgress):
			respond.HandleError(w, http.StatusConflict,
				respond.NewAppError(http.StatusConflict, "quiz is not in progress", err))
		default:
			respond.SafeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	score, _ := sess.Quiz.Score()
	respond.JSON(w, http.StatusOK, AnswerResponse{
		Correct:   correct,
		Score:     score,
		Answered:  len(sess.Quiz.UserAnswers),
		Total:     len(sess.Quiz.Questions),
		Completed: sess.Quiz.State() == entity.SessionCompleted,
	})
}

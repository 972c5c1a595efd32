package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"time"

	"tasktamer/internal/domain/entity"
	"tasktamer/internal/handler/http/respond"
	"tasktamer/internal/handler/http/sessionctx"
	"tasktamer/internal/observability/metrics"
	"tasktamer/internal/usecase/locate"
	quizUC "tasktamer/internal/usecase/quiz"
)

// errNoSession is returned when a quiz endpoint is reached without the
// session middleware in front of it.
var errNoSession = errors.New("no session: quiz endpoints require a session cookie")

// GenerateHandler handles POST /quiz requests.
type GenerateHandler struct {
	Svc     *quizUC.Service
	Locator *locate.Service

	// Rng overrides option-shuffle randomness in tests. When nil a fresh
	// source is used per request, since rand.Rand is not safe for
	// concurrent use.
	Rng *rand.Rand
}

// ServeHTTP generates a quiz from the submitted content, installs it on
// the session, and returns the questions with shuffled options. Correct
// answers never leave the server.
func (h GenerateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess := sessionctx.FromContext(r.Context())
	if sess == nil {
		respond.SafeError(w, http.StatusInternalServerError, errNoSession)
		return
	}

	var req GenerateRequest
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
	questions := h.Svc.Generate(r.Context(), content, req.NumQuestions)
	if len(questions) == 0 {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("content is required: could not generate any questions"))
		return
	}

	degraded := questions[0].Degraded
	metrics.RecordTransformation(metrics.ToolQuiz, !degraded, time.Since(start))
	if degraded {
		metrics.RecordDegradedQuiz()
	}

	rng := h.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// Shuffle once and store the presented order on the session, so the
	// client and server agree on what the user saw.
	formatted := quizUC.FormatAll(questions, rng)
	dtos := make([]QuestionDTO, 0, len(formatted))
	for i, f := range formatted {
		questions[i].Options = f.Options
		dtos = append(dtos, QuestionDTO{
			Question: f.Question,
			Options:  f.Options,
			Degraded: f.Degraded,
		})
	}

	sess.Lock()
	if sess.Quiz == nil {
		sess.Quiz = entity.NewQuizSession()
	}
	err = sess.Quiz.Start(questions)
	sess.Unlock()
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, GenerateResponse{
		Questions: dtos,
		Count:     len(dtos),
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

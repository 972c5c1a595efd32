package quiz

import (
	"errors"
	"math/rand"
	"net/http"
	"time"

	"tasktamer/internal/handler/http/respond"
	"tasktamer/internal/handler/http/sessionctx"
	"tasktamer/internal/observability/metrics"
	quizUC "tasktamer/internal/usecase/quiz"
)

// exportContentTypes maps export formats to their response headers.
var exportContentTypes = map[string]struct {
	contentType string
	filename    string
}{
	quizUC.FormatCSV:  {"text/csv; charset=utf-8", "quiz_questions.csv"},
	quizUC.FormatJSON: {"application/json; charset=utf-8", "quiz_questions.json"},
	quizUC.FormatText: {"text/plain; charset=utf-8", "quiz_questions.txt"},
}

// ExportHandler handles GET /quiz/export requests.
type ExportHandler struct {
	// Rng overrides option-shuffle randomness in tests. When nil a fresh
	// source is used per request.
	Rng *rand.Rand
}

// ServeHTTP renders the session's quiz in the requested format as a
// downloadable attachment. Each export re-shuffles option order; the
// question content never changes.
func (h ExportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess := sessionctx.FromContext(r.Context())
	if sess == nil {
		respond.SafeError(w, http.StatusInternalServerError, errNoSession)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = quizUC.FormatCSV
	}

	headers, ok := exportContentTypes[format]
	if !ok {
		respond.HandleError(w, http.StatusBadRequest,
			respond.NewAppError(http.StatusBadRequest, "unsupported export format: use csv, json, or text", nil))
		return
	}

	sess.Lock()
	defer sess.Unlock()

	if sess.Quiz == nil || len(sess.Quiz.Questions) == 0 {
		respond.SafeError(w, http.StatusNotFound,
			errors.New("quiz not found: generate a quiz first"))
		return
	}

	rng := h.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	body, err := quizUC.Export(sess.Quiz.Questions, format, rng)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	metrics.RecordQuizExport(format)

	w.Header().Set("Content-Type", headers.contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+headers.filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

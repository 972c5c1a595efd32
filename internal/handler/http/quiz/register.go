package quiz

import (
	"net/http"

	"tasktamer/internal/usecase/locate"
	quizUC "tasktamer/internal/usecase/quiz"
)

// Register registers the quiz endpoints with the given mux. All of them
// require the session middleware in front of the mux.
func Register(mux *http.ServeMux, svc *quizUC.Service, locator *locate.Service) {
	mux.Handle("POST /quiz", GenerateHandler{Svc: svc, Locator: locator})
	mux.Handle("POST /quiz/answer", AnswerHandler{})
	mux.Handle("GET /quiz/results", ResultsHandler{})
	mux.Handle("GET /quiz/export", ExportHandler{})
	mux.Handle("POST /quiz/reset", ResetHandler{})
}

package breakdown

import (
	"net/http"

	"tasktamer/internal/usecase/breakdown"
	"tasktamer/internal/usecase/locate"
)

// Register registers the task-breakdown endpoints with the given mux.
func Register(mux *http.ServeMux, svc *breakdown.Service, locator *locate.Service) {
	mux.Handle("POST /breakdown", BreakHandler{Svc: svc, Locator: locator})
	mux.Handle("POST /breakdown/schedule", ScheduleHandler{})
	mux.Handle("POST /breakdown/suggest", SuggestHandler{})
}

package summary

import (
	"net/http"

	"tasktamer/internal/usecase/locate"
	"tasktamer/internal/usecase/summarize"
)

// Register registers the summarization endpoint with the given mux.
func Register(mux *http.ServeMux, svc *summarize.Service, locator *locate.Service) {
	mux.Handle("POST /summarize", SummarizeHandler{Svc: svc, Locator: locator})
}

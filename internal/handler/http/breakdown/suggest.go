package breakdown

import (
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"time"

	"tasktamer/internal/handler/http/respond"
	"tasktamer/internal/usecase/breakdown"
)

// SuggestHandler handles POST /breakdown/suggest requests.
type SuggestHandler struct {
	// Rng overrides the tip-selection randomness in tests. When nil a
	// fresh source is used per request, since rand.Rand is not safe for
	// concurrent use.
	Rng *rand.Rand
}

// ServeHTTP returns a study tip matched to the submitted step.
func (h SuggestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req SuggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Step == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("step is required"))
		return
	}

	rng := h.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	respond.JSON(w, http.StatusOK, SuggestResponse{
		Tip: breakdown.SuggestNextAction(req.Step, rng),
	})
}

package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/Nhat-School/F1-Demo/internal/service"
)

// SubmitResultsRequest is the body of POST /api/races/{id}/results: the full
// outcome sheet for one race. A re-submission replaces the stored results.
type SubmitResultsRequest struct {
	Outcomes []service.OutcomeInput `json:"outcomes" validate:"required,min=1,dive"`
}

// SubmitResults handles POST /api/races/{id}/results.
func (h *Handlers) SubmitResults(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	raceID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.httpError(w, "Invalid race id", http.StatusBadRequest)
		return
	}

	var req SubmitResultsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.httpError(w, "Invalid body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		h.httpError(w, err.Error(), http.StatusBadRequest)
		return
	}

	results, err := h.results.SubmitOutcomes(ctx, raceID, req.Outcomes)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	// Stored results changed, the cached leaderboards are stale.
	h.standings.Invalidate()

	h.respondJSON(w, http.StatusOK, results)
}

// GetRaceResults handles GET /api/races/{id}/results, used to pre-fill the
// results entry form with previously stored rows.
func (h *Handlers) GetRaceResults(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	raceID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.httpError(w, "Invalid race id", http.StatusBadRequest)
		return
	}

	results, err := h.results.RaceResults(ctx, raceID)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, results)
}

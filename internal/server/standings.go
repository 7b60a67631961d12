package server

import (
	"net/http"

	"github.com/google/uuid"
)

// GetStandings handles GET /api/standings, returning both leaderboards.
func (h *Handlers) GetStandings(w http.ResponseWriter, r *http.Request) {
	table, err := h.standings.Standings(r.Context())
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, table)
}

// GetRacerStanding handles GET /api/standings/racers/{id}.
func (h *Handlers) GetRacerStanding(w http.ResponseWriter, r *http.Request) {
	racerID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.httpError(w, "Invalid racer id", http.StatusBadRequest)
		return
	}

	standing, err := h.standings.RacerStanding(r.Context(), racerID)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, standing)
}

// GetTeamStanding handles GET /api/standings/teams/{id}, the per-race
// drill-down for one team.
func (h *Handlers) GetTeamStanding(w http.ResponseWriter, r *http.Request) {
	teamID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.httpError(w, "Invalid team id", http.StatusBadRequest)
		return
	}

	standing, err := h.standings.TeamStanding(r.Context(), teamID)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, standing)
}

// RefreshStandings handles POST /api/standings/refresh, forcing an immediate
// recomputation outside the cron cadence.
func (h *Handlers) RefreshStandings(w http.ResponseWriter, r *http.Request) {
	table, err := h.standings.Refresh(r.Context())
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, table)
}

package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Nhat-School/F1-Demo/internal/models"
)

// RegistrationRequest enters one racer into a race under a team. The team
// recorded here is what scoring will snapshot when results come in, even if
// the racer later moves teams.
type RegistrationRequest struct {
	TeamID  uuid.UUID `json:"team_id" validate:"required"`
	RacerID uuid.UUID `json:"racer_id" validate:"required"`
}

// CreateRegistration handles POST /api/races/{id}/registrations.
func (h *Handlers) CreateRegistration(w http.ResponseWriter, r *http.Request) {
	raceID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.httpError(w, "Invalid race id", http.StatusBadRequest)
		return
	}

	var req RegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.httpError(w, "Invalid body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		h.httpError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Referenced rows must exist before the insert so the operator gets a
	// 404 instead of an opaque foreign key violation.
	if _, err := h.repos.Race.GetByID(r.Context(), raceID); err != nil {
		h.serviceError(w, err)
		return
	}
	if _, err := h.repos.Team.GetByID(r.Context(), req.TeamID); err != nil {
		h.serviceError(w, err)
		return
	}
	if _, err := h.repos.Racer.GetByID(r.Context(), req.RacerID); err != nil {
		h.serviceError(w, err)
		return
	}

	registration := &models.Registration{
		ID:        uuid.New(),
		RaceID:    raceID,
		TeamID:    req.TeamID,
		RacerID:   req.RacerID,
		CreatedAt: time.Now(),
	}

	if err := h.repos.Registration.Create(r.Context(), registration); err != nil {
		h.serviceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, registration)
}

// ListRegistrations handles GET /api/races/{id}/registrations.
func (h *Handlers) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	raceID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.httpError(w, "Invalid race id", http.StatusBadRequest)
		return
	}

	registrations, err := h.repos.Registration.GetByRaceID(r.Context(), raceID)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, registrations)
}

// DeleteRegistration handles DELETE /api/registrations/{id}.
func (h *Handlers) DeleteRegistration(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.httpError(w, "Invalid registration id", http.StatusBadRequest)
		return
	}

	if err := h.repos.Registration.Delete(r.Context(), id); err != nil {
		h.serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

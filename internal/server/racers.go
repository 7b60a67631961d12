package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Nhat-School/F1-Demo/internal/models"
)

// RacerRequest is the body for creating or updating a racer.
type RacerRequest struct {
	Code        string     `json:"code" validate:"required,len=3"`
	Name        string     `json:"name" validate:"required"`
	Nationality *string    `json:"nationality,omitempty"`
	DateOfBirth *time.Time `json:"dob,omitempty"`
	Biography   *string    `json:"biography,omitempty"`
	TeamID      *uuid.UUID `json:"team_id,omitempty"`
}

// CreateRacer handles POST /api/racers.
func (h *Handlers) CreateRacer(w http.ResponseWriter, r *http.Request) {
	var req RacerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.httpError(w, "Invalid body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		h.httpError(w, err.Error(), http.StatusBadRequest)
		return
	}

	racer := &models.Racer{
		ID:          uuid.New(),
		Code:        req.Code,
		Name:        req.Name,
		Nationality: req.Nationality,
		DateOfBirth: req.DateOfBirth,
		Biography:   req.Biography,
		TeamID:      req.TeamID,
		CreatedAt:   time.Now(),
	}

	if err := h.repos.Racer.Create(r.Context(), racer); err != nil {
		h.serviceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, racer)
}

// ListRacers handles GET /api/racers.
func (h *Handlers) ListRacers(w http.ResponseWriter, r *http.Request) {
	racers, err := h.repos.Racer.List(r.Context())
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, racers)
}

// GetRacer handles GET /api/racers/{id}.
func (h *Handlers) GetRacer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.httpError(w, "Invalid racer id", http.StatusBadRequest)
		return
	}

	racer, err := h.repos.Racer.GetByID(r.Context(), id)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, racer)
}

// UpdateRacer handles PUT /api/racers/{id}.
func (h *Handlers) UpdateRacer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.httpError(w, "Invalid racer id", http.StatusBadRequest)
		return
	}

	var req RacerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.httpError(w, "Invalid body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		h.httpError(w, err.Error(), http.StatusBadRequest)
		return
	}

	racer, err := h.repos.Racer.GetByID(r.Context(), id)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	racer.Code = req.Code
	racer.Name = req.Name
	racer.Nationality = req.Nationality
	racer.DateOfBirth = req.DateOfBirth
	racer.Biography = req.Biography
	racer.TeamID = req.TeamID

	if err := h.repos.Racer.Update(r.Context(), racer); err != nil {
		h.serviceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, racer)
}

// DeleteRacer handles DELETE /api/racers/{id}.
func (h *Handlers) DeleteRacer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.httpError(w, "Invalid racer id", http.StatusBadRequest)
		return
	}

	if err := h.repos.Racer.Delete(r.Context(), id); err != nil {
		h.serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

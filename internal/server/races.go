package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Nhat-School/F1-Demo/internal/models"
)

// RaceRequest is the body for creating or updating a race.
type RaceRequest struct {
	Code        string     `json:"code" validate:"required,len=3"`
	Name        string     `json:"name" validate:"required"`
	Location    *string    `json:"location,omitempty"`
	Laps        *int       `json:"laps,omitempty" validate:"omitempty,gt=0"`
	ScheduledAt *time.Time `json:"time,omitempty"`
	Description *string    `json:"description,omitempty"`
}

// CreateRace handles POST /api/races.
func (h *Handlers) CreateRace(w http.ResponseWriter, r *http.Request) {
	var req RaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.httpError(w, "Invalid body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		h.httpError(w, err.Error(), http.StatusBadRequest)
		return
	}

	race := &models.Race{
		ID:          uuid.New(),
		Code:        req.Code,
		Name:        req.Name,
		Location:    req.Location,
		Laps:        req.Laps,
		ScheduledAt: req.ScheduledAt,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}

	if err := h.repos.Race.Create(r.Context(), race); err != nil {
		h.serviceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, race)
}

// ListRaces handles GET /api/races.
func (h *Handlers) ListRaces(w http.ResponseWriter, r *http.Request) {
	races, err := h.repos.Race.List(r.Context())
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, races)
}

// GetRace handles GET /api/races/{id}.
func (h *Handlers) GetRace(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.httpError(w, "Invalid race id", http.StatusBadRequest)
		return
	}

	race, err := h.repos.Race.GetByID(r.Context(), id)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, race)
}

// UpdateRace handles PUT /api/races/{id}.
func (h *Handlers) UpdateRace(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.httpError(w, "Invalid race id", http.StatusBadRequest)
		return
	}

	var req RaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.httpError(w, "Invalid body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		h.httpError(w, err.Error(), http.StatusBadRequest)
		return
	}

	race, err := h.repos.Race.GetByID(r.Context(), id)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	race.Code = req.Code
	race.Name = req.Name
	race.Location = req.Location
	race.Laps = req.Laps
	race.ScheduledAt = req.ScheduledAt
	race.Description = req.Description

	if err := h.repos.Race.Update(r.Context(), race); err != nil {
		h.serviceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, race)
}

// DeleteRace handles DELETE /api/races/{id}.
func (h *Handlers) DeleteRace(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.httpError(w, "Invalid race id", http.StatusBadRequest)
		return
	}

	if err := h.repos.Race.Delete(r.Context(), id); err != nil {
		h.serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

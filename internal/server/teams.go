package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Nhat-School/F1-Demo/internal/models"
)

// TeamRequest is the body for creating or updating a team.
type TeamRequest struct {
	Code        string  `json:"code" validate:"required,len=3"`
	Name        string  `json:"name" validate:"required"`
	Brand       *string `json:"brand,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CreateTeam handles POST /api/teams.
func (h *Handlers) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req TeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.httpError(w, "Invalid body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		h.httpError(w, err.Error(), http.StatusBadRequest)
		return
	}

	team := &models.Team{
		ID:          uuid.New(),
		Code:        req.Code,
		Name:        req.Name,
		Brand:       req.Brand,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}

	if err := h.repos.Team.Create(r.Context(), team); err != nil {
		h.serviceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, team)
}

// ListTeams handles GET /api/teams.
func (h *Handlers) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.repos.Team.List(r.Context())
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, teams)
}

// GetTeam handles GET /api/teams/{id}.
func (h *Handlers) GetTeam(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.httpError(w, "Invalid team id", http.StatusBadRequest)
		return
	}

	team, err := h.repos.Team.GetByID(r.Context(), id)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, team)
}

// UpdateTeam handles PUT /api/teams/{id}.
func (h *Handlers) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.httpError(w, "Invalid team id", http.StatusBadRequest)
		return
	}

	var req TeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.httpError(w, "Invalid body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		h.httpError(w, err.Error(), http.StatusBadRequest)
		return
	}

	team, err := h.repos.Team.GetByID(r.Context(), id)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	team.Code = req.Code
	team.Name = req.Name
	team.Brand = req.Brand
	team.Description = req.Description

	if err := h.repos.Team.Update(r.Context(), team); err != nil {
		h.serviceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, team)
}

// DeleteTeam handles DELETE /api/teams/{id}.
func (h *Handlers) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.httpError(w, "Invalid team id", http.StatusBadRequest)
		return
	}

	if err := h.repos.Team.Delete(r.Context(), id); err != nil {
		h.serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

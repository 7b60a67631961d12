// Package server exposes the championship API over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/Nhat-School/F1-Demo/internal/models"
	"github.com/Nhat-School/F1-Demo/internal/repository"
	"github.com/Nhat-School/F1-Demo/internal/service"
)

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// Handlers holds all HTTP handlers and their dependencies.
type Handlers struct {
	repos     *repository.Repositories
	results   *service.ResultsService
	standings *service.StandingsService
	log       *logrus.Logger
	validate  *validator.Validate
}

// NewHandlers creates a Handlers instance over the repositories and services.
func NewHandlers(
	repos *repository.Repositories,
	results *service.ResultsService,
	standings *service.StandingsService,
	log *logrus.Logger,
) *Handlers {
	return &Handlers{
		repos:     repos,
		results:   results,
		standings: standings,
		log:       log,
		validate:  validator.New(),
	}
}

func (h *Handlers) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

func (h *Handlers) httpError(w http.ResponseWriter, message string, code int) {
	h.respondJSON(w, code, ErrorResponse{
		Error: message,
		Code:  strconv.Itoa(code),
	})
}

// serviceError maps domain errors onto HTTP statuses before falling back
// to a 500 that hides the internal message.
func (h *Handlers) serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		h.httpError(w, "Not found", http.StatusNotFound)
	case errors.Is(err, models.ErrDuplicateKey):
		h.httpError(w, "Duplicate entry", http.StatusConflict)
	case errors.Is(err, models.ErrRacerNotEntered),
		errors.Is(err, models.ErrNoOutcomes),
		errors.Is(err, models.ErrUnknownStatus),
		errors.Is(err, models.ErrMissingFinishTime),
		errors.Is(err, models.ErrBadFinishTime):
		h.httpError(w, err.Error(), http.StatusBadRequest)
	default:
		h.log.WithError(err).Error("Request failed")
		h.httpError(w, "Internal server error", http.StatusInternalServerError)
	}
}

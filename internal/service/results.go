// Package service orchestrates scoring runs and standings reads over the
// repository layer.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Nhat-School/F1-Demo/internal/logger"
	"github.com/Nhat-School/F1-Demo/internal/metrics"
	"github.com/Nhat-School/F1-Demo/internal/models"
	"github.com/Nhat-School/F1-Demo/internal/repository"
	"github.com/Nhat-School/F1-Demo/internal/scoring"
)

// OutcomeInput is one operator-entered row of the results form, before the
// racer's team is resolved from their registration.
type OutcomeInput struct {
	RacerID       uuid.UUID     `json:"racer_id" validate:"required"`
	Status        models.Status `json:"status" validate:"required,oneof=FINISHED DNF DNS"`
	LapsCompleted int           `json:"laps_completed" validate:"gte=0"`
	FinishTime    string        `json:"finish_time,omitempty"`
}

// ResultsService runs the scoring pipeline for a race: resolve registrations,
// score, persist.
type ResultsService struct {
	raceRepo         repository.RaceRepository
	registrationRepo repository.RegistrationRepository
	resultRepo       repository.ResultRepository
	log              *logrus.Logger
	audit            *logger.AuditLogger
}

// NewResultsService creates a new results service
func NewResultsService(
	raceRepo repository.RaceRepository,
	registrationRepo repository.RegistrationRepository,
	resultRepo repository.ResultRepository,
	log *logrus.Logger,
) *ResultsService {
	return &ResultsService{
		raceRepo:         raceRepo,
		registrationRepo: registrationRepo,
		resultRepo:       resultRepo,
		log:              log,
		audit:            logger.NewAuditLogger(log),
	}
}

// SubmitOutcomes scores one race's outcomes and persists the full batch.
// The computation happens before any write, so a failed save leaves existing
// stored results untouched and the operator re-submits the whole race.
func (s *ResultsService) SubmitOutcomes(ctx context.Context, raceID uuid.UUID, inputs []OutcomeInput) ([]models.Result, error) {
	start := time.Now()

	if len(inputs) == 0 {
		return nil, models.ErrNoOutcomes
	}

	if _, err := s.raceRepo.GetByID(ctx, raceID); err != nil {
		return nil, fmt.Errorf("failed to load race %s: %w", raceID, err)
	}

	registrations, err := s.registrationRepo.GetByRaceID(ctx, raceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load registrations for race %s: %w", raceID, err)
	}

	teamByRacer := make(map[uuid.UUID]uuid.UUID, len(registrations))
	for _, reg := range registrations {
		teamByRacer[reg.RacerID] = reg.TeamID
	}

	outcomes := make([]models.Outcome, 0, len(inputs))
	for _, in := range inputs {
		teamID, ok := teamByRacer[in.RacerID]
		if !ok {
			metrics.RecordScoringRejected()
			s.audit.LogResultsRejected(raceID.String(), fmt.Sprintf("racer %s not registered", in.RacerID))
			return nil, fmt.Errorf("racer %s: %w", in.RacerID, models.ErrRacerNotEntered)
		}
		outcomes = append(outcomes, models.Outcome{
			RacerID:       in.RacerID,
			TeamID:        teamID,
			Status:        in.Status,
			LapsCompleted: in.LapsCompleted,
			FinishTime:    in.FinishTime,
		})
	}

	results, err := scoring.Score(raceID, outcomes)
	if err != nil {
		metrics.RecordScoringRejected()
		s.audit.LogResultsRejected(raceID.String(), err.Error())
		return nil, fmt.Errorf("failed to score race %s: %w", raceID, err)
	}

	if err := s.resultRepo.UpsertBatch(ctx, results); err != nil {
		return nil, fmt.Errorf("failed to save results for race %s: %w", raceID, err)
	}

	finishers := 0
	for _, r := range results {
		if r.Rank != nil {
			finishers++
		}
	}

	metrics.RecordScoringRun(time.Since(start).Seconds(), len(results))
	s.audit.LogScoringRun(raceID.String(), len(outcomes), finishers, start)
	s.audit.LogResultsSaved(raceID.String(), len(results))
	s.log.WithFields(logrus.Fields{
		"race_id":   raceID,
		"outcomes":  len(outcomes),
		"finishers": finishers,
	}).Info("Scoring run complete")

	return results, nil
}

// RaceResults returns the stored results for a race, used to pre-fill the
// results entry form.
func (s *ResultsService) RaceResults(ctx context.Context, raceID uuid.UUID) ([]*models.Result, error) {
	if _, err := s.raceRepo.GetByID(ctx, raceID); err != nil {
		return nil, fmt.Errorf("failed to load race %s: %w", raceID, err)
	}

	results, err := s.resultRepo.GetByRaceID(ctx, raceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load results for race %s: %w", raceID, err)
	}

	return results, nil
}

package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/Nhat-School/F1-Demo/internal/models"
)

// RacerRepository defines the interface for racer data access
type RacerRepository interface {
	Create(ctx context.Context, racer *models.Racer) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Racer, error)
	List(ctx context.Context) ([]*models.Racer, error)
	Update(ctx context.Context, racer *models.Racer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TeamRepository defines the interface for team data access
type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error)
	List(ctx context.Context) ([]*models.Team, error)
	Update(ctx context.Context, team *models.Team) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// RaceRepository defines the interface for race data access
type RaceRepository interface {
	Create(ctx context.Context, race *models.Race) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Race, error)
	List(ctx context.Context) ([]*models.Race, error)
	Update(ctx context.Context, race *models.Race) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// RegistrationRepository defines the interface for race registration data access
type RegistrationRepository interface {
	Create(ctx context.Context, registration *models.Registration) error
	GetByRaceID(ctx context.Context, raceID uuid.UUID) ([]*models.Registration, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ResultRepository defines the interface for race result data access.
// UpsertBatch is the scoring engine's persistence contract: keyed by
// (race_id, racer_id), a re-run replaces the previous rows in full.
type ResultRepository interface {
	UpsertBatch(ctx context.Context, results []models.Result) error
	GetByRaceID(ctx context.Context, raceID uuid.UUID) ([]*models.Result, error)
	GetJoined(ctx context.Context) ([]models.JoinedResult, error)
}

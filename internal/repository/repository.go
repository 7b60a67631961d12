package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Nhat-School/F1-Demo/internal/database"
	"github.com/Nhat-School/F1-Demo/internal/models"
)

// Repositories holds all repository implementations
type Repositories struct {
	Racer        RacerRepository
	Team         TeamRepository
	Race         RaceRepository
	Registration RegistrationRepository
	Result       ResultRepository
}

// NewRepositories creates and returns all repository implementations
func NewRepositories(db *database.DB) (*Repositories, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}

	return &Repositories{
		Racer:        NewPostgresRacerRepository(db),
		Team:         NewPostgresTeamRepository(db),
		Race:         NewPostgresRaceRepository(db),
		Registration: NewPostgresRegistrationRepository(db),
		Result:       NewPostgresResultRepository(db),
	}, nil
}

// mapWriteError translates driver-level constraint violations into the
// sentinel errors callers are expected to match on
func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return models.ErrDuplicateKey
	}
	return err
}

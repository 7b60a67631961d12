package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Nhat-School/F1-Demo/internal/database"
	"github.com/Nhat-School/F1-Demo/internal/models"
)

const errScanRace = "failed to scan race: %w"

// PostgresRaceRepository implements RaceRepository for PostgreSQL
type PostgresRaceRepository struct {
	db *database.DB
}

// NewPostgresRaceRepository creates a new race repository
func NewPostgresRaceRepository(db *database.DB) RaceRepository {
	return &PostgresRaceRepository{db: db}
}

// Create inserts a new race
func (r *PostgresRaceRepository) Create(ctx context.Context, race *models.Race) error {
	query := `
		INSERT INTO races (id, code, name, location, laps, time, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.GetPool().Exec(ctx, query,
		race.ID, race.Code, race.Name, race.Location, race.Laps,
		race.ScheduledAt, race.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to create race: %w", mapWriteError(err))
	}

	return nil
}

// GetByID retrieves a race by ID
func (r *PostgresRaceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Race, error) {
	query := `
		SELECT id, code, name, location, laps, time, description, created_at
		FROM races WHERE id = $1
	`

	race := &models.Race{}
	err := r.db.GetPool().QueryRow(ctx, query, id).Scan(
		&race.ID, &race.Code, &race.Name, &race.Location, &race.Laps,
		&race.ScheduledAt, &race.Description, &race.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get race: %w", err)
	}

	return race, nil
}

// List retrieves all races, most recently created first
func (r *PostgresRaceRepository) List(ctx context.Context) ([]*models.Race, error) {
	query := `
		SELECT id, code, name, location, laps, time, description, created_at
		FROM races
		ORDER BY created_at DESC
	`

	rows, err := r.db.GetPool().Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query races: %w", err)
	}
	defer rows.Close()

	var races []*models.Race
	for rows.Next() {
		race := &models.Race{}
		err := rows.Scan(
			&race.ID, &race.Code, &race.Name, &race.Location, &race.Laps,
			&race.ScheduledAt, &race.Description, &race.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf(errScanRace, err)
		}
		races = append(races, race)
	}

	return races, rows.Err()
}

// Update updates an existing race
func (r *PostgresRaceRepository) Update(ctx context.Context, race *models.Race) error {
	query := `
		UPDATE races SET
			code = $2, name = $3, location = $4, laps = $5, time = $6, description = $7
		WHERE id = $1
	`

	commandTag, err := r.db.GetPool().Exec(ctx, query,
		race.ID, race.Code, race.Name, race.Location, race.Laps,
		race.ScheduledAt, race.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to update race: %w", mapWriteError(err))
	}

	if commandTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

// Delete deletes a race
func (r *PostgresRaceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := "DELETE FROM races WHERE id = $1"

	commandTag, err := r.db.GetPool().Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete race: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

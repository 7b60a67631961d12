package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Nhat-School/F1-Demo/internal/database"
	"github.com/Nhat-School/F1-Demo/internal/models"
)

const errScanRacer = "failed to scan racer: %w"

// PostgresRacerRepository implements RacerRepository for PostgreSQL
type PostgresRacerRepository struct {
	db *database.DB
}

// NewPostgresRacerRepository creates a new racer repository
func NewPostgresRacerRepository(db *database.DB) RacerRepository {
	return &PostgresRacerRepository{db: db}
}

// Create inserts a new racer
func (r *PostgresRacerRepository) Create(ctx context.Context, racer *models.Racer) error {
	query := `
		INSERT INTO racers (id, code, name, nationality, dob, biography, team_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.GetPool().Exec(ctx, query,
		racer.ID, racer.Code, racer.Name, racer.Nationality, racer.DateOfBirth,
		racer.Biography, racer.TeamID,
	)
	if err != nil {
		return fmt.Errorf("failed to create racer: %w", mapWriteError(err))
	}

	return nil
}

// GetByID retrieves a racer by ID
func (r *PostgresRacerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Racer, error) {
	query := `
		SELECT id, code, name, nationality, dob, biography, team_id, created_at
		FROM racers WHERE id = $1
	`

	racer := &models.Racer{}
	err := r.db.GetPool().QueryRow(ctx, query, id).Scan(
		&racer.ID, &racer.Code, &racer.Name, &racer.Nationality, &racer.DateOfBirth,
		&racer.Biography, &racer.TeamID, &racer.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get racer: %w", err)
	}

	return racer, nil
}

// List retrieves all racers ordered by name
func (r *PostgresRacerRepository) List(ctx context.Context) ([]*models.Racer, error) {
	query := `
		SELECT id, code, name, nationality, dob, biography, team_id, created_at
		FROM racers
		ORDER BY name ASC
	`

	rows, err := r.db.GetPool().Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query racers: %w", err)
	}
	defer rows.Close()

	var racers []*models.Racer
	for rows.Next() {
		racer := &models.Racer{}
		err := rows.Scan(
			&racer.ID, &racer.Code, &racer.Name, &racer.Nationality, &racer.DateOfBirth,
			&racer.Biography, &racer.TeamID, &racer.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf(errScanRacer, err)
		}
		racers = append(racers, racer)
	}

	return racers, rows.Err()
}

// Update updates an existing racer
func (r *PostgresRacerRepository) Update(ctx context.Context, racer *models.Racer) error {
	query := `
		UPDATE racers SET
			code = $2, name = $3, nationality = $4, dob = $5, biography = $6, team_id = $7
		WHERE id = $1
	`

	commandTag, err := r.db.GetPool().Exec(ctx, query,
		racer.ID, racer.Code, racer.Name, racer.Nationality, racer.DateOfBirth,
		racer.Biography, racer.TeamID,
	)
	if err != nil {
		return fmt.Errorf("failed to update racer: %w", mapWriteError(err))
	}

	if commandTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

// Delete deletes a racer
func (r *PostgresRacerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := "DELETE FROM racers WHERE id = $1"

	commandTag, err := r.db.GetPool().Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete racer: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

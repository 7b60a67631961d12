package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Nhat-School/F1-Demo/internal/database"
	"github.com/Nhat-School/F1-Demo/internal/models"
)

// PostgresRegistrationRepository implements RegistrationRepository for PostgreSQL
type PostgresRegistrationRepository struct {
	db *database.DB
}

// NewPostgresRegistrationRepository creates a new registration repository
func NewPostgresRegistrationRepository(db *database.DB) RegistrationRepository {
	return &PostgresRegistrationRepository{db: db}
}

// Create inserts a new registration. The unique (race_id, racer_id) constraint
// surfaces as ErrDuplicateKey when a racer is entered twice.
func (r *PostgresRegistrationRepository) Create(ctx context.Context, registration *models.Registration) error {
	query := `
		INSERT INTO race_registrations (id, race_id, team_id, racer_id)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.GetPool().Exec(ctx, query,
		registration.ID, registration.RaceID, registration.TeamID, registration.RacerID,
	)
	if err != nil {
		return fmt.Errorf("failed to create registration: %w", mapWriteError(err))
	}

	return nil
}

// GetByRaceID retrieves all registrations for a race joined with racer and
// team identity, in a stable order.
func (r *PostgresRegistrationRepository) GetByRaceID(ctx context.Context, raceID uuid.UUID) ([]*models.Registration, error) {
	query := `
		SELECT rr.id, rr.race_id, rr.team_id, rr.racer_id, rr.created_at,
		       ra.id, ra.code, ra.name, ra.nationality, ra.team_id, ra.created_at,
		       t.id, t.code, t.name, t.brand, t.created_at
		FROM race_registrations rr
		JOIN racers ra ON ra.id = rr.racer_id
		JOIN teams t ON t.id = rr.team_id
		WHERE rr.race_id = $1
		ORDER BY rr.id
	`

	rows, err := r.db.GetPool().Query(ctx, query, raceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query registrations: %w", err)
	}
	defer rows.Close()

	var registrations []*models.Registration
	for rows.Next() {
		reg := &models.Registration{Racer: &models.Racer{}, Team: &models.Team{}}
		err := rows.Scan(
			&reg.ID, &reg.RaceID, &reg.TeamID, &reg.RacerID, &reg.CreatedAt,
			&reg.Racer.ID, &reg.Racer.Code, &reg.Racer.Name, &reg.Racer.Nationality,
			&reg.Racer.TeamID, &reg.Racer.CreatedAt,
			&reg.Team.ID, &reg.Team.Code, &reg.Team.Name, &reg.Team.Brand, &reg.Team.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan registration: %w", err)
		}
		registrations = append(registrations, reg)
	}

	return registrations, rows.Err()
}

// Delete deletes a registration
func (r *PostgresRegistrationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := "DELETE FROM race_registrations WHERE id = $1"

	commandTag, err := r.db.GetPool().Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete registration: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Nhat-School/F1-Demo/internal/database"
	"github.com/Nhat-School/F1-Demo/internal/models"
)

// PostgresResultRepository implements ResultRepository for PostgreSQL
type PostgresResultRepository struct {
	db *database.DB
}

// NewPostgresResultRepository creates a new result repository
func NewPostgresResultRepository(db *database.DB) ResultRepository {
	return &PostgresResultRepository{db: db}
}

const upsertResultQuery = `
	INSERT INTO race_results (race_id, racer_id, team_id, status, laps_completed, finish_time, rank, score)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (race_id, racer_id) DO UPDATE SET
		team_id = EXCLUDED.team_id,
		status = EXCLUDED.status,
		laps_completed = EXCLUDED.laps_completed,
		finish_time = EXCLUDED.finish_time,
		rank = EXCLUDED.rank,
		score = EXCLUDED.score,
		updated_at = NOW()
`

// UpsertBatch writes a full scoring run atomically. Each row replaces any
// previous row for its (race_id, racer_id) key. The whole batch runs in one
// transaction so a failed save leaves the stored results untouched.
func (r *PostgresResultRepository) UpsertBatch(ctx context.Context, results []models.Result) error {
	if len(results) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for i := range results {
		res := &results[i]
		batch.Queue(upsertResultQuery,
			res.RaceID, res.RacerID, res.TeamID, res.Status, res.LapsCompleted,
			res.FinishTime, res.Rank, res.Score,
		)
	}

	return r.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		br := tx.SendBatch(ctx, batch)
		defer br.Close()

		for range results {
			if _, err := br.Exec(); err != nil {
				return fmt.Errorf("failed to upsert race result: %w", err)
			}
		}
		return br.Close()
	})
}

// GetByRaceID retrieves all results for a race, used to pre-fill the results
// entry form with previously saved rows.
func (r *PostgresResultRepository) GetByRaceID(ctx context.Context, raceID uuid.UUID) ([]*models.Result, error) {
	query := `
		SELECT race_id, racer_id, team_id, status, laps_completed, finish_time, rank, score, created_at, updated_at
		FROM race_results
		WHERE race_id = $1
		ORDER BY rank NULLS LAST, racer_id
	`

	rows, err := r.db.GetPool().Query(ctx, query, raceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query race results: %w", err)
	}
	defer rows.Close()

	var results []*models.Result
	for rows.Next() {
		res := &models.Result{}
		err := rows.Scan(
			&res.RaceID, &res.RacerID, &res.TeamID, &res.Status, &res.LapsCompleted,
			&res.FinishTime, &res.Rank, &res.Score, &res.CreatedAt, &res.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan race result: %w", err)
		}
		results = append(results, res)
	}

	return results, rows.Err()
}

// GetJoined retrieves the full result history joined with race, racer and
// team identity, the standings aggregation input. The team join uses the
// team_id snapshot stored on the result row, so historical standings are
// unaffected by a racer later changing teams. The racer's current team is
// joined separately: it only labels the racer row in the leaderboard.
func (r *PostgresResultRepository) GetJoined(ctx context.Context) ([]models.JoinedResult, error) {
	query := `
		SELECT res.race_id, race.name,
		       res.racer_id, racer.name, racer.code, racer.nationality, current_team.name,
		       res.team_id, team.name, team.brand,
		       res.status, res.laps_completed, res.finish_time, res.rank, res.score
		FROM race_results res
		JOIN races race ON race.id = res.race_id
		JOIN racers racer ON racer.id = res.racer_id
		JOIN teams team ON team.id = res.team_id
		LEFT JOIN teams current_team ON current_team.id = racer.team_id
		ORDER BY race.created_at ASC, res.rank NULLS LAST
	`

	rows, err := r.db.GetPool().Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query joined results: %w", err)
	}
	defer rows.Close()

	var joined []models.JoinedResult
	for rows.Next() {
		var row models.JoinedResult
		err := rows.Scan(
			&row.RaceID, &row.RaceName,
			&row.RacerID, &row.RacerName, &row.RacerCode, &row.Nationality, &row.CurrentTeam,
			&row.TeamID, &row.TeamName, &row.TeamBrand,
			&row.Status, &row.LapsCompleted, &row.FinishTime, &row.Rank, &row.Score,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan joined result: %w", err)
		}
		joined = append(joined, row)
	}

	return joined, rows.Err()
}

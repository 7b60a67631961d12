package database

import (
	"context"
	"fmt"

	"github.com/Nhat-School/F1-Demo/internal/config"
)

// Schema statements applied on startup. All statements are idempotent so the
// bootstrap can run on every boot.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS teams (
		id UUID PRIMARY KEY,
		code CHAR(3) NOT NULL UNIQUE,
		name TEXT NOT NULL,
		brand TEXT,
		description TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS racers (
		id UUID PRIMARY KEY,
		code CHAR(3) NOT NULL UNIQUE,
		name TEXT NOT NULL,
		nationality TEXT,
		dob DATE,
		biography TEXT,
		team_id UUID REFERENCES teams(id) ON DELETE SET NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS races (
		id UUID PRIMARY KEY,
		code CHAR(3) NOT NULL UNIQUE,
		name TEXT NOT NULL,
		location TEXT,
		laps INTEGER,
		time TIMESTAMPTZ,
		description TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS race_registrations (
		id UUID PRIMARY KEY,
		race_id UUID NOT NULL REFERENCES races(id) ON DELETE CASCADE,
		team_id UUID NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
		racer_id UUID NOT NULL REFERENCES racers(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (race_id, racer_id)
	)`,
	`CREATE TABLE IF NOT EXISTS race_results (
		race_id UUID NOT NULL REFERENCES races(id) ON DELETE CASCADE,
		racer_id UUID NOT NULL REFERENCES racers(id) ON DELETE CASCADE,
		team_id UUID NOT NULL REFERENCES teams(id),
		status TEXT NOT NULL,
		laps_completed INTEGER NOT NULL DEFAULT 0,
		finish_time TEXT,
		rank INTEGER,
		score INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (race_id, racer_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_race_results_racer ON race_results (racer_id)`,
	`CREATE INDEX IF NOT EXISTS idx_race_results_team ON race_results (team_id)`,
	`CREATE INDEX IF NOT EXISTS idx_registrations_race ON race_registrations (race_id)`,
}

// Initialize creates a database connection pool and applies the schema
func Initialize(ctx context.Context, cfg *config.Config) (*DB, error) {
	db, err := NewDB(ctx, &cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate applies the schema statements in order
func (db *DB) Migrate(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Status classifies a racer's outcome in a race
type Status string

// Recognized outcome statuses. Anything else is rejected at the input boundary.
const (
	StatusFinished Status = "FINISHED"
	StatusDNF      Status = "DNF"
	StatusDNS      Status = "DNS"
)

// IsValid checks whether the status is one of the recognized values
func (s Status) IsValid() bool {
	switch s {
	case StatusFinished, StatusDNF, StatusDNS:
		return true
	default:
		return false
	}
}

// Outcome is the operator-entered raw observation for one racer in one race,
// before scoring. TeamID is resolved from the racer's registration and carried
// into the persisted result as a snapshot of the team raced for.
type Outcome struct {
	RacerID       uuid.UUID `json:"racer_id" validate:"required"`
	TeamID        uuid.UUID `json:"team_id" validate:"required"`
	Status        Status    `json:"status" validate:"required,oneof=FINISHED DNF DNS"`
	LapsCompleted int       `json:"laps_completed" validate:"gte=0"`
	FinishTime    string    `json:"finish_time,omitempty"`
}

// Result is the scored, persisted record for one (race, racer) pair. A scoring
// run replaces the full row for every racer in its input set, never a partial
// update.
type Result struct {
	RaceID        uuid.UUID `db:"race_id" json:"race_id" validate:"required"`
	RacerID       uuid.UUID `db:"racer_id" json:"racer_id" validate:"required"`
	TeamID        uuid.UUID `db:"team_id" json:"team_id" validate:"required"`
	Status        Status    `db:"status" json:"status" validate:"required,oneof=FINISHED DNF DNS"`
	LapsCompleted int       `db:"laps_completed" json:"laps_completed" validate:"gte=0"`
	FinishTime    *string   `db:"finish_time" json:"finish_time,omitempty"`
	Rank          *int      `db:"rank" json:"rank,omitempty"`
	Score         int       `db:"score" json:"score" validate:"gte=0"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// IsClassified checks whether the result counts toward the finisher ranking
func (r *Result) IsClassified() bool {
	return r.Status == StatusFinished
}

// GetRank returns the rank or 0 when unranked
func (r *Result) GetRank() int {
	if r.Rank == nil {
		return 0
	}
	return *r.Rank
}

// GetFinishTime returns the finish time text or an empty string when absent
func (r *Result) GetFinishTime() string {
	if r.FinishTime == nil {
		return ""
	}
	return *r.FinishTime
}

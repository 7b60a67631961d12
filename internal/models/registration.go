package models

import (
	"time"

	"github.com/google/uuid"
)

// Registration enters a racer into a race under a team. The two-racers-per-team
// rule is enforced at registration time, downstream consumers rely on it but do
// not re-check it.
type Registration struct {
	ID        uuid.UUID `db:"id" json:"id" validate:"required,uuid4"`
	RaceID    uuid.UUID `db:"race_id" json:"race_id" validate:"required"`
	TeamID    uuid.UUID `db:"team_id" json:"team_id" validate:"required"`
	RacerID   uuid.UUID `db:"racer_id" json:"racer_id" validate:"required"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	Racer     *Racer    `db:"-" json:"racer,omitempty"`
	Team      *Team     `db:"-" json:"team,omitempty"`
}

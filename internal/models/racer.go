package models

import (
	"time"

	"github.com/google/uuid"
)

// Racer represents a championship competitor
type Racer struct {
	ID          uuid.UUID  `db:"id" json:"id" validate:"required,uuid4"`
	Code        string     `db:"code" json:"code" validate:"required,len=3"`
	Name        string     `db:"name" json:"name" validate:"required"`
	Nationality *string    `db:"nationality" json:"nationality,omitempty"`
	DateOfBirth *time.Time `db:"dob" json:"dob,omitempty"`
	Biography   *string    `db:"biography" json:"biography,omitempty"`
	TeamID      *uuid.UUID `db:"team_id" json:"team_id,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	Team        *Team      `db:"-" json:"team,omitempty"`
}

// HasTeam checks whether the racer currently belongs to a team
func (r *Racer) HasTeam() bool {
	return r.TeamID != nil
}

// GetNationality returns the nationality or an empty string if unset
func (r *Racer) GetNationality() string {
	if r.Nationality == nil {
		return ""
	}
	return *r.Nationality
}

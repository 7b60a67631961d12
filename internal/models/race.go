package models

import (
	"time"

	"github.com/google/uuid"
)

// Race represents a single championship round
type Race struct {
	ID          uuid.UUID  `db:"id" json:"id" validate:"required,uuid4"`
	Code        string     `db:"code" json:"code" validate:"required,len=3"`
	Name        string     `db:"name" json:"name" validate:"required"`
	Location    *string    `db:"location" json:"location,omitempty"`
	Laps        *int       `db:"laps" json:"laps,omitempty" validate:"omitempty,gt=0"`
	ScheduledAt *time.Time `db:"time" json:"time,omitempty"`
	Description *string    `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}

// IsUpcoming checks if the race is scheduled in the future
func (r *Race) IsUpcoming() bool {
	return r.ScheduledAt != nil && r.ScheduledAt.After(time.Now())
}

// TimeToStart returns the duration until the scheduled start, zero when unscheduled
func (r *Race) TimeToStart() time.Duration {
	if r.ScheduledAt == nil {
		return 0
	}
	return time.Until(*r.ScheduledAt)
}

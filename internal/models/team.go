package models

import (
	"time"

	"github.com/google/uuid"
)

// Team represents a racing team entering the championship
type Team struct {
	ID          uuid.UUID `db:"id" json:"id" validate:"required,uuid4"`
	Code        string    `db:"code" json:"code" validate:"required,len=3"`
	Name        string    `db:"name" json:"name" validate:"required"`
	Brand       *string   `db:"brand" json:"brand,omitempty"`
	Description *string   `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// GetBrand returns the brand/owner label or an empty string if unset
func (t *Team) GetBrand() string {
	if t.Brand == nil {
		return ""
	}
	return *t.Brand
}

package models

import (
	"errors"
	"fmt"
)

// Custom errors
var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateKey      = errors.New("duplicate key violation")
	ErrInvalidID         = errors.New("invalid ID format")
	ErrUnknownStatus     = errors.New("unrecognized outcome status")
	ErrRacerNotEntered   = errors.New("racer is not registered for this race")
	ErrNoOutcomes        = errors.New("no outcomes submitted")
	ErrMissingFinishTime = errors.New("finish time is required for finished racers")
	ErrBadFinishTime     = errors.New("finish time is not in HH:MM:SS.mmm form")
)

// ValidationError carries a machine-readable code alongside the message
type ValidationError struct {
	Code    string
	Message string
}

// NewValidationError creates a validation error with a code and message
func NewValidationError(code, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

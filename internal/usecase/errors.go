package usecase

import (
	"errors"
	"fmt"

	"garage-booking/internal/data/entity"
	"garage-booking/pkg/utils"
)

// Domain errors are typed so handlers can map them to HTTP statuses
// with errors.Is / errors.As instead of matching message strings.
var (
	// ErrNoAvailability means no in-service spot of the requested type
	// is free for the requested window.
	ErrNoAvailability = errors.New("no spot available for the requested window")

	// ErrInvalidCredentials covers failed logins.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError carries field-level detail for malformed input.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

// NewValidationError builds a single-field validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// InvalidTransitionError reports an illegal booking status change. It
// names both the current and the requested status.
type InvalidTransitionError struct {
	Current   entity.BookingStatus
	Requested entity.BookingStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition booking from %s to %s", e.Current, e.Requested)
}

// InvalidAddonTransitionError is the addon counterpart.
type InvalidAddonTransitionError struct {
	Current   entity.AddonStatus
	Requested entity.AddonStatus
}

func (e *InvalidAddonTransitionError) Error() string {
	return fmt.Sprintf("cannot transition addon from %s to %s", e.Current, e.Requested)
}

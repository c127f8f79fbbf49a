package usecase

import (
	"testing"

	"garage-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
)

func TestBookingTransitions(t *testing.T) {
	table := DefaultTransitions()

	tests := []struct {
		from    entity.BookingStatus
		to      entity.BookingStatus
		allowed bool
	}{
		{entity.BookingStatusPending, entity.BookingStatusConfirmed, true},
		{entity.BookingStatusPending, entity.BookingStatusCancelled, true},
		{entity.BookingStatusPending, entity.BookingStatusCheckedIn, false},
		{entity.BookingStatusPending, entity.BookingStatusCheckedOut, false},
		{entity.BookingStatusConfirmed, entity.BookingStatusCheckedIn, true},
		{entity.BookingStatusConfirmed, entity.BookingStatusCancelled, true},
		{entity.BookingStatusConfirmed, entity.BookingStatusCheckedOut, false},
		{entity.BookingStatusCheckedIn, entity.BookingStatusCheckedOut, true},
		{entity.BookingStatusCheckedIn, entity.BookingStatusCancelled, false},
		{entity.BookingStatusCheckedOut, entity.BookingStatusCancelled, false},
		{entity.BookingStatusCheckedOut, entity.BookingStatusPending, false},
		{entity.BookingStatusCancelled, entity.BookingStatusConfirmed, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, table.Allowed(tt.from, tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestTerminalStatesHaveNoTargets(t *testing.T) {
	table := DefaultTransitions()

	assert.Empty(t, table[entity.BookingStatusCheckedOut])
	assert.Empty(t, table[entity.BookingStatusCancelled])
}

func TestAddonTransitionsOnlyMoveForward(t *testing.T) {
	table := DefaultAddonTransitions()

	assert.True(t, table.Allowed(entity.AddonStatusPending, entity.AddonStatusInProgress))
	assert.True(t, table.Allowed(entity.AddonStatusPending, entity.AddonStatusDone))
	assert.True(t, table.Allowed(entity.AddonStatusInProgress, entity.AddonStatusDone))

	assert.False(t, table.Allowed(entity.AddonStatusInProgress, entity.AddonStatusPending))
	assert.False(t, table.Allowed(entity.AddonStatusDone, entity.AddonStatusInProgress))
	assert.False(t, table.Allowed(entity.AddonStatusDone, entity.AddonStatusPending))
}

package usecase

import (
	"garage-booking/internal/data/entity"
)

// TransitionTable lists the allowed target statuses per current
// status. Terminal statuses map to an empty set. It lives here as data
// rather than scattered ifs so adding a status means extending one
// table.
type TransitionTable map[entity.BookingStatus][]entity.BookingStatus

// DefaultTransitions is the booking state machine:
// PENDING -> CONFIRMED | CANCELLED
// CONFIRMED -> CHECKED_IN | CANCELLED
// CHECKED_IN -> CHECKED_OUT
// CHECKED_OUT, CANCELLED -> terminal
func DefaultTransitions() TransitionTable {
	return TransitionTable{
		entity.BookingStatusPending:    {entity.BookingStatusConfirmed, entity.BookingStatusCancelled},
		entity.BookingStatusConfirmed:  {entity.BookingStatusCheckedIn, entity.BookingStatusCancelled},
		entity.BookingStatusCheckedIn:  {entity.BookingStatusCheckedOut},
		entity.BookingStatusCheckedOut: {},
		entity.BookingStatusCancelled:  {},
	}
}

// Allowed reports whether the from -> to transition is legal.
func (t TransitionTable) Allowed(from, to entity.BookingStatus) bool {
	for _, target := range t[from] {
		if target == to {
			return true
		}
	}
	return false
}

// AddonTransitionTable is the addon status machine. Status only moves
// forward: PENDING -> IN_PROGRESS | DONE, IN_PROGRESS -> DONE.
type AddonTransitionTable map[entity.AddonStatus][]entity.AddonStatus

func DefaultAddonTransitions() AddonTransitionTable {
	return AddonTransitionTable{
		entity.AddonStatusPending:    {entity.AddonStatusInProgress, entity.AddonStatusDone},
		entity.AddonStatusInProgress: {entity.AddonStatusDone},
		entity.AddonStatusDone:       {},
	}
}

func (t AddonTransitionTable) Allowed(from, to entity.AddonStatus) bool {
	for _, target := range t[from] {
		if target == to {
			return true
		}
	}
	return false
}

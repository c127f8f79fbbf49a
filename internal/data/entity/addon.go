package entity

import "github.com/google/uuid"

type AddonType string

const (
	AddonTypeCarWash    AddonType = "CAR_WASH"
	AddonTypeEVCharging AddonType = "EV_CHARGING"
)

// ValidAddonType reports whether t is a known addon type.
func ValidAddonType(t AddonType) bool {
	switch t {
	case AddonTypeCarWash, AddonTypeEVCharging:
		return true
	}
	return false
}

type AddonStatus string

const (
	AddonStatusPending    AddonStatus = "PENDING"
	AddonStatusInProgress AddonStatus = "IN_PROGRESS"
	AddonStatusDone       AddonStatus = "DONE"
)

// ValidAddonStatus reports whether s is a known addon status.
func ValidAddonStatus(s AddonStatus) bool {
	switch s {
	case AddonStatusPending, AddonStatusInProgress, AddonStatusDone:
		return true
	}
	return false
}

// Addon is a service (car wash, EV charging) attached to a booking.
// Addons are owned by the booking and cascade-deleted with it.
type Addon struct {
	Base
	BookingID uuid.UUID   `db:"booking_id"`
	Type      AddonType   `db:"addon_type"`
	Status    AddonStatus `db:"status"`
	Price     float64     `db:"price"`
	Notes     *string     `db:"notes"`
}

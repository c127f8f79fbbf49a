package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "PENDING"
	BookingStatusConfirmed  BookingStatus = "CONFIRMED"
	BookingStatusCheckedIn  BookingStatus = "CHECKED_IN"
	BookingStatusCheckedOut BookingStatus = "CHECKED_OUT"
	BookingStatusCancelled  BookingStatus = "CANCELLED"
)

// ValidBookingStatus reports whether s is a known status value.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCheckedIn,
		BookingStatusCheckedOut, BookingStatusCancelled:
		return true
	}
	return false
}

// ActiveStatuses are the statuses under which a booking occupies its
// spot for [CheckIn, CheckOut).
var ActiveStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCheckedIn,
}

// IsActive reports whether the booking currently occupies its spot.
func (s BookingStatus) IsActive() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCheckedIn:
		return true
	}
	return false
}

type Booking struct {
	Base
	UserID       *uuid.UUID    `db:"user_id"` // nil for guest bookings
	GuestName    string        `db:"guest_name"`
	GuestEmail   string        `db:"guest_email"`
	GuestPhone   string        `db:"guest_phone"`
	LicensePlate string        `db:"license_plate"`
	VehicleMake  string        `db:"vehicle_make"`
	VehicleModel string        `db:"vehicle_model"`
	CheckIn      time.Time     `db:"check_in"`
	CheckOut     time.Time     `db:"check_out"`
	SpotID       *int          `db:"spot_id"`
	Status       BookingStatus `db:"status"`
	TotalPrice   float64       `db:"total_price"`
	PaymentRef   *string       `db:"payment_ref"`
}

// Overlaps applies the half-open interval test: [CheckIn, CheckOut)
// conflicts with [from, to) iff CheckIn < to && CheckOut > from.
// Touching boundaries do not conflict.
func (b *Booking) Overlaps(from, to time.Time) bool {
	return b.CheckIn.Before(to) && b.CheckOut.After(from)
}

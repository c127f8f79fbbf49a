package repository

import (
	"errors"

	"garage-booking/pkg/database"

	"go.uber.org/zap"
)

// Sentinel errors shared by all repositories so callers can match
// with errors.Is instead of parsing messages.
var (
	// ErrNotFound means the requested row does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrSpotConflict means an active booking already holds the spot
	// for an overlapping window. Raised at insert time, inside the
	// transaction that is the authoritative conflict check.
	ErrSpotConflict = errors.New("spot already booked for an overlapping window")

	// ErrDuplicate means a uniqueness constraint was violated.
	ErrDuplicate = errors.New("record already exists")
)

type Repository struct {
	User    UserRepository
	Session SessionRepository
	Spot    SpotRepository
	Booking BookingRepository
	Addon   AddonRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Session: NewSessionRepository(db, log),
		Spot:    NewSpotRepository(db, log),
		Booking: NewBookingRepository(db, log),
		Addon:   NewAddonRepository(db, log),
	}
}

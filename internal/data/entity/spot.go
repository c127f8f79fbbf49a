package entity

import "time"

type SpotType string

const (
	SpotTypeStandard SpotType = "STANDARD"
	SpotTypeEV       SpotType = "EV"
)

// ValidSpotType reports whether s is one of the known spot types.
func ValidSpotType(s SpotType) bool {
	switch s {
	case SpotTypeStandard, SpotTypeEV:
		return true
	}
	return false
}

// ParkingSpot is a physical spot in the garage. IsAvailable is the
// manual in-service flag set by staff; whether a spot is free for a
// given window is always derived from booking status, never stored
// here.
type ParkingSpot struct {
	ID          int       `db:"id"`
	Label       string    `db:"label"` // P-01, P-02, etc.
	Type        SpotType  `db:"spot_type"`
	IsAvailable bool      `db:"is_available"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

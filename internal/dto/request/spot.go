package request

type CreateSpotRequest struct {
	Label       string `json:"label" validate:"required,min=1,max=20"`
	Type        string `json:"type" validate:"required,oneof=STANDARD EV"`
	IsAvailable *bool  `json:"is_available"`
}

type UpdateSpotAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" validate:"required"`
}

// SpotAvailabilityRequest is the query for GET /api/spots/available.
type SpotAvailabilityRequest struct {
	CheckIn  string `json:"check_in" validate:"required"`
	CheckOut string `json:"check_out" validate:"required"`
	Type     string `json:"type" validate:"omitempty,oneof=STANDARD EV"`
}

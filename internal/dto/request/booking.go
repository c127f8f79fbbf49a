package request

type CreateBookingRequest struct {
	GuestName    string `json:"guest_name" validate:"required,min=2,max=100"`
	GuestEmail   string `json:"guest_email" validate:"required,email"`
	GuestPhone   string `json:"guest_phone" validate:"required,min=5,max=30"`
	LicensePlate string `json:"license_plate" validate:"required,min=2,max=20"`
	VehicleMake  string `json:"vehicle_make" validate:"required,max=50"`
	VehicleModel string `json:"vehicle_model" validate:"required,max=50"`
	CheckIn      string `json:"check_in" validate:"required"`  // ISO-8601
	CheckOut     string `json:"check_out" validate:"required"` // ISO-8601
	SpotType     string `json:"spot_type" validate:"omitempty,oneof=STANDARD EV"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING CONFIRMED CHECKED_IN CHECKED_OUT CANCELLED"`
}

// ListBookingsRequest carries the admin listing filters. From/To
// filter on check-in date.
type ListBookingsRequest struct {
	PaginatedRequest
	Status string `json:"status" validate:"omitempty,oneof=PENDING CONFIRMED CHECKED_IN CHECKED_OUT CANCELLED"`
	From   string `json:"from" validate:"omitempty"`
	To     string `json:"to" validate:"omitempty"`
}

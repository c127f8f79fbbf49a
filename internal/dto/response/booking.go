package response

import (
	"time"

	"garage-booking/internal/data/entity"
)

type BookingResponse struct {
	ID           string               `json:"id"`
	UserID       *string              `json:"user_id,omitempty"`
	GuestName    string               `json:"guest_name"`
	GuestEmail   string               `json:"guest_email"`
	GuestPhone   string               `json:"guest_phone"`
	LicensePlate string               `json:"license_plate"`
	VehicleMake  string               `json:"vehicle_make"`
	VehicleModel string               `json:"vehicle_model"`
	CheckIn      time.Time            `json:"check_in"`
	CheckOut     time.Time            `json:"check_out"`
	SpotID       *int                 `json:"spot_id"`
	SpotLabel    string               `json:"spot_label,omitempty"`
	Status       entity.BookingStatus `json:"status"`
	TotalPrice   float64              `json:"total_price"`
	PaymentRef   *string              `json:"payment_ref,omitempty"`
	Addons       []AddonResponse      `json:"addons"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

// BookingToResponse converts a booking and its addons. spotLabel may
// be empty when the spot was not resolved.
func BookingToResponse(booking *entity.Booking, addons []*entity.Addon, spotLabel string) BookingResponse {
	var userID *string
	if booking.UserID != nil {
		id := booking.UserID.String()
		userID = &id
	}

	addonResponses := make([]AddonResponse, len(addons))
	for i, addon := range addons {
		addonResponses[i] = AddonToResponse(addon)
	}

	return BookingResponse{
		ID:           booking.ID.String(),
		UserID:       userID,
		GuestName:    booking.GuestName,
		GuestEmail:   booking.GuestEmail,
		GuestPhone:   booking.GuestPhone,
		LicensePlate: booking.LicensePlate,
		VehicleMake:  booking.VehicleMake,
		VehicleModel: booking.VehicleModel,
		CheckIn:      booking.CheckIn,
		CheckOut:     booking.CheckOut,
		SpotID:       booking.SpotID,
		SpotLabel:    spotLabel,
		Status:       booking.Status,
		TotalPrice:   booking.TotalPrice,
		PaymentRef:   booking.PaymentRef,
		Addons:       addonResponses,
		CreatedAt:    booking.CreatedAt,
		UpdatedAt:    booking.UpdatedAt,
	}
}

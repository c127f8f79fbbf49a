package response

import (
	"time"

	"garage-booking/internal/data/entity"
)

type AddonResponse struct {
	ID        string             `json:"id"`
	BookingID string             `json:"booking_id"`
	Type      entity.AddonType   `json:"type"`
	Status    entity.AddonStatus `json:"status"`
	Price     float64            `json:"price"`
	Notes     *string            `json:"notes,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}

func AddonToResponse(addon *entity.Addon) AddonResponse {
	return AddonResponse{
		ID:        addon.ID.String(),
		BookingID: addon.BookingID.String(),
		Type:      addon.Type,
		Status:    addon.Status,
		Price:     addon.Price,
		Notes:     addon.Notes,
		CreatedAt: addon.CreatedAt,
	}
}

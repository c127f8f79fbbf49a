package response

import (
	"garage-booking/internal/data/entity"
)

type SpotResponse struct {
	ID          int             `json:"id"`
	Label       string          `json:"label"`
	Type        entity.SpotType `json:"type"`
	IsAvailable bool            `json:"is_available"`
}

func SpotToResponse(spot *entity.ParkingSpot) SpotResponse {
	return SpotResponse{
		ID:          spot.ID,
		Label:       spot.Label,
		Type:        spot.Type,
		IsAvailable: spot.IsAvailable,
	}
}

func SpotsToResponse(spots []*entity.ParkingSpot) []SpotResponse {
	responses := make([]SpotResponse, len(spots))
	for i, spot := range spots {
		responses[i] = SpotToResponse(spot)
	}
	return responses
}

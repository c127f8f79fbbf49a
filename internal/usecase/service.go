package usecase

import (
	"garage-booking/internal/data/repository"
	"garage-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Spot    SpotService
	Booking BookingService
	Addon   AddonService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	spot := NewSpotService(repo, log)

	return &Service{
		Auth:    NewAuthService(repo, config, log),
		Spot:    spot,
		Booking: NewBookingService(repo, spot, NewRateTable(config.Garage), log),
		Addon:   NewAddonService(repo, NewAddonPriceTable(config.Garage), log),
	}
}

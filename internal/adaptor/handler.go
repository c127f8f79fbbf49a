package adaptor

import (
	"errors"
	"net/http"

	"garage-booking/internal/data/repository"
	"garage-booking/internal/usecase"
	"garage-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Spot    *SpotHandler
	Booking *BookingHandler
	Addon   *AddonHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Spot:    NewSpotHandler(service.Spot, log),
		Booking: NewBookingHandler(service.Booking, log),
		Addon:   NewAddonHandler(service.Addon, log),
	}
}

// writeServiceError maps typed domain errors onto HTTP statuses.
// Unknown errors (including store transport failures) become 500.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var validationErr *usecase.ValidationError
	var transitionErr *usecase.InvalidTransitionError
	var addonTransitionErr *usecase.InvalidAddonTransitionError

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseUnprocessable(w, "Validation failed", validationErr.Fields)

	case errors.As(err, &transitionErr), errors.As(err, &addonTransitionErr):
		log.Warn(operation+" failed - illegal transition", zap.Error(err))
		utils.ResponseUnprocessable(w, err.Error(), nil)

	case errors.Is(err, repository.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrNoAvailability),
		errors.Is(err, repository.ErrSpotConflict),
		errors.Is(err, repository.ErrDuplicate):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

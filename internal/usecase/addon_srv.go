package usecase

import (
	"context"
	"time"

	"garage-booking/internal/data/entity"
	"garage-booking/internal/data/repository"
	"garage-booking/internal/dto/request"
	"garage-booking/internal/dto/response"
	"garage-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AddonService interface {
	// CreateAddon attaches a service to an existing booking. Price
	// comes from the configured addon price table.
	CreateAddon(ctx context.Context, bookingID string, req *request.CreateAddonRequest) (*response.AddonResponse, error)
	GetAddonsByBooking(ctx context.Context, bookingID string) ([]response.AddonResponse, error)
	UpdateStatus(ctx context.Context, addonID string, newStatus string) (*response.AddonResponse, error)
}

type addonService struct {
	repo        *repository.Repository
	prices      AddonPriceTable
	transitions AddonTransitionTable
	log         *zap.Logger
}

func NewAddonService(repo *repository.Repository, prices AddonPriceTable, log *zap.Logger) AddonService {
	return &addonService{
		repo:        repo,
		prices:      prices,
		transitions: DefaultAddonTransitions(),
		log:         log.With(zap.String("service", "addon")),
	}
}

func (s *addonService) CreateAddon(ctx context.Context, bookingID string, req *request.CreateAddonRequest) (*response.AddonResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create addon validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, NewValidationError("booking_id", "must be a valid UUID")
	}

	// The booking must exist; addons never outlive their booking.
	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	addonType := entity.AddonType(req.Type)
	if !entity.ValidAddonType(addonType) {
		return nil, NewValidationError("type", "unknown addon type "+req.Type)
	}
	price := s.prices[addonType]

	now := time.Now()
	addon := &entity.Addon{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingID: booking.ID,
		Type:      addonType,
		Status:    entity.AddonStatusPending,
		Price:     price,
		Notes:     req.Notes,
	}

	if err := s.repo.Addon.Create(ctx, addon); err != nil {
		s.log.Error("Failed to create addon",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, err
	}

	s.log.Info("Addon created",
		zap.String("addon_id", addon.ID.String()),
		zap.String("booking_id", bookingID),
		zap.String("type", string(addonType)),
		zap.Float64("price", price),
	)

	resp := response.AddonToResponse(addon)
	return &resp, nil
}

func (s *addonService) GetAddonsByBooking(ctx context.Context, bookingID string) ([]response.AddonResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, NewValidationError("booking_id", "must be a valid UUID")
	}

	if _, err := s.repo.Booking.FindByID(ctx, id); err != nil {
		return nil, err
	}

	addons, err := s.repo.Addon.FindByBookingID(ctx, id)
	if err != nil {
		s.log.Error("Failed to list addons",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, err
	}

	responses := make([]response.AddonResponse, len(addons))
	for i, addon := range addons {
		responses[i] = response.AddonToResponse(addon)
	}

	return responses, nil
}

func (s *addonService) UpdateStatus(ctx context.Context, addonID string, newStatus string) (*response.AddonResponse, error) {
	id, err := uuid.Parse(addonID)
	if err != nil {
		return nil, NewValidationError("id", "must be a valid UUID")
	}

	status := entity.AddonStatus(newStatus)
	if !entity.ValidAddonStatus(status) {
		return nil, NewValidationError("status", "unknown status "+newStatus)
	}

	addon, err := s.repo.Addon.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !s.transitions.Allowed(addon.Status, status) {
		return nil, &InvalidAddonTransitionError{Current: addon.Status, Requested: status}
	}

	if err := s.repo.Addon.UpdateStatus(ctx, id, status); err != nil {
		s.log.Error("Failed to update addon status",
			zap.Error(err),
			zap.String("addon_id", addonID),
		)
		return nil, err
	}

	s.log.Info("Addon status updated",
		zap.String("addon_id", addonID),
		zap.String("from", string(addon.Status)),
		zap.String("to", string(status)),
	)

	addon.Status = status
	addon.UpdatedAt = time.Now()

	resp := response.AddonToResponse(addon)
	return &resp, nil
}

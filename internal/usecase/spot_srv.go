package usecase

import (
	"context"
	"time"

	"garage-booking/internal/data/entity"
	"garage-booking/internal/data/repository"
	"garage-booking/internal/dto/request"
	"garage-booking/internal/dto/response"
	"garage-booking/pkg/utils"

	"go.uber.org/zap"
)

type SpotService interface {
	ListSpots(ctx context.Context) ([]response.SpotResponse, error)

	// FindAvailableSpots returns in-service spots of the requested
	// type with no active booking overlapping [checkIn, checkOut),
	// ordered by spot id ascending. Read-only; the result is advisory
	// until the booking insert re-checks under lock.
	FindAvailableSpots(ctx context.Context, checkIn, checkOut time.Time, spotType *entity.SpotType) ([]*entity.ParkingSpot, error)

	// AssignSpot picks the lowest-id available spot, or
	// ErrNoAvailability. Lowest-id is a deterministic tie-break, not a
	// load-balancing policy.
	AssignSpot(ctx context.Context, checkIn, checkOut time.Time, spotType entity.SpotType) (int, error)

	// Admin operations
	CreateSpot(ctx context.Context, req *request.CreateSpotRequest) (*response.SpotResponse, error)
	SetAvailability(ctx context.Context, spotID int, isAvailable bool) error
}

type spotService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSpotService(repo *repository.Repository, log *zap.Logger) SpotService {
	return &spotService{
		repo: repo,
		log:  log.With(zap.String("service", "spot")),
	}
}

func (s *spotService) ListSpots(ctx context.Context) ([]response.SpotResponse, error) {
	spots, err := s.repo.Spot.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list spots", zap.Error(err))
		return nil, err
	}

	return response.SpotsToResponse(spots), nil
}

func (s *spotService) FindAvailableSpots(ctx context.Context, checkIn, checkOut time.Time, spotType *entity.SpotType) ([]*entity.ParkingSpot, error) {
	if !checkOut.After(checkIn) {
		return nil, NewValidationError("check_out", "must be after check_in")
	}

	spots, err := s.repo.Spot.FindInService(ctx, spotType)
	if err != nil {
		s.log.Error("Failed to load in-service spots", zap.Error(err))
		return nil, err
	}

	active, err := s.repo.Booking.FindActiveOverlapping(ctx, checkIn, checkOut)
	if err != nil {
		s.log.Error("Failed to load overlapping bookings", zap.Error(err))
		return nil, err
	}

	// Index spots taken for the window. Bookings fetched are already
	// limited to active statuses and overlapping intervals; the
	// in-process re-test keeps the boundary semantics explicit.
	taken := make(map[int]bool, len(active))
	for _, booking := range active {
		if booking.SpotID != nil && booking.Overlaps(checkIn, checkOut) {
			taken[*booking.SpotID] = true
		}
	}

	var available []*entity.ParkingSpot
	for _, spot := range spots {
		if !taken[spot.ID] {
			available = append(available, spot)
		}
	}

	return available, nil
}

func (s *spotService) AssignSpot(ctx context.Context, checkIn, checkOut time.Time, spotType entity.SpotType) (int, error) {
	available, err := s.FindAvailableSpots(ctx, checkIn, checkOut, &spotType)
	if err != nil {
		return 0, err
	}

	if len(available) == 0 {
		s.log.Info("No availability",
			zap.String("spot_type", string(spotType)),
			zap.Time("check_in", checkIn),
			zap.Time("check_out", checkOut),
		)
		return 0, ErrNoAvailability
	}

	return available[0].ID, nil
}

func (s *spotService) CreateSpot(ctx context.Context, req *request.CreateSpotRequest) (*response.SpotResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create spot validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	now := time.Now()
	spot := &entity.ParkingSpot{
		Label:       req.Label,
		Type:        entity.SpotType(req.Type),
		IsAvailable: isAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Spot.Create(ctx, spot); err != nil {
		s.log.Error("Failed to create spot", zap.Error(err), zap.String("label", req.Label))
		return nil, err
	}

	s.log.Info("Spot created",
		zap.Int("spot_id", spot.ID),
		zap.String("label", spot.Label),
		zap.String("type", string(spot.Type)),
	)

	resp := response.SpotToResponse(spot)
	return &resp, nil
}

func (s *spotService) SetAvailability(ctx context.Context, spotID int, isAvailable bool) error {
	if err := s.repo.Spot.UpdateAvailability(ctx, spotID, isAvailable); err != nil {
		s.log.Error("Failed to set spot availability",
			zap.Error(err),
			zap.Int("spot_id", spotID),
		)
		return err
	}

	s.log.Info("Spot availability updated",
		zap.Int("spot_id", spotID),
		zap.Bool("is_available", isAvailable),
	)

	return nil
}

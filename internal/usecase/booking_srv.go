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

type BookingService interface {
	// CreateBooking assigns a spot, prices the stay and persists the
	// booking in PENDING. ownerID is nil for guest bookings.
	CreateBooking(ctx context.Context, ownerID *uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)

	// GetBookingByID returns the booking with its addons. Public by
	// design: knowing the UUID grants read access.
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)

	GetBookings(ctx context.Context, req *request.ListBookingsRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetUserBookings(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)

	// UpdateStatus enforces the booking state machine.
	UpdateStatus(ctx context.Context, bookingID string, newStatus string) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID string) error
}

type bookingService struct {
	repo        *repository.Repository
	spots       SpotService
	rates       RateTable
	transitions TransitionTable
	log         *zap.Logger
}

func NewBookingService(repo *repository.Repository, spots SpotService, rates RateTable, log *zap.Logger) BookingService {
	return &bookingService{
		repo:        repo,
		spots:       spots,
		rates:       rates,
		transitions: DefaultTransitions(),
		log:         log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, ownerID *uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	checkIn, err := utils.ParseTimestamp(req.CheckIn)
	if err != nil {
		return nil, NewValidationError("check_in", "must be an ISO-8601 timestamp")
	}
	checkOut, err := utils.ParseTimestamp(req.CheckOut)
	if err != nil {
		return nil, NewValidationError("check_out", "must be an ISO-8601 timestamp")
	}
	if !checkOut.After(checkIn) {
		return nil, NewValidationError("check_out", "must be after check_in")
	}

	spotType := entity.SpotTypeStandard
	if req.SpotType != "" {
		spotType = entity.SpotType(req.SpotType)
		if !entity.ValidSpotType(spotType) {
			return nil, NewValidationError("spot_type", "unknown spot type "+req.SpotType)
		}
	}

	spotID, err := s.spots.AssignSpot(ctx, checkIn, checkOut, spotType)
	if err != nil {
		return nil, err
	}

	totalPrice, err := s.rates.Price(spotType, checkIn, checkOut)
	if err != nil {
		s.log.Error("Failed to price booking", zap.Error(err))
		return nil, err
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:       ownerID,
		GuestName:    req.GuestName,
		GuestEmail:   req.GuestEmail,
		GuestPhone:   req.GuestPhone,
		LicensePlate: req.LicensePlate,
		VehicleMake:  req.VehicleMake,
		VehicleModel: req.VehicleModel,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		SpotID:       &spotID,
		Status:       entity.BookingStatusPending,
		TotalPrice:   totalPrice,
	}

	// The repository re-checks the spot under lock; a concurrent
	// winner surfaces here as ErrSpotConflict.
	if err := s.repo.Booking.CreateIfSpotFree(ctx, booking); err != nil {
		s.log.Warn("Failed to create booking",
			zap.Error(err),
			zap.Int("spot_id", spotID),
			zap.Time("check_in", checkIn),
			zap.Time("check_out", checkOut),
		)
		return nil, err
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.Int("spot_id", spotID),
		zap.String("spot_type", string(spotType)),
		zap.Float64("total_price", totalPrice),
	)

	return s.buildBookingResponse(ctx, booking, nil), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, NewValidationError("id", "must be a valid UUID")
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	addons, err := s.repo.Addon.FindByBookingID(ctx, booking.ID)
	if err != nil {
		s.log.Error("Failed to load addons",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, err
	}

	return s.buildBookingResponse(ctx, booking, addons), nil
}

func (s *bookingService) GetBookings(ctx context.Context, req *request.ListBookingsRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("List bookings validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	filter := repository.BookingFilter{
		Limit:  req.Limit(),
		Offset: req.Offset(),
	}

	if req.Status != "" {
		status := entity.BookingStatus(req.Status)
		filter.Status = &status
	}
	if req.From != "" {
		from, err := utils.ParseTimestamp(req.From)
		if err != nil {
			return nil, NewValidationError("from", "must be an ISO-8601 timestamp")
		}
		filter.From = &from
	}
	if req.To != "" {
		to, err := utils.ParseTimestamp(req.To)
		if err != nil {
			return nil, NewValidationError("to", "must be an ISO-8601 timestamp")
		}
		filter.To = &to
	}

	bookings, err := s.repo.Booking.FindAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, err
	}

	total, err := s.repo.Booking.Count(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err))
		return nil, err
	}

	return s.buildPage(ctx, bookings, req.Page, req.Limit(), total), nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	bookings, err := s.repo.Booking.FindByUserID(ctx, userID, limit, offset)
	if err != nil {
		s.log.Error("Failed to get user bookings",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, err
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to count user bookings", zap.Error(err))
		return nil, err
	}

	return s.buildPage(ctx, bookings, req.Page, limit, total), nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, bookingID string, newStatus string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, NewValidationError("id", "must be a valid UUID")
	}

	status := entity.BookingStatus(newStatus)
	if !entity.ValidBookingStatus(status) {
		return nil, NewValidationError("status", "unknown status "+newStatus)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !s.transitions.Allowed(booking.Status, status) {
		s.log.Warn("Illegal booking transition",
			zap.String("booking_id", bookingID),
			zap.String("current", string(booking.Status)),
			zap.String("requested", string(status)),
		)
		return nil, &InvalidTransitionError{Current: booking.Status, Requested: status}
	}

	if err := s.repo.Booking.UpdateStatus(ctx, id, status); err != nil {
		s.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, err
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("from", string(booking.Status)),
		zap.String("to", string(status)),
	)

	booking.Status = status
	booking.UpdatedAt = time.Now()

	addons, err := s.repo.Addon.FindByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, err
	}

	return s.buildBookingResponse(ctx, booking, addons), nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID string) error {
	_, err := s.UpdateStatus(ctx, bookingID, string(entity.BookingStatusCancelled))
	return err
}

// ==================== HELPER METHODS ====================

func (s *bookingService) buildBookingResponse(ctx context.Context, booking *entity.Booking, addons []*entity.Addon) *response.BookingResponse {
	var spotLabel string
	if booking.SpotID != nil {
		spot, err := s.repo.Spot.FindByID(ctx, *booking.SpotID)
		if err == nil && spot != nil {
			spotLabel = spot.Label
		}
	}

	resp := response.BookingToResponse(booking, addons, spotLabel)
	return &resp
}

func (s *bookingService) buildPage(ctx context.Context, bookings []*entity.Booking, page, perPage int, total int64) *response.PaginatedResponse[response.BookingResponse] {
	items := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		addons, err := s.repo.Addon.FindByBookingID(ctx, booking.ID)
		if err != nil {
			s.log.Warn("Failed to load addons for listing",
				zap.Error(err),
				zap.String("booking_id", booking.ID.String()),
			)
		}
		items[i] = *s.buildBookingResponse(ctx, booking, addons)
	}

	if page < 1 {
		page = 1
	}

	return response.NewPaginatedResponse(items, page, perPage, total)
}

package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"garage-booking/internal/data/entity"
	"garage-booking/internal/data/repository"
	"garage-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingRequest(checkIn, checkOut time.Time) *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		GuestName:    "Bimo Saputra",
		GuestEmail:   "bimo@example.com",
		GuestPhone:   "081234567890",
		LicensePlate: "B-1234-XYZ",
		VehicleMake:  "Toyota",
		VehicleModel: "Avanza",
		CheckIn:      checkIn.Format(time.RFC3339),
		CheckOut:     checkOut.Format(time.RFC3339),
	}
}

func TestCreateBookingSingleSpotScenario(t *testing.T) {
	env := newTestEnv(t, standardSpot("P-01"))
	ctx := context.Background()
	day1 := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	day3 := day1.Add(48 * time.Hour)
	day4 := day1.Add(72 * time.Hour)

	first, err := env.bookings.CreateBooking(ctx, nil, bookingRequest(day1, day3))
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusPending, first.Status)
	require.NotNil(t, first.SpotID)
	assert.Equal(t, 1, *first.SpotID)
	assert.Equal(t, "P-01", first.SpotLabel)
	assert.Equal(t, 30.0, first.TotalPrice)

	// Overlapping window on the only spot.
	_, err = env.bookings.CreateBooking(ctx, nil, bookingRequest(day1.Add(24*time.Hour), day4))
	assert.ErrorIs(t, err, ErrNoAvailability)

	// Touching the first booking's check-out is not a conflict.
	second, err := env.bookings.CreateBooking(ctx, nil, bookingRequest(day3, day4))
	require.NoError(t, err)
	require.NotNil(t, second.SpotID)
	assert.Equal(t, 1, *second.SpotID)
	assert.Equal(t, 15.0, second.TotalPrice)
}

func TestCreateBookingDefaultsToStandard(t *testing.T) {
	env := newTestEnv(t, evSpot("EV-01"), standardSpot("P-01"))
	ctx := context.Background()
	day1 := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

	created, err := env.bookings.CreateBooking(ctx, nil, bookingRequest(day1, day1.Add(24*time.Hour)))
	require.NoError(t, err)
	assert.Equal(t, "P-01", created.SpotLabel)
}

func TestCreateBookingEVRate(t *testing.T) {
	env := newTestEnv(t, evSpot("EV-01"))
	ctx := context.Background()
	day1 := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

	req := bookingRequest(day1, day1.Add(36*time.Hour))
	req.SpotType = string(entity.SpotTypeEV)

	created, err := env.bookings.CreateBooking(ctx, nil, req)
	require.NoError(t, err)
	assert.Equal(t, 50.0, created.TotalPrice)
}

func TestCreateBookingKeepsOwner(t *testing.T) {
	env := newTestEnv(t, standardSpot("P-01"))
	ctx := context.Background()
	day1 := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	ownerID := uuid.New()

	created, err := env.bookings.CreateBooking(ctx, &ownerID, bookingRequest(day1, day1.Add(24*time.Hour)))
	require.NoError(t, err)
	require.NotNil(t, created.UserID)
	assert.Equal(t, ownerID.String(), *created.UserID)
}

func TestCreateBookingRejectsBadWindow(t *testing.T) {
	env := newTestEnv(t, standardSpot("P-01"))
	ctx := context.Background()
	day1 := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

	var validationErr *ValidationError

	_, err := env.bookings.CreateBooking(ctx, nil, bookingRequest(day1, day1))
	require.ErrorAs(t, err, &validationErr)

	_, err = env.bookings.CreateBooking(ctx, nil, bookingRequest(day1, day1.Add(-time.Hour)))
	require.ErrorAs(t, err, &validationErr)

	req := bookingRequest(day1, day1.Add(24*time.Hour))
	req.CheckIn = "yesterday"
	_, err = env.bookings.CreateBooking(ctx, nil, req)
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "check_in")
}

func TestCreateBookingRejectsMissingFields(t *testing.T) {
	env := newTestEnv(t, standardSpot("P-01"))
	day1 := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

	req := bookingRequest(day1, day1.Add(24*time.Hour))
	req.GuestEmail = "not-an-email"
	req.LicensePlate = ""

	_, err := env.bookings.CreateBooking(context.Background(), nil, req)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "GuestEmail")
	assert.Contains(t, validationErr.Fields, "LicensePlate")
}

func TestBookingLifecycle(t *testing.T) {
	env := newTestEnv(t, standardSpot("P-01"))
	ctx := context.Background()
	day1 := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

	created, err := env.bookings.CreateBooking(ctx, nil, bookingRequest(day1, day1.Add(24*time.Hour)))
	require.NoError(t, err)

	for _, status := range []entity.BookingStatus{
		entity.BookingStatusConfirmed,
		entity.BookingStatusCheckedIn,
		entity.BookingStatusCheckedOut,
	} {
		updated, err := env.bookings.UpdateStatus(ctx, created.ID, string(status))
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}
}

func TestBookingSkipTransitionRejected(t *testing.T) {
	env := newTestEnv(t, standardSpot("P-01"))
	ctx := context.Background()
	day1 := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

	created, err := env.bookings.CreateBooking(ctx, nil, bookingRequest(day1, day1.Add(24*time.Hour)))
	require.NoError(t, err)

	_, err = env.bookings.UpdateStatus(ctx, created.ID, string(entity.BookingStatusCheckedIn))

	var transitionErr *InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, entity.BookingStatusPending, transitionErr.Current)
	assert.Equal(t, entity.BookingStatusCheckedIn, transitionErr.Requested)
}

func TestCancelAfterCheckoutRejected(t *testing.T) {
	env := newTestEnv(t, standardSpot("P-01"))
	ctx := context.Background()
	day1 := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

	created, err := env.bookings.CreateBooking(ctx, nil, bookingRequest(day1, day1.Add(24*time.Hour)))
	require.NoError(t, err)

	for _, status := range []entity.BookingStatus{
		entity.BookingStatusConfirmed,
		entity.BookingStatusCheckedIn,
		entity.BookingStatusCheckedOut,
	} {
		_, err = env.bookings.UpdateStatus(ctx, created.ID, string(status))
		require.NoError(t, err)
	}

	err = env.bookings.CancelBooking(ctx, created.ID)

	var transitionErr *InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, entity.BookingStatusCheckedOut, transitionErr.Current)
	assert.Equal(t, entity.BookingStatusCancelled, transitionErr.Requested)
}

func TestCancelFreesTheSpot(t *testing.T) {
	env := newTestEnv(t, standardSpot("P-01"))
	ctx := context.Background()
	day1 := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	day2 := day1.Add(24 * time.Hour)

	created, err := env.bookings.CreateBooking(ctx, nil, bookingRequest(day1, day2))
	require.NoError(t, err)
	require.NoError(t, env.bookings.CancelBooking(ctx, created.ID))

	// Cancelled bookings no longer block the window.
	again, err := env.bookings.CreateBooking(ctx, nil, bookingRequest(day1, day2))
	require.NoError(t, err)
	require.NotNil(t, again.SpotID)
	assert.Equal(t, 1, *again.SpotID)
}

func TestUpdateStatusUnknownStatus(t *testing.T) {
	env := newTestEnv(t, standardSpot("P-01"))

	_, err := env.bookings.UpdateStatus(context.Background(), uuid.NewString(), "PARKED")

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestGetBookingByIDNotFound(t *testing.T) {
	env := newTestEnv(t, standardSpot("P-01"))

	_, err := env.bookings.GetBookingByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestConcurrentBookingsOneWinner(t *testing.T) {
	env := newTestEnv(t, standardSpot("P-01"))
	day1 := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	day2 := day1.Add(24 * time.Hour)

	const attempts = 8
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = env.bookings.CreateBooking(context.Background(), nil, bookingRequest(day1, day2))
		}(i)
	}
	wg.Wait()

	var wins int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		default:
			// Losers see either no availability from the advisory read
			// or the conflict raised at insert time.
			isConflict := errors.Is(err, ErrNoAvailability) ||
				errors.Is(err, repository.ErrSpotConflict)
			assert.True(t, isConflict, "unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, wins)
}

func TestGetUserBookingsOnlyReturnsOwn(t *testing.T) {
	env := newTestEnv(t, standardSpot("P-01"), standardSpot("P-02"))
	ctx := context.Background()
	day1 := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	day2 := day1.Add(24 * time.Hour)

	alice := uuid.New()
	bob := uuid.New()

	_, err := env.bookings.CreateBooking(ctx, &alice, bookingRequest(day1, day2))
	require.NoError(t, err)
	_, err = env.bookings.CreateBooking(ctx, &bob, bookingRequest(day1, day2))
	require.NoError(t, err)

	page, err := env.bookings.GetUserBookings(ctx, alice, &request.PaginatedRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, int64(1), page.Pagination.Total)
	require.NotNil(t, page.Data[0].UserID)
	assert.Equal(t, alice.String(), *page.Data[0].UserID)
}

func TestGetBookingsFiltersByStatus(t *testing.T) {
	env := newTestEnv(t, standardSpot("P-01"), standardSpot("P-02"))
	ctx := context.Background()
	day1 := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	day2 := day1.Add(24 * time.Hour)

	first, err := env.bookings.CreateBooking(ctx, nil, bookingRequest(day1, day2))
	require.NoError(t, err)
	_, err = env.bookings.CreateBooking(ctx, nil, bookingRequest(day1, day2))
	require.NoError(t, err)

	_, err = env.bookings.UpdateStatus(ctx, first.ID, string(entity.BookingStatusConfirmed))
	require.NoError(t, err)

	page, err := env.bookings.GetBookings(ctx, &request.ListBookingsRequest{
		PaginatedRequest: request.PaginatedRequest{Page: 1, PerPage: 10},
		Status:           string(entity.BookingStatusConfirmed),
	})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, first.ID, page.Data[0].ID)
}

package usecase

import (
	"context"
	"testing"
	"time"

	"garage-booking/internal/data/entity"
	"garage-booking/internal/data/repository"
	"garage-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testEnv struct {
	repo     *repository.Repository
	spots    SpotService
	bookings BookingService
	addons   AddonService
}

// newTestEnv wires the services over in-memory repositories and
// provisions the given spots.
func newTestEnv(t *testing.T, spots ...*entity.ParkingSpot) *testEnv {
	t.Helper()

	repo := &repository.Repository{
		Spot:    newFakeSpotRepo(),
		Booking: newFakeBookingRepo(),
		Addon:   newFakeAddonRepo(),
	}

	for _, spot := range spots {
		require.NoError(t, repo.Spot.Create(context.Background(), spot))
	}

	log := zap.NewNop()
	spotSrv := NewSpotService(repo, log)
	garage := utils.GarageConfig{RateStandard: 15, RateEV: 25, PriceCarWash: 12, PriceEVCharging: 8}

	return &testEnv{
		repo:     repo,
		spots:    spotSrv,
		bookings: NewBookingService(repo, spotSrv, NewRateTable(garage), log),
		addons:   NewAddonService(repo, NewAddonPriceTable(garage), log),
	}
}

func standardSpot(label string) *entity.ParkingSpot {
	now := time.Now()
	return &entity.ParkingSpot{
		Label: label, Type: entity.SpotTypeStandard, IsAvailable: true,
		CreatedAt: now, UpdatedAt: now,
	}
}

func evSpot(label string) *entity.ParkingSpot {
	spot := standardSpot(label)
	spot.Type = entity.SpotTypeEV
	return spot
}

// insertBooking puts an active booking directly into the store.
func insertBooking(t *testing.T, env *testEnv, spotID int, status entity.BookingStatus, checkIn, checkOut time.Time) *entity.Booking {
	t.Helper()

	now := time.Now()
	booking := &entity.Booking{
		Base:       entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		GuestName:  "Dewi",
		GuestEmail: "dewi@example.com",
		GuestPhone: "0811111111",
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		SpotID:     &spotID,
		Status:     status,
		TotalPrice: 15,
	}
	require.NoError(t, env.repo.Booking.CreateIfSpotFree(context.Background(), booking))
	return booking
}

func TestFindAvailableSpotsExcludesOverlaps(t *testing.T) {
	env := newTestEnv(t, standardSpot("P-01"), standardSpot("P-02"))
	day1 := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	day3 := day1.Add(48 * time.Hour)

	insertBooking(t, env, 1, entity.BookingStatusConfirmed, day1, day3)

	available, err := env.spots.FindAvailableSpots(context.Background(), day1, day3, nil)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, 2, available[0].ID)
}

func TestFindAvailableSpotsExactWindowConflicts(t *testing.T) {
	env := newTestEnv(t, standardSpot("P-01"))
	day1 := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	day2 := day1.Add(24 * time.Hour)

	insertBooking(t, env, 1, entity.BookingStatusPending, day1, day2)

	// A booking over exactly the requested window conflicts.
	available, err := env.spots.FindAvailableSpots(context.Background(), day1, day2, nil)
	require.NoError(t, err)
	assert.Empty(t, available)
}

func TestFindAvailableSpotsTouchingBoundaryDoesNotConflict(t *testing.T) {
	env := newTestEnv(t, standardSpot("P-01"))
	day1 := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	day2 := day1.Add(24 * time.Hour)
	day3 := day1.Add(48 * time.Hour)

	insertBooking(t, env, 1, entity.BookingStatusCheckedIn, day1, day2)

	// Existing booking ends exactly at the requested check-in.
	available, err := env.spots.FindAvailableSpots(context.Background(), day2, day3, nil)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, 1, available[0].ID)
}

func TestFindAvailableSpotsIgnoresInactiveBookings(t *testing.T) {
	env := newTestEnv(t, standardSpot("P-01"))
	day1 := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	day3 := day1.Add(48 * time.Hour)

	booking := insertBooking(t, env, 1, entity.BookingStatusPending, day1, day3)
	require.NoError(t, env.repo.Booking.UpdateStatus(context.Background(), booking.ID, entity.BookingStatusCancelled))

	available, err := env.spots.FindAvailableSpots(context.Background(), day1, day3, nil)
	require.NoError(t, err)
	assert.Len(t, available, 1)
}

func TestFindAvailableSpotsFiltersTypeAndServiceFlag(t *testing.T) {
	env := newTestEnv(t, standardSpot("P-01"), evSpot("EV-01"), evSpot("EV-02"))
	day1 := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	day2 := day1.Add(24 * time.Hour)

	// Take EV-02 out of service manually.
	require.NoError(t, env.spots.SetAvailability(context.Background(), 3, false))

	evType := entity.SpotTypeEV
	available, err := env.spots.FindAvailableSpots(context.Background(), day1, day2, &evType)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, "EV-01", available[0].Label)
}

func TestFindAvailableSpotsIsIdempotent(t *testing.T) {
	env := newTestEnv(t, standardSpot("P-01"), standardSpot("P-02"), evSpot("EV-01"))
	day1 := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	day2 := day1.Add(24 * time.Hour)

	insertBooking(t, env, 2, entity.BookingStatusConfirmed, day1, day2)

	first, err := env.spots.FindAvailableSpots(context.Background(), day1, day2, nil)
	require.NoError(t, err)
	second, err := env.spots.FindAvailableSpots(context.Background(), day1, day2, nil)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
}

func TestFindAvailableSpotsRejectsInvalidWindow(t *testing.T) {
	env := newTestEnv(t, standardSpot("P-01"))
	day1 := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

	_, err := env.spots.FindAvailableSpots(context.Background(), day1, day1, nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestAssignSpotPicksLowestID(t *testing.T) {
	env := newTestEnv(t, standardSpot("P-01"), standardSpot("P-02"), standardSpot("P-03"))
	day1 := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	day2 := day1.Add(24 * time.Hour)

	insertBooking(t, env, 1, entity.BookingStatusConfirmed, day1, day2)

	spotID, err := env.spots.AssignSpot(context.Background(), day1, day2, entity.SpotTypeStandard)
	require.NoError(t, err)
	assert.Equal(t, 2, spotID)
}

func TestAssignSpotNoAvailability(t *testing.T) {
	env := newTestEnv(t, standardSpot("P-01"))
	day1 := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	day2 := day1.Add(24 * time.Hour)

	_, err := env.spots.AssignSpot(context.Background(), day1, day2, entity.SpotTypeEV)
	assert.ErrorIs(t, err, ErrNoAvailability)
}

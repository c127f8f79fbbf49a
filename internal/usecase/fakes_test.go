package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"garage-booking/internal/data/entity"
	"garage-booking/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory repositories backing the service tests. The booking fake
// serializes CreateIfSpotFree behind a mutex the same way the real
// implementation serializes on the locked spot row.

type fakeSpotRepo struct {
	mu    sync.Mutex
	seq   int
	spots map[int]*entity.ParkingSpot
}

func newFakeSpotRepo() *fakeSpotRepo {
	return &fakeSpotRepo{spots: make(map[int]*entity.ParkingSpot)}
}

func (r *fakeSpotRepo) Create(ctx context.Context, spot *entity.ParkingSpot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.spots {
		if existing.Label == spot.Label {
			return fmt.Errorf("spot label %s: %w", spot.Label, repository.ErrDuplicate)
		}
	}

	r.seq++
	spot.ID = r.seq
	copied := *spot
	r.spots[spot.ID] = &copied
	return nil
}

func (r *fakeSpotRepo) FindByID(ctx context.Context, id int) (*entity.ParkingSpot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	spot, ok := r.spots[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *spot
	return &copied, nil
}

func (r *fakeSpotRepo) FindAll(ctx context.Context) ([]*entity.ParkingSpot, error) {
	return r.list(func(*entity.ParkingSpot) bool { return true }), nil
}

func (r *fakeSpotRepo) FindInService(ctx context.Context, spotType *entity.SpotType) ([]*entity.ParkingSpot, error) {
	return r.list(func(spot *entity.ParkingSpot) bool {
		if !spot.IsAvailable {
			return false
		}
		return spotType == nil || spot.Type == *spotType
	}), nil
}

func (r *fakeSpotRepo) UpdateAvailability(ctx context.Context, id int, isAvailable bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	spot, ok := r.spots[id]
	if !ok {
		return fmt.Errorf("spot %d: %w", id, repository.ErrNotFound)
	}
	spot.IsAvailable = isAvailable
	spot.UpdatedAt = time.Now()
	return nil
}

func (r *fakeSpotRepo) list(keep func(*entity.ParkingSpot) bool) []*entity.ParkingSpot {
	r.mu.Lock()
	defer r.mu.Unlock()

	var spots []*entity.ParkingSpot
	for _, spot := range r.spots {
		if keep(spot) {
			copied := *spot
			spots = append(spots, &copied)
		}
	}
	sort.Slice(spots, func(i, j int) bool { return spots[i].ID < spots[j].ID })
	return spots
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]*entity.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]*entity.Booking)}
}

func (r *fakeBookingRepo) CreateIfSpotFree(ctx context.Context, booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.bookings {
		if existing.SpotID != nil && booking.SpotID != nil &&
			*existing.SpotID == *booking.SpotID &&
			existing.Status.IsActive() &&
			existing.Overlaps(booking.CheckIn, booking.CheckOut) {
			return repository.ErrSpotConflict
		}
	}

	copied := *booking
	r.bookings[booking.ID] = &copied
	return nil
}

func (r *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *booking
	return &copied, nil
}

func (r *fakeBookingRepo) matchFilter(booking *entity.Booking, filter repository.BookingFilter) bool {
	if filter.Status != nil && booking.Status != *filter.Status {
		return false
	}
	if filter.From != nil && booking.CheckIn.Before(*filter.From) {
		return false
	}
	if filter.To != nil && booking.CheckIn.After(*filter.To) {
		return false
	}
	return true
}

func (r *fakeBookingRepo) FindAll(ctx context.Context, filter repository.BookingFilter) ([]*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var bookings []*entity.Booking
	for _, booking := range r.bookings {
		if r.matchFilter(booking, filter) {
			copied := *booking
			bookings = append(bookings, &copied)
		}
	}
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})

	if filter.Offset >= len(bookings) {
		return nil, nil
	}
	bookings = bookings[filter.Offset:]
	if filter.Limit > 0 && len(bookings) > filter.Limit {
		bookings = bookings[:filter.Limit]
	}
	return bookings, nil
}

func (r *fakeBookingRepo) Count(ctx context.Context, filter repository.BookingFilter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for _, booking := range r.bookings {
		if r.matchFilter(booking, filter) {
			count++
		}
	}
	return count, nil
}

func (r *fakeBookingRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var bookings []*entity.Booking
	for _, booking := range r.bookings {
		if booking.UserID != nil && *booking.UserID == userID {
			copied := *booking
			bookings = append(bookings, &copied)
		}
	}
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})

	if offset >= len(bookings) {
		return nil, nil
	}
	bookings = bookings[offset:]
	if limit > 0 && len(bookings) > limit {
		bookings = bookings[:limit]
	}
	return bookings, nil
}

func (r *fakeBookingRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for _, booking := range r.bookings {
		if booking.UserID != nil && *booking.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (r *fakeBookingRepo) FindActiveOverlapping(ctx context.Context, from, to time.Time) ([]*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var bookings []*entity.Booking
	for _, booking := range r.bookings {
		if booking.Status.IsActive() && booking.Overlaps(from, to) {
			copied := *booking
			bookings = append(bookings, &copied)
		}
	}
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CheckIn.Before(bookings[j].CheckIn)
	})
	return bookings, nil
}

func (r *fakeBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]
	if !ok {
		return fmt.Errorf("booking %s: %w", id.String(), repository.ErrNotFound)
	}
	booking.Status = status
	booking.UpdatedAt = time.Now()
	return nil
}

type fakeAddonRepo struct {
	mu     sync.Mutex
	addons map[uuid.UUID]*entity.Addon
}

func newFakeAddonRepo() *fakeAddonRepo {
	return &fakeAddonRepo{addons: make(map[uuid.UUID]*entity.Addon)}
}

func (r *fakeAddonRepo) Create(ctx context.Context, addon *entity.Addon) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *addon
	r.addons[addon.ID] = &copied
	return nil
}

func (r *fakeAddonRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Addon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	addon, ok := r.addons[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *addon
	return &copied, nil
}

func (r *fakeAddonRepo) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Addon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var addons []*entity.Addon
	for _, addon := range r.addons {
		if addon.BookingID == bookingID {
			copied := *addon
			addons = append(addons, &copied)
		}
	}
	sort.Slice(addons, func(i, j int) bool {
		return addons[i].CreatedAt.Before(addons[j].CreatedAt)
	})
	return addons, nil
}

func (r *fakeAddonRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AddonStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	addon, ok := r.addons[id]
	if !ok {
		return fmt.Errorf("addon %s: %w", id.String(), repository.ErrNotFound)
	}
	addon.Status = status
	addon.UpdatedAt = time.Now()
	return nil
}

package repository

import (
	"context"
	"fmt"
	"time"

	"garage-booking/internal/data/entity"
	"garage-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// BookingFilter narrows admin listings. Zero-value fields are ignored.
type BookingFilter struct {
	Status *entity.BookingStatus
	From   *time.Time // check_in >= From
	To     *time.Time // check_in <= To
	Limit  int
	Offset int
}

type BookingRepository interface {
	// CreateIfSpotFree inserts the booking only if no active booking
	// holds the same spot for an overlapping window. The check and the
	// insert run in one transaction with the spot row locked, which is
	// the serialization point for concurrent creates. Returns
	// ErrSpotConflict when the spot is taken.
	CreateIfSpotFree(ctx context.Context, booking *entity.Booking) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindAll(ctx context.Context, filter BookingFilter) ([]*entity.Booking, error)
	Count(ctx context.Context, filter BookingFilter) (int64, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)

	// FindActiveOverlapping returns bookings in an active status whose
	// [check_in, check_out) interval overlaps [from, to), any spot.
	FindActiveOverlapping(ctx context.Context, from, to time.Time) ([]*entity.Booking, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, user_id, guest_name, guest_email, guest_phone,
		license_plate, vehicle_make, vehicle_model,
		check_in, check_out, spot_id, status, total_price, payment_ref,
		created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.GuestName,
		&booking.GuestEmail,
		&booking.GuestPhone,
		&booking.LicensePlate,
		&booking.VehicleMake,
		&booking.VehicleModel,
		&booking.CheckIn,
		&booking.CheckOut,
		&booking.SpotID,
		&booking.Status,
		&booking.TotalPrice,
		&booking.PaymentRef,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) CreateIfSpotFree(ctx context.Context, booking *entity.Booking) error {
	if booking.SpotID == nil {
		return fmt.Errorf("create booking %s: no spot assigned", booking.ID.String())
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin booking transaction", zap.Error(err))
		return fmt.Errorf("begin booking transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Lock the spot row so concurrent creates for the same spot
	// serialize here, then re-run the overlap check under the lock.
	var spotID int
	err = tx.QueryRow(ctx,
		`SELECT id FROM parking_spots WHERE id = $1 FOR UPDATE`,
		*booking.SpotID,
	).Scan(&spotID)
	if err == pgx.ErrNoRows {
		return fmt.Errorf("spot %d: %w", *booking.SpotID, ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to lock spot row",
			zap.Error(err),
			zap.Int("spot_id", *booking.SpotID),
		)
		return fmt.Errorf("lock spot %d: %w", *booking.SpotID, err)
	}

	var conflicts int64
	err = tx.QueryRow(ctx, `
		SELECT COUNT(*) FROM bookings
		WHERE spot_id = $1
		  AND status = ANY($2)
		  AND check_in < $4 AND check_out > $3
	`, *booking.SpotID, entity.ActiveStatuses, booking.CheckIn, booking.CheckOut).Scan(&conflicts)
	if err != nil {
		r.log.Error("Failed to count conflicting bookings",
			zap.Error(err),
			zap.Int("spot_id", *booking.SpotID),
		)
		return fmt.Errorf("count conflicting bookings: %w", err)
	}

	if conflicts > 0 {
		r.log.Warn("Booking rejected at commit - spot taken",
			zap.Int("spot_id", *booking.SpotID),
			zap.Time("check_in", booking.CheckIn),
			zap.Time("check_out", booking.CheckOut),
		)
		return ErrSpotConflict
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO bookings (`+bookingColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`,
		booking.ID,
		booking.UserID,
		booking.GuestName,
		booking.GuestEmail,
		booking.GuestPhone,
		booking.LicensePlate,
		booking.VehicleMake,
		booking.VehicleModel,
		booking.CheckIn,
		booking.CheckOut,
		booking.SpotID,
		booking.Status,
		booking.TotalPrice,
		booking.PaymentRef,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("insert booking %s: %w", booking.ID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit booking transaction",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("commit booking %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

// filterClause builds the WHERE fragment shared by FindAll and Count.
func filterClause(filter BookingFilter) (string, []any) {
	clause := ""
	args := []any{}

	add := func(cond string, arg any) {
		args = append(args, arg)
		if clause == "" {
			clause = " WHERE "
		} else {
			clause += " AND "
		}
		clause += fmt.Sprintf(cond, len(args))
	}

	if filter.Status != nil {
		add("status = $%d", *filter.Status)
	}
	if filter.From != nil {
		add("check_in >= $%d", *filter.From)
	}
	if filter.To != nil {
		add("check_in <= $%d", *filter.To)
	}

	return clause, args
}

func (r *bookingRepository) FindAll(ctx context.Context, filter BookingFilter) ([]*entity.Booking, error) {
	clause, args := filterClause(filter)

	query := `SELECT ` + bookingColumns + ` FROM bookings` + clause +
		fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find bookings", zap.Error(err))
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *bookingRepository) Count(ctx context.Context, filter BookingFilter) (int64, error) {
	clause, args := filterClause(filter)

	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings`+clause, args...).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *bookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count bookings by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) FindActiveOverlapping(ctx context.Context, from, to time.Time) ([]*entity.Booking, error) {
	// Half-open overlap: existing.check_in < to AND existing.check_out > from.
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE status = ANY($1)
		  AND check_in < $3 AND check_out > $2
		ORDER BY check_in
	`

	rows, err := r.db.Query(ctx, query, entity.ActiveStatuses, from, to)
	if err != nil {
		r.log.Error("Failed to find overlapping bookings",
			zap.Error(err),
			zap.Time("from", from),
			zap.Time("to", to),
		)
		return nil, fmt.Errorf("find overlapping bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s: %w", id.String(), ErrNotFound)
	}

	return nil
}

func collectBookings(rows pgx.Rows) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}

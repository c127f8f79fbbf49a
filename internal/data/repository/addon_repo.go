package repository

import (
	"context"
	"fmt"

	"garage-booking/internal/data/entity"
	"garage-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AddonRepository interface {
	Create(ctx context.Context, addon *entity.Addon) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Addon, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Addon, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AddonStatus) error
}

type addonRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAddonRepository(db database.PgxIface, log *zap.Logger) AddonRepository {
	return &addonRepository{
		db:  db,
		log: log.With(zap.String("repository", "addon")),
	}
}

const addonColumns = "id, booking_id, addon_type, status, price, notes, created_at, updated_at"

func scanAddon(row pgx.Row) (*entity.Addon, error) {
	var addon entity.Addon
	err := row.Scan(
		&addon.ID,
		&addon.BookingID,
		&addon.Type,
		&addon.Status,
		&addon.Price,
		&addon.Notes,
		&addon.CreatedAt,
		&addon.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &addon, nil
}

func (r *addonRepository) Create(ctx context.Context, addon *entity.Addon) error {
	query := `
		INSERT INTO addons (` + addonColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		addon.ID,
		addon.BookingID,
		addon.Type,
		addon.Status,
		addon.Price,
		addon.Notes,
		addon.CreatedAt,
		addon.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create addon",
			zap.Error(err),
			zap.String("booking_id", addon.BookingID.String()),
			zap.String("addon_type", string(addon.Type)),
		)
		return fmt.Errorf("create addon for booking %s: %w", addon.BookingID.String(), err)
	}

	return nil
}

func (r *addonRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Addon, error) {
	query := `SELECT ` + addonColumns + ` FROM addons WHERE id = $1`

	addon, err := scanAddon(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		r.log.Error("Failed to find addon by ID",
			zap.Error(err),
			zap.String("addon_id", id.String()),
		)
		return nil, fmt.Errorf("find addon by ID %s: %w", id.String(), err)
	}

	return addon, nil
}

func (r *addonRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Addon, error) {
	query := `SELECT ` + addonColumns + ` FROM addons WHERE booking_id = $1 ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find addons by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find addons by booking ID %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var addons []*entity.Addon
	for rows.Next() {
		addon, err := scanAddon(rows)
		if err != nil {
			return nil, fmt.Errorf("scan addon row: %w", err)
		}
		addons = append(addons, addon)
	}

	return addons, rows.Err()
}

func (r *addonRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AddonStatus) error {
	query := `UPDATE addons SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update addon status",
			zap.Error(err),
			zap.String("addon_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update addon %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("addon %s: %w", id.String(), ErrNotFound)
	}

	return nil
}

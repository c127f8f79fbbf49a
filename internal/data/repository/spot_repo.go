package repository

import (
	"context"
	"errors"
	"fmt"

	"garage-booking/internal/data/entity"
	"garage-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type SpotRepository interface {
	Create(ctx context.Context, spot *entity.ParkingSpot) error
	FindByID(ctx context.Context, id int) (*entity.ParkingSpot, error)
	FindAll(ctx context.Context) ([]*entity.ParkingSpot, error)
	// FindInService returns spots whose manual availability flag is
	// set, optionally filtered by type, ordered by id ascending.
	FindInService(ctx context.Context, spotType *entity.SpotType) ([]*entity.ParkingSpot, error)
	UpdateAvailability(ctx context.Context, id int, isAvailable bool) error
}

type spotRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSpotRepository(db database.PgxIface, log *zap.Logger) SpotRepository {
	return &spotRepository{
		db:  db,
		log: log.With(zap.String("repository", "spot")),
	}
}

const spotColumns = "id, label, spot_type, is_available, created_at, updated_at"

func scanSpot(row pgx.Row) (*entity.ParkingSpot, error) {
	var spot entity.ParkingSpot
	err := row.Scan(
		&spot.ID,
		&spot.Label,
		&spot.Type,
		&spot.IsAvailable,
		&spot.CreatedAt,
		&spot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &spot, nil
}

func (r *spotRepository) Create(ctx context.Context, spot *entity.ParkingSpot) error {
	query := `
		INSERT INTO parking_spots (label, spot_type, is_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		spot.Label,
		spot.Type,
		spot.IsAvailable,
		spot.CreatedAt,
		spot.UpdatedAt,
	).Scan(&spot.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("spot label %s: %w", spot.Label, ErrDuplicate)
		}
		r.log.Error("Failed to create spot",
			zap.Error(err),
			zap.String("label", spot.Label),
		)
		return fmt.Errorf("create spot %s: %w", spot.Label, err)
	}

	return nil
}

func (r *spotRepository) FindByID(ctx context.Context, id int) (*entity.ParkingSpot, error) {
	query := `SELECT ` + spotColumns + ` FROM parking_spots WHERE id = $1`

	spot, err := scanSpot(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		r.log.Error("Failed to find spot by ID",
			zap.Error(err),
			zap.Int("spot_id", id),
		)
		return nil, fmt.Errorf("find spot by ID %d: %w", id, err)
	}

	return spot, nil
}

func (r *spotRepository) FindAll(ctx context.Context) ([]*entity.ParkingSpot, error) {
	query := `SELECT ` + spotColumns + ` FROM parking_spots ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find spots", zap.Error(err))
		return nil, fmt.Errorf("find spots: %w", err)
	}
	defer rows.Close()

	return collectSpots(rows)
}

func (r *spotRepository) FindInService(ctx context.Context, spotType *entity.SpotType) ([]*entity.ParkingSpot, error) {
	query := `SELECT ` + spotColumns + ` FROM parking_spots WHERE is_available = true`
	args := []any{}

	if spotType != nil {
		query += ` AND spot_type = $1`
		args = append(args, *spotType)
	}
	query += ` ORDER BY id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find in-service spots", zap.Error(err))
		return nil, fmt.Errorf("find in-service spots: %w", err)
	}
	defer rows.Close()

	return collectSpots(rows)
}

func (r *spotRepository) UpdateAvailability(ctx context.Context, id int, isAvailable bool) error {
	query := `UPDATE parking_spots SET is_available = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, isAvailable)
	if err != nil {
		r.log.Error("Failed to update spot availability",
			zap.Error(err),
			zap.Int("spot_id", id),
			zap.Bool("is_available", isAvailable),
		)
		return fmt.Errorf("update spot %d availability: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("spot %d: %w", id, ErrNotFound)
	}

	return nil
}

func collectSpots(rows pgx.Rows) ([]*entity.ParkingSpot, error) {
	var spots []*entity.ParkingSpot
	for rows.Next() {
		spot, err := scanSpot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan spot row: %w", err)
		}
		spots = append(spots, spot)
	}
	return spots, rows.Err()
}

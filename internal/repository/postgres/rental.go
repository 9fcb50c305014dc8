package postgres

import (
	"context"
	"database/sql"
	"errors"

	"assetrent-backend/internal/domain"
	"assetrent-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

// The rentals id column draws from a sequence that starts at 0, so ids come
// out 0, 1, 2, ... in creation order. The unique index on asset_id is the
// asset→rental index: at most one open rental per asset.
func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (asset_id, owner_identity, renter_identity, status, duration_units, start_time, end_time, price)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	var id int64
	err := r.db.QueryRowContext(ctx, query,
		int64(rt.AssetID), rt.Owner, rt.Renter, rt.Status,
		int64(rt.DurationUnits), int64(rt.StartTime), int64(rt.EndTime), int64(rt.Price)).Scan(&id)
	if err != nil {
		return err
	}
	rt.ID = uint64(id)
	return nil
}

func (r *rentalRepository) GetByID(ctx context.Context, id uint64) (*domain.Rental, error) {
	query := `SELECT id, asset_id, owner_identity, renter_identity, status, duration_units, start_time, end_time, price
	          FROM rentals WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, int64(id)))
}

func (r *rentalRepository) GetByAsset(ctx context.Context, assetID uint64) (*domain.Rental, error) {
	query := `SELECT id, asset_id, owner_identity, renter_identity, status, duration_units, start_time, end_time, price
	          FROM rentals WHERE asset_id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, int64(assetID)))
}

func (r *rentalRepository) scanOne(row *sql.Row) (*domain.Rental, error) {
	rt := &domain.Rental{}
	var id, assetID, duration, start, end, price int64
	err := row.Scan(&id, &assetID, &rt.Owner, &rt.Renter, &rt.Status, &duration, &start, &end, &price)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRentalNotFound
	}
	if err != nil {
		return nil, err
	}
	rt.ID = uint64(id)
	rt.AssetID = uint64(assetID)
	rt.DurationUnits = uint64(duration)
	rt.StartTime = uint64(start)
	rt.EndTime = uint64(end)
	rt.Price = uint64(price)
	return rt, nil
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals SET renter_identity=$1, status=$2, duration_units=$3, start_time=$4, end_time=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query,
		rt.Renter, rt.Status, int64(rt.DurationUnits), int64(rt.StartTime), int64(rt.EndTime), int64(rt.ID))
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrRentalNotFound
	}
	return nil
}

func (r *rentalRepository) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rentals WHERE id = $1`, int64(id))
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrRentalNotFound
	}
	return nil
}

func (r *rentalRepository) ListExpired(ctx context.Context, now uint64) ([]domain.Rental, error) {
	query := `SELECT id, asset_id, owner_identity, renter_identity, status, duration_units, start_time, end_time, price
	          FROM rentals WHERE status = $1 AND end_time <= $2 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, domain.RentalStatusActive, int64(now))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt := domain.Rental{}
		var id, assetID, duration, start, end, price int64
		if err := rows.Scan(&id, &assetID, &rt.Owner, &rt.Renter, &rt.Status, &duration, &start, &end, &price); err != nil {
			return nil, err
		}
		rt.ID = uint64(id)
		rt.AssetID = uint64(assetID)
		rt.DurationUnits = uint64(duration)
		rt.StartTime = uint64(start)
		rt.EndTime = uint64(end)
		rt.Price = uint64(price)
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}

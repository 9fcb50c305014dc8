package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"assetrent-backend/internal/domain"
	"assetrent-backend/internal/repository"
)

type disputeRepository struct {
	db *sql.DB
}

func NewDisputeRepository(db *sql.DB) repository.DisputeRepository {
	return &disputeRepository{db: db}
}

func (r *disputeRepository) Upsert(ctx context.Context, d *domain.Dispute) error {
	query := `INSERT INTO disputes (rental_id, filer_identity, reason, status, created_on)
	          VALUES ($1, $2, $3, $4, $5)
	          ON CONFLICT (rental_id) DO UPDATE SET filer_identity = $2, reason = $3, status = $4, created_on = $5`
	now := time.Now().Format("2006-01-02")
	_, err := r.db.ExecContext(ctx, query, int64(d.RentalID), d.Filer, d.Reason, d.Status, now)
	if err == nil {
		d.CreatedOn = now
	}
	return err
}

func (r *disputeRepository) GetByRental(ctx context.Context, rentalID uint64) (*domain.Dispute, error) {
	d := &domain.Dispute{}
	var id int64
	var createdOn time.Time
	query := `SELECT rental_id, filer_identity, reason, status, created_on FROM disputes WHERE rental_id = $1`
	err := r.db.QueryRowContext(ctx, query, int64(rentalID)).Scan(&id, &d.Filer, &d.Reason, &d.Status, &createdOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrDisputeNotFound
	}
	if err != nil {
		return nil, err
	}
	d.RentalID = uint64(id)
	d.CreatedOn = createdOn.Format("2006-01-02")
	return d, nil
}

func (r *disputeRepository) ListPending(ctx context.Context) ([]domain.Dispute, error) {
	query := `SELECT rental_id, filer_identity, reason, status, created_on FROM disputes WHERE status = $1 ORDER BY created_on`
	rows, err := r.db.QueryContext(ctx, query, domain.DisputeStatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var disputes []domain.Dispute
	for rows.Next() {
		var d domain.Dispute
		var id int64
		var createdOn time.Time
		if err := rows.Scan(&id, &d.Filer, &d.Reason, &d.Status, &createdOn); err != nil {
			return nil, err
		}
		d.RentalID = uint64(id)
		d.CreatedOn = createdOn.Format("2006-01-02")
		disputes = append(disputes, d)
	}
	return disputes, rows.Err()
}

package postgres

import (
	"context"
	"database/sql"
	"time"

	"assetrent-backend/internal/domain"
	"assetrent-backend/internal/repository"
)

type ratingRepository struct {
	db *sql.DB
}

func NewRatingRepository(db *sql.DB) repository.RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Upsert(ctx context.Context, rating *domain.Rating) error {
	query := `INSERT INTO ratings (rental_id, role, rater_identity, score, review, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          ON CONFLICT (rental_id, role) DO UPDATE SET rater_identity = $3, score = $4, review = $5, created_on = $6`
	now := time.Now().Format("2006-01-02")
	_, err := r.db.ExecContext(ctx, query,
		int64(rating.RentalID), rating.Role, rating.Rater, int16(rating.Score), rating.Review, now)
	if err == nil {
		rating.CreatedOn = now
	}
	return err
}

func (r *ratingRepository) ListByRental(ctx context.Context, rentalID uint64) ([]domain.Rating, error) {
	query := `SELECT rental_id, role, rater_identity, score, review, created_on FROM ratings WHERE rental_id = $1 ORDER BY role`
	rows, err := r.db.QueryContext(ctx, query, int64(rentalID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ratings []domain.Rating
	for rows.Next() {
		var rt domain.Rating
		var id int64
		var score int16
		var createdOn time.Time
		if err := rows.Scan(&id, &rt.Role, &rt.Rater, &score, &rt.Review, &createdOn); err != nil {
			return nil, err
		}
		rt.RentalID = uint64(id)
		rt.Score = uint8(score)
		rt.CreatedOn = createdOn.Format("2006-01-02")
		ratings = append(ratings, rt)
	}
	return ratings, rows.Err()
}

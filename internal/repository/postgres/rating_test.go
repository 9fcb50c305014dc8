package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"assetrent-backend/internal/domain"
	"assetrent-backend/internal/repository/postgres"
)

func TestRatingRepository_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRatingRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rating := &domain.Rating{
			RentalID: 0,
			Role:     domain.RatingRoleRenter,
			Rater:    "alice",
			Score:    4,
			Review:   "smooth rental",
		}

		mock.ExpectExec("INSERT INTO ratings").
			WithArgs(int64(0), domain.RatingRoleRenter, "alice", int16(4), "smooth rental", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Upsert(ctx, rating)
		assert.NoError(t, err)
		assert.NotEmpty(t, rating.CreatedOn)
	})
}

func TestRatingRepository_ListByRental(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRatingRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"rental_id", "role", "rater_identity", "score", "review", "created_on"}).
			AddRow(0, "OWNER", "marketplace-admin", 5, "great renter", time.Now()).
			AddRow(0, "RENTER", "alice", 4, "smooth rental", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM ratings WHERE rental_id = \\$1").
			WithArgs(int64(0)).
			WillReturnRows(rows)

		ratings, err := repo.ListByRental(ctx, 0)
		assert.NoError(t, err)
		assert.Len(t, ratings, 2)
		assert.Equal(t, uint8(5), ratings[0].Score)
		assert.Equal(t, domain.RatingRoleRenter, ratings[1].Role)
	})

	t.Run("Empty", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM ratings WHERE rental_id = \\$1").
			WithArgs(int64(9)).
			WillReturnRows(sqlmock.NewRows([]string{"rental_id", "role", "rater_identity", "score", "review", "created_on"}))

		ratings, err := repo.ListByRental(ctx, 9)
		assert.NoError(t, err)
		assert.Empty(t, ratings)
	})
}

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

func TestDisputeRepository_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewDisputeRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		dispute := &domain.Dispute{
			RentalID: 0,
			Filer:    "alice",
			Reason:   "asset damaged",
			Status:   domain.DisputeStatusPending,
		}

		mock.ExpectExec("INSERT INTO disputes").
			WithArgs(int64(0), "alice", "asset damaged", domain.DisputeStatusPending, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Upsert(ctx, dispute)
		assert.NoError(t, err)
		assert.NotEmpty(t, dispute.CreatedOn)
	})
}

func TestDisputeRepository_GetByRental(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewDisputeRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"rental_id", "filer_identity", "reason", "status", "created_on"}).
			AddRow(0, "alice", "asset damaged", "PENDING", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM disputes WHERE rental_id = \\$1").
			WithArgs(int64(0)).
			WillReturnRows(rows)

		dispute, err := repo.GetByRental(ctx, 0)
		assert.NoError(t, err)
		assert.Equal(t, "alice", dispute.Filer)
		assert.Equal(t, domain.DisputeStatusPending, dispute.Status)
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM disputes WHERE rental_id = \\$1").
			WithArgs(int64(9)).
			WillReturnRows(sqlmock.NewRows([]string{"rental_id", "filer_identity", "reason", "status", "created_on"}))

		_, err := repo.GetByRental(ctx, 9)
		assert.ErrorIs(t, err, domain.ErrDisputeNotFound)
	})
}

func TestDisputeRepository_ListPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewDisputeRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"rental_id", "filer_identity", "reason", "status", "created_on"}).
			AddRow(0, "alice", "asset damaged", "PENDING", time.Now()).
			AddRow(4, "bob", "never returned", "PENDING", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM disputes WHERE status = \\$1").
			WithArgs(domain.DisputeStatusPending).
			WillReturnRows(rows)

		disputes, err := repo.ListPending(ctx)
		assert.NoError(t, err)
		assert.Len(t, disputes, 2)
		assert.Equal(t, uint64(4), disputes[1].RentalID)
	})
}

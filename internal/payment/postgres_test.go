package payment_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"assetrent-backend/internal/domain"
	"assetrent-backend/internal/payment"
)

func TestPostgresService_Transfer(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	svc := payment.NewPostgresService(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE accounts SET balance = balance - \\$1").
			WithArgs(int64(1000), "alice").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO accounts").
			WithArgs("marketplace-admin", int64(1000)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := svc.Transfer(ctx, 1000, "alice", "marketplace-admin")
		assert.NoError(t, err)
	})

	t.Run("Insufficient Funds", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE accounts SET balance = balance - \\$1").
			WithArgs(int64(1000), "broke").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := svc.Transfer(ctx, 1000, "broke", "marketplace-admin")
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	})
}

func TestPostgresService_Balance(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	svc := payment.NewPostgresService(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT balance FROM accounts WHERE identity = \\$1").
			WithArgs("alice").
			WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow(4000))

		balance, err := svc.Balance(ctx, "alice")
		assert.NoError(t, err)
		assert.Equal(t, uint64(4000), balance)
	})

	t.Run("Unknown Account Has Zero Balance", func(t *testing.T) {
		mock.ExpectQuery("SELECT balance FROM accounts WHERE identity = \\$1").
			WithArgs("nobody").
			WillReturnRows(sqlmock.NewRows([]string{"balance"}))

		balance, err := svc.Balance(ctx, "nobody")
		assert.NoError(t, err)
		assert.Equal(t, uint64(0), balance)
	})
}

func TestPostgresService_Deposit(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	svc := payment.NewPostgresService(db)
	ctx := context.Background()

	mock.ExpectExec("INSERT INTO accounts").
		WithArgs("alice", int64(5000)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, svc.Deposit(ctx, "alice", 5000))
}

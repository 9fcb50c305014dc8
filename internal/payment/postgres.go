package payment

import (
	"context"
	"database/sql"
	"errors"

	"assetrent-backend/internal/domain"
)

// PostgresService keeps account balances in the accounts table. Debits use a
// conditional UPDATE so the balance check and the deduction are one
// statement; debit and credit run inside a single transaction.
type PostgresService struct {
	db *sql.DB
}

func NewPostgresService(db *sql.DB) *PostgresService {
	return &PostgresService{db: db}
}

func (s *PostgresService) Transfer(ctx context.Context, amount uint64, from, to string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE accounts SET balance = balance - $1 WHERE identity = $2 AND balance >= $1`,
		int64(amount), from)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrInsufficientFunds
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO accounts (identity, balance) VALUES ($1, $2)
		 ON CONFLICT (identity) DO UPDATE SET balance = accounts.balance + $2`,
		to, int64(amount))
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (s *PostgresService) Balance(ctx context.Context, account string) (uint64, error) {
	var balance int64
	err := s.db.QueryRowContext(ctx,
		`SELECT balance FROM accounts WHERE identity = $1`, account).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return uint64(balance), nil
}

func (s *PostgresService) Deposit(ctx context.Context, account string, amount uint64) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO accounts (identity, balance) VALUES ($1, $2)
		 ON CONFLICT (identity) DO UPDATE SET balance = accounts.balance + $2`,
		account, int64(amount))
	return err
}

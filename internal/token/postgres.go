package token

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"assetrent-backend/internal/domain"
)

// PostgresService keeps token ownership in the asset_tokens table.
type PostgresService struct {
	db *sql.DB
}

func NewPostgresService(db *sql.DB) *PostgresService {
	return &PostgresService{db: db}
}

func (s *PostgresService) Mint(ctx context.Context, assetID uint64, owner string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO asset_tokens (asset_id, owner_identity) VALUES ($1, $2)`,
		int64(assetID), owner)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		return domain.ErrTokenExists
	}
	return err
}

func (s *PostgresService) Transfer(ctx context.Context, assetID uint64, from, to string) error {
	cur, err := s.OwnerOf(ctx, assetID)
	if err != nil {
		return err
	}
	if cur != from {
		return domain.ErrNotTokenOwner
	}
	_, err = s.db.ExecContext(ctx,
		`UPDATE asset_tokens SET owner_identity = $1 WHERE asset_id = $2`,
		to, int64(assetID))
	return err
}

func (s *PostgresService) Burn(ctx context.Context, assetID uint64, owner string) error {
	cur, err := s.OwnerOf(ctx, assetID)
	if err != nil {
		return err
	}
	if cur != owner {
		return domain.ErrNotTokenOwner
	}
	_, err = s.db.ExecContext(ctx,
		`DELETE FROM asset_tokens WHERE asset_id = $1`, int64(assetID))
	return err
}

func (s *PostgresService) OwnerOf(ctx context.Context, assetID uint64) (string, error) {
	var owner string
	err := s.db.QueryRowContext(ctx,
		`SELECT owner_identity FROM asset_tokens WHERE asset_id = $1`,
		int64(assetID)).Scan(&owner)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrTokenNotFound
	}
	if err != nil {
		return "", err
	}
	return owner, nil
}

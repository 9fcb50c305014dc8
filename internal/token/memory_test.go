package token_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assetrent-backend/internal/domain"
	"assetrent-backend/internal/token"
)

func TestMemoryService(t *testing.T) {
	svc := token.NewMemoryService()
	ctx := context.Background()

	t.Run("Mint And Lookup", func(t *testing.T) {
		require.NoError(t, svc.Mint(ctx, 123, "marketplace-admin"))

		owner, err := svc.OwnerOf(ctx, 123)
		require.NoError(t, err)
		assert.Equal(t, "marketplace-admin", owner)
	})

	t.Run("Double Mint", func(t *testing.T) {
		err := svc.Mint(ctx, 123, "mallory")
		assert.ErrorIs(t, err, domain.ErrTokenExists)
	})

	t.Run("Transfer Requires Current Owner", func(t *testing.T) {
		err := svc.Transfer(ctx, 123, "mallory", "alice")
		assert.ErrorIs(t, err, domain.ErrNotTokenOwner)

		require.NoError(t, svc.Transfer(ctx, 123, "marketplace-admin", "alice"))
		owner, _ := svc.OwnerOf(ctx, 123)
		assert.Equal(t, "alice", owner)
	})

	t.Run("Burn Requires Current Owner", func(t *testing.T) {
		err := svc.Burn(ctx, 123, "marketplace-admin")
		assert.ErrorIs(t, err, domain.ErrNotTokenOwner)

		require.NoError(t, svc.Burn(ctx, 123, "alice"))
		_, err = svc.OwnerOf(ctx, 123)
		assert.ErrorIs(t, err, domain.ErrTokenNotFound)
	})

	t.Run("Unknown Token", func(t *testing.T) {
		_, err := svc.OwnerOf(ctx, 999)
		assert.ErrorIs(t, err, domain.ErrTokenNotFound)
		assert.ErrorIs(t, svc.Transfer(ctx, 999, "a", "b"), domain.ErrTokenNotFound)
		assert.ErrorIs(t, svc.Burn(ctx, 999, "a"), domain.ErrTokenNotFound)
	})
}

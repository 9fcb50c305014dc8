package payment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assetrent-backend/internal/domain"
	"assetrent-backend/internal/payment"
)

func TestMemoryService(t *testing.T) {
	svc := payment.NewMemoryService()
	ctx := context.Background()

	t.Run("Unknown Account Has Zero Balance", func(t *testing.T) {
		balance, err := svc.Balance(ctx, "nobody")
		require.NoError(t, err)
		assert.Equal(t, uint64(0), balance)
	})

	t.Run("Deposit And Transfer", func(t *testing.T) {
		require.NoError(t, svc.Deposit(ctx, "alice", 5000))
		require.NoError(t, svc.Transfer(ctx, 1000, "alice", "bob"))

		aliceBalance, _ := svc.Balance(ctx, "alice")
		bobBalance, _ := svc.Balance(ctx, "bob")
		assert.Equal(t, uint64(4000), aliceBalance)
		assert.Equal(t, uint64(1000), bobBalance)
	})

	t.Run("Insufficient Funds", func(t *testing.T) {
		err := svc.Transfer(ctx, 9999, "alice", "bob")
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

		aliceBalance, _ := svc.Balance(ctx, "alice")
		assert.Equal(t, uint64(4000), aliceBalance)
	})

	t.Run("Self Transfer Keeps Balance", func(t *testing.T) {
		require.NoError(t, svc.Transfer(ctx, 1000, "alice", "alice"))
		aliceBalance, _ := svc.Balance(ctx, "alice")
		assert.Equal(t, uint64(4000), aliceBalance)
	})
}

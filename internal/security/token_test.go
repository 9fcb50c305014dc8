package security_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assetrent-backend/internal/security"
)

const testSecret = "test-secret-0123456789abcdef"

func TestTokenManager_RoundTrip(t *testing.T) {
	manager := security.NewTokenManager(testSecret, time.Hour)

	tokenString, err := manager.GenerateToken("alice")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	identity, err := manager.ValidateToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "alice", identity)
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	manager := security.NewTokenManager(testSecret, -time.Minute)

	tokenString, err := manager.GenerateToken("alice")
	require.NoError(t, err)

	_, err = manager.ValidateToken(tokenString)
	assert.ErrorIs(t, err, security.ErrExpiredToken)
}

func TestTokenManager_InvalidToken(t *testing.T) {
	manager := security.NewTokenManager(testSecret, time.Hour)

	t.Run("Garbage", func(t *testing.T) {
		_, err := manager.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, security.ErrInvalidToken)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		other := security.NewTokenManager("some-other-secret-value-here", time.Hour)
		tokenString, err := other.GenerateToken("alice")
		require.NoError(t, err)

		_, err = manager.ValidateToken(tokenString)
		assert.ErrorIs(t, err, security.ErrInvalidToken)
	})
}

package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTServiceHMAC(t *testing.T) {
	svc, err := NewJWTService(JWTConfig{
		Secret:     "test-secret",
		Issuer:     "finora-gateway",
		Expiration: time.Hour,
	})
	require.NoError(t, err)

	userID := uuid.New()

	t.Run("round-trips a token", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, []string{RoleUser})
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.True(t, claims.HasRole(RoleUser))
		assert.False(t, claims.HasRole(RoleAdmin))
	})

	t.Run("rejects a tampered token", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, nil)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token + "x")
		assert.Error(t, err)
	})

	t.Run("rejects a token from another issuer", func(t *testing.T) {
		other, err := NewJWTService(JWTConfig{Secret: "test-secret", Issuer: "someone-else"})
		require.NoError(t, err)
		token, err := other.GenerateToken(userID, nil)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})
}

func TestNewJWTServiceRequiresKeyMaterial(t *testing.T) {
	_, err := NewJWTService(JWTConfig{})
	assert.Error(t, err)
}

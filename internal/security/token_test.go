package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenManager(t *testing.T) {
	manager := NewTokenManager("0123456789abcdef0123456789abcdef")

	t.Run("RoundTrip", func(t *testing.T) {
		token, err := manager.GenerateAccessToken(42, "renter@example.com")
		assert.NoError(t, err)

		claims, err := manager.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, int32(42), claims.UserID)
		assert.Equal(t, "renter@example.com", claims.Email)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		other := NewTokenManager("ffffffffffffffffffffffffffffffff")
		token, err := other.GenerateAccessToken(42, "")
		assert.NoError(t, err)

		_, err = manager.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := manager.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"resort-checkout/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_ValidateToken(t *testing.T) {
	svc := jwt.NewService("test-secret")
	userID := uuid.New()

	t.Run("valid token", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, "guest", time.Hour)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)

		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "guest", claims.Role)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, "guest", -time.Minute)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)

		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("signed with another secret", func(t *testing.T) {
		token, err := jwt.NewService("other-secret").GenerateToken(userID, "guest", time.Hour)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)

		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("unsigned token", func(t *testing.T) {
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, jwt.Claims{UserID: userID}).
			SignedString(gojwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)

		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("missing user id", func(t *testing.T) {
		token, err := svc.GenerateToken(uuid.Nil, "guest", time.Hour)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)

		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}

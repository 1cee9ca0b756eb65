//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC))
	svc := jwt.NewService("secret", 15*time.Minute, 24*time.Hour, clk)
	userID := uuid.New()

	t.Run("アクセストークンの往復", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(userID, "alice", []string{"USER"})
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "alice", claims.Username)
		assert.Equal(t, []string{"USER"}, claims.Roles)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
	})

	t.Run("期限切れ", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(userID, "alice", nil)
		require.NoError(t, err)

		clk.Add(16 * time.Minute)
		defer clk.Add(-16 * time.Minute)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("別の鍵で署名されたトークンは無効", func(t *testing.T) {
		other := jwt.NewService("other", time.Minute, time.Minute, clk)
		token, err := other.GenerateRefreshToken(userID, "alice", nil)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}

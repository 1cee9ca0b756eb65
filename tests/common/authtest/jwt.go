//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, username string, roles ...string) string {
	t.Helper()
	return h.generate(t, clock.NewRealClock(), userID, username, roles)
}

// CreateExpiredToken signs a token whose lifetime ended an hour ago.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, username string, roles ...string) string {
	t.Helper()
	past := clock.NewMockClock(time.Now().Add(-24 * time.Hour))
	return h.generate(t, past, userID, username, roles)
}

func (h *JWTHelper) generate(t *testing.T, clk clock.Clock, userID uuid.UUID, username string, roles []string) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.AccessTokenDuration)
	require.NoError(t, err)
	refreshDuration, err := time.ParseDuration(h.cfg.RefreshTokenDuration)
	require.NoError(t, err)
	if len(roles) == 0 {
		roles = []string{"USER"}
	}
	service := jwt.NewService(h.cfg.Secret, duration, refreshDuration, clk)
	token, err := service.GenerateAccessToken(userID, username, roles)
	require.NoError(t, err)
	return token
}

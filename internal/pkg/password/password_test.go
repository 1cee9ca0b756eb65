//go:build unit

package password_test

import (
	"testing"

	"hotel-booking/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	h := password.NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.NoError(t, h.Compare(hash, "password123"))
	assert.ErrorIs(t, h.Compare(hash, "wrong-password"), password.ErrComparisonFailed)
	assert.ErrorIs(t, h.Compare("", "password123"), password.ErrInvalidPassword)

	_, err = h.Hash("")
	assert.ErrorIs(t, err, password.ErrInvalidPassword)
}

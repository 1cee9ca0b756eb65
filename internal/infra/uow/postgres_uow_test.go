//go:build unit

package uow

import (
	"errors"
	"testing"
	"time"

	"hotel-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"serialization failure", &pgconn.PgError{Code: pgErrCodeSerializationFailure}, true},
		{"deadlock", errs.Wrap(&pgconn.PgError{Code: pgErrCodeDeadlockDetected}, "lock room"), true},
		{"unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"booking conflict", errs.ErrBookingConflict, false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestShouldRetry(t *testing.T) {
	deadlock := &pgconn.PgError{Code: pgErrCodeDeadlockDetected}

	assert.True(t, shouldRetry(deadlock, 0, 3))
	assert.False(t, shouldRetry(deadlock, 3, 3))
	assert.False(t, shouldRetry(errs.ErrNotFound, 0, 3))
}

func TestCalculateBackoff(t *testing.T) {
	base := 10 * time.Millisecond
	for attempt := 0; attempt < 4; attempt++ {
		wait := time.Duration(1<<attempt) * base
		got := calculateBackoff(attempt, base)
		assert.GreaterOrEqual(t, got, wait)
		assert.Less(t, got, wait+wait/5+1)
	}
}

//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"hotel-booking/internal/domain/calendar"
	"hotel-booking/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationReschedule(t *testing.T) {
	created := time.Date(2025, time.May, 1, 9, 0, 0, 0, time.UTC)
	first, err := calendar.NewStay(calendar.NewDate(2025, time.June, 1), calendar.NewDate(2025, time.June, 3))
	require.NoError(t, err)

	roomID, userID := uuid.New(), uuid.New()
	r := reservation.New(roomID, userID, first, created)
	assert.Equal(t, created, r.UpdatedAt())

	second, err := calendar.NewStay(calendar.NewDate(2025, time.June, 10), calendar.NewDate(2025, time.June, 10))
	require.NoError(t, err)
	later := created.Add(time.Hour)
	r.Reschedule(second, later)

	assert.Equal(t, second, r.Stay())
	assert.Equal(t, created, r.CreatedAt())
	assert.Equal(t, later, r.UpdatedAt())
	assert.Equal(t, roomID, r.RoomID())
	assert.Equal(t, userID, r.UserID())
}

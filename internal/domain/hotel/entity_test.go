//go:build unit

package hotel_test

import (
	"testing"
	"time"

	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

func newHotel(t *testing.T) *hotel.Hotel {
	t.Helper()
	h, err := hotel.NewHotel(hotel.Details{
		Name:             "Grand Budapest",
		Headline:         "A hotel in the mountains",
		City:             "Zubrowka",
		Address:          "1 Alpine Road",
		DistanceToCenter: 2.5,
	}, now)
	require.NoError(t, err)
	return h
}

func TestApplyRating(t *testing.T) {
	t.Run("平均と件数が一緒に更新される", func(t *testing.T) {
		h := newHotel(t)
		assert.Equal(t, 0.0, h.Rating())
		assert.Equal(t, 0, h.NumberOfRatings())

		h.ApplyRating(mustRating(t, 5))
		assert.Equal(t, 5.0, h.Rating())
		assert.Equal(t, 1, h.NumberOfRatings())

		h.ApplyRating(mustRating(t, 3))
		assert.Equal(t, 4.0, h.Rating())
		assert.Equal(t, 2, h.NumberOfRatings())
	})

	t.Run("既存の平均から継続する", func(t *testing.T) {
		h := hotel.ReconstructHotel(newHotel(t).ID(), hotel.Details{Name: "x"}, 4.5, 4, now)
		h.ApplyRating(mustRating(t, 1))
		assert.InDelta(t, 3.8, h.Rating(), 1e-9)
		assert.Equal(t, 5, h.NumberOfRatings())
	})

	t.Run("範囲外の評価はNG", func(t *testing.T) {
		for _, v := range []int{0, 6, -1} {
			_, err := hotel.NewRating(v)
			assert.ErrorIs(t, err, errs.ErrValidation)
		}
	})
}

func TestNewHotel(t *testing.T) {
	tests := []struct {
		name  string
		d     hotel.Details
		errIs error
	}{
		{name: "valid", d: hotel.Details{Name: "Ritz", DistanceToCenter: 0}},
		{name: "blank name", d: hotel.Details{Name: "   "}, errIs: hotel.ErrInvalidName},
		{name: "negative distance", d: hotel.Details{Name: "Ritz", DistanceToCenter: -1}, errIs: hotel.ErrInvalidDistance},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := hotel.NewHotel(tt.d, now)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, h)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Ritz", h.Name())
		})
	}
}

func TestHotelApply(t *testing.T) {
	t.Run("only set fields change", func(t *testing.T) {
		h := newHotel(t)
		city := "Lutz"
		changed, err := h.Apply(hotel.Patch{City: &city})
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, "Lutz", h.City())
		assert.Equal(t, "Grand Budapest", h.Name())
	})

	t.Run("empty patch is a no-op", func(t *testing.T) {
		h := newHotel(t)
		changed, err := h.Apply(hotel.Patch{})
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("invalid patch leaves the hotel untouched", func(t *testing.T) {
		h := newHotel(t)
		blank := ""
		city := "Lutz"
		_, err := h.Apply(hotel.Patch{Name: &blank, City: &city})
		require.ErrorIs(t, err, hotel.ErrInvalidName)
		assert.Equal(t, "Grand Budapest", h.Name())
		assert.Equal(t, "Zubrowka", h.City())
	})
}

func mustRating(t *testing.T, v int) hotel.Rating {
	t.Helper()
	r, err := hotel.NewRating(v)
	require.NoError(t, err)
	return r
}

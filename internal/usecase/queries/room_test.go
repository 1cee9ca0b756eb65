//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/domain/calendar"
	"hotel-booking/internal/pkg/datefmt"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/tests/common/builder"
	queriesmock "hotel-booking/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRoomQueries_CheckAvailability(t *testing.T) {
	ctx := context.Background()
	formatter := datefmt.MustNew(datefmt.DefaultPattern)
	day := calendar.NewDate(2025, time.July, 1)
	view := builder.NewRoomBuilder().WithBooked(day.AddDays(2), day.AddDays(3)).BuildView()

	newQueries := func(t *testing.T) (queries.RoomQueries, *queriesmock.MockRoomReadStore) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockRoomReadStore(ctrl)
		hotels := queriesmock.NewMockHotelReadStore(ctrl)
		return queries.NewRoomQueries(store, hotels, formatter, calendar.StayLimit(30)), store
	}

	t.Run("重なる日付を競合として返す", func(t *testing.T) {
		q, store := newQueries(t)
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := q.CheckAvailability(ctx, view.ID, formatter.Format(day), formatter.Format(day.AddDays(2)))
		require.NoError(t, err)
		assert.False(t, got.Available)
		assert.Equal(t, []calendar.Date{day.AddDays(2)}, got.Conflicts)
	})

	t.Run("空いていれば競合なし", func(t *testing.T) {
		q, store := newQueries(t)
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := q.CheckAvailability(ctx, view.ID, formatter.Format(day), formatter.Format(day.AddDays(1)))
		require.NoError(t, err)
		assert.True(t, got.Available)
		assert.Empty(t, got.Conflicts)
	})

	t.Run("上限日数を超える範囲はストアを読まずに入力エラー", func(t *testing.T) {
		q, _ := newQueries(t)

		_, err := q.CheckAvailability(ctx, view.ID, "01/01/0001", "31/12/9999")
		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.ErrorContains(t, err, "exceeds the 30-day limit")
	})

	t.Run("逆順の範囲はInvalidRange", func(t *testing.T) {
		q, _ := newQueries(t)

		_, err := q.CheckAvailability(ctx, view.ID, formatter.Format(day.AddDays(1)), formatter.Format(day))
		assert.ErrorIs(t, err, errs.ErrInvalidRange)
	})
}

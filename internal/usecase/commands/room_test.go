//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/domain/calendar"
	"hotel-booking/internal/domain/room"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/tests/common/builder"
	"hotel-booking/tests/common/fakeuow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomCommands(t *testing.T) {
	ctx := context.Background()
	validRequest := reqdto.CreateRoomRequest{Name: "Room 1", Category: "SUITE", Number: 1, Price: 250, Capacity: 2}

	setup := func(t *testing.T) (*fakeuow.Store, commands.RoomCommands, uuid.UUID) {
		t.Helper()
		store := fakeuow.New()
		h := builder.NewHotelBuilder().BuildDomain()
		store.PutHotel(h)
		return store, commands.NewRoomCommands(store), h.ID()
	}

	t.Run("新しい部屋は予約日が空で作られる", func(t *testing.T) {
		store, cmds, hotelID := setup(t)

		id, err := cmds.Create(ctx, hotelID, validRequest)
		require.NoError(t, err)

		got, ok := store.Room(id)
		require.True(t, ok)
		assert.Equal(t, room.CategorySuite, got.Category())
		assert.Zero(t, got.BookedDates().Len())
	})

	t.Run("未知のカテゴリはValidation", func(t *testing.T) {
		_, cmds, hotelID := setup(t)
		req := validRequest
		req.Category = "PENTHOUSE"
		_, err := cmds.Create(ctx, hotelID, req)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("存在しないホテルにはNotFound", func(t *testing.T) {
		_, cmds, _ := setup(t)
		_, err := cmds.Create(ctx, uuid.New(), validRequest)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("更新しても予約日は保たれる", func(t *testing.T) {
		store, cmds, hotelID := setup(t)
		day := calendar.NewDate(2025, time.July, 1)
		rm := builder.NewRoomBuilder().WithHotel(hotelID).WithBooked(day).BuildDomain()
		store.PutRoom(rm)

		price := 99.0
		require.NoError(t, cmds.Update(ctx, rm.ID(), reqdto.UpdateRoomRequest{Price: &price}))

		got, _ := store.Room(rm.ID())
		assert.InDelta(t, 99.0, got.Price(), 1e-9)
		assert.True(t, got.BookedDates().Contains(day))
	})

	t.Run("削除は予約も消す", func(t *testing.T) {
		store, cmds, hotelID := setup(t)
		rm := builder.NewRoomBuilder().WithHotel(hotelID).BuildDomain()
		store.PutRoom(rm)
		res := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.RoomID = rm.ID() }).BuildDomain()
		store.PutReservation(res)

		require.NoError(t, cmds.Delete(ctx, rm.ID()))
		_, ok := store.Reservation(res.ID())
		assert.False(t, ok)
	})
}

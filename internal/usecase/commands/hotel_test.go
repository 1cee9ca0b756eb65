//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"hotel-booking/internal/domain/hotel"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/shared"
	"hotel-booking/tests/common/builder"
	"hotel-booking/tests/common/fakeuow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingInvalidator struct {
	mu  sync.Mutex
	ids []uuid.UUID
}

func (r *recordingInvalidator) Invalidate(_ context.Context, id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append(r.ids, id)
}

func newHotelFixture(t *testing.T) (*fakeuow.Store, *recordingInvalidator, commands.HotelCommands, *hotel.Hotel) {
	t.Helper()
	store := fakeuow.New()
	cache := &recordingInvalidator{}
	cmds := commands.NewHotelCommands(store, cache, clock.NewMockClock(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)))

	h := builder.NewHotelBuilder().BuildDomain()
	store.PutHotel(h)
	store.PutUser(builder.NewUserBuilder().WithUsername("guest").BuildPersisted())
	return store, cache, cmds, h
}

func TestHotelCommands_Rate(t *testing.T) {
	ctx := context.Background()

	t.Run("5を付けると平均5.0件数1、続けて3で平均4.0件数2", func(t *testing.T) {
		store, _, cmds, h := newHotelFixture(t)

		require.NoError(t, cmds.Rate(ctx, h.ID(), 5, "guest"))
		got, _ := store.Hotel(h.ID())
		assert.InDelta(t, 5.0, got.Rating(), 1e-9)
		assert.Equal(t, 1, got.NumberOfRatings())

		require.NoError(t, cmds.Rate(ctx, h.ID(), 3, "guest"))
		got, _ = store.Hotel(h.ID())
		assert.InDelta(t, 4.0, got.Rating(), 1e-9)
		assert.Equal(t, 2, got.NumberOfRatings())
	})

	t.Run("範囲外の評価はValidationで何も変わらない", func(t *testing.T) {
		store, cache, cmds, h := newHotelFixture(t)

		for _, v := range []int{0, 6, -1} {
			err := cmds.Rate(ctx, h.ID(), v, "guest")
			assert.ErrorIs(t, err, errs.ErrValidation, "value %d", v)
		}
		got, _ := store.Hotel(h.ID())
		assert.Zero(t, got.NumberOfRatings())
		assert.Empty(t, cache.ids)
	})

	t.Run("存在しないホテルはNotFound", func(t *testing.T) {
		_, _, cmds, _ := newHotelFixture(t)
		assert.ErrorIs(t, cmds.Rate(ctx, uuid.New(), 4, "guest"), errs.ErrNotFound)
	})

	t.Run("並行した評価も取りこぼさない", func(t *testing.T) {
		store, _, cmds, h := newHotelFixture(t)

		var wg sync.WaitGroup
		for i := range 20 {
			wg.Add(1)
			go func(v int) {
				defer wg.Done()
				assert.NoError(t, cmds.Rate(ctx, h.ID(), v, "guest"))
			}(i%5 + 1)
		}
		wg.Wait()

		got, _ := store.Hotel(h.ID())
		assert.Equal(t, 20, got.NumberOfRatings())
		assert.InDelta(t, 3.0, got.Rating(), 1e-9)
	})

	t.Run("評価イベントを積みキャッシュを無効化する", func(t *testing.T) {
		store, cache, cmds, h := newHotelFixture(t)

		require.NoError(t, cmds.Rate(ctx, h.ID(), 4, "guest"))

		events := store.Events()
		require.Len(t, events, 1)
		assert.Equal(t, shared.EventHotelRated, events[0].Type)

		var payload shared.HotelRatedPayload
		require.NoError(t, json.Unmarshal(events[0].Payload, &payload))
		assert.Equal(t, 4, payload.Value)
		assert.Equal(t, 1, payload.NumberOfRatings)
		assert.Equal(t, []uuid.UUID{h.ID()}, cache.ids)
	})
}

func TestHotelCommands_CRUD(t *testing.T) {
	ctx := context.Background()

	t.Run("作成したホテルは評価0件で始まる", func(t *testing.T) {
		store, _, cmds, _ := newHotelFixture(t)

		id, err := cmds.Create(ctx, reqdto.CreateHotelRequest{Name: "Hotel Adlon", City: "Berlin", DistanceToCenter: 0.5})
		require.NoError(t, err)

		got, ok := store.Hotel(id)
		require.True(t, ok)
		assert.Equal(t, "Hotel Adlon", got.Name())
		assert.Zero(t, got.Rating())
		assert.Zero(t, got.NumberOfRatings())
	})

	t.Run("同名のホテルはDuplicate", func(t *testing.T) {
		_, _, cmds, h := newHotelFixture(t)
		_, err := cmds.Create(ctx, reqdto.CreateHotelRequest{Name: h.Name(), City: "Berlin"})
		assert.ErrorIs(t, err, errs.ErrDuplicate)
	})

	t.Run("部分更新は指定したフィールドだけ変える", func(t *testing.T) {
		store, cache, cmds, h := newHotelFixture(t)
		city := "Lutz"

		require.NoError(t, cmds.Update(ctx, h.ID(), reqdto.UpdateHotelRequest{City: &city}))

		got, _ := store.Hotel(h.ID())
		assert.Equal(t, "Lutz", got.City())
		assert.Equal(t, h.Name(), got.Name())
		assert.Equal(t, []uuid.UUID{h.ID()}, cache.ids)
	})

	t.Run("負の距離への更新はValidation", func(t *testing.T) {
		_, _, cmds, h := newHotelFixture(t)
		d := -1.0
		assert.ErrorIs(t, cmds.Update(ctx, h.ID(), reqdto.UpdateHotelRequest{DistanceToCenter: &d}), errs.ErrValidation)
	})

	t.Run("削除すると部屋と予約も消える", func(t *testing.T) {
		store, cache, cmds, h := newHotelFixture(t)
		rm := builder.NewRoomBuilder().WithHotel(h.ID()).BuildDomain()
		store.PutRoom(rm)
		res := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.RoomID = rm.ID() }).BuildDomain()
		store.PutReservation(res)

		require.NoError(t, cmds.Delete(ctx, h.ID()))

		_, ok := store.Room(rm.ID())
		assert.False(t, ok)
		_, ok = store.Reservation(res.ID())
		assert.False(t, ok)
		assert.Equal(t, []uuid.UUID{h.ID()}, cache.ids)
	})
}

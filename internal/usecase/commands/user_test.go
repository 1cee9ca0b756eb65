//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/domain/calendar"
	"hotel-booking/internal/domain/user"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/datefmt"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/password"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/shared"
	"hotel-booking/tests/common/builder"
	"hotel-booking/tests/common/fakeuow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCommands_Delete(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
	formatter := datefmt.MustNew(datefmt.DefaultPattern)
	day := calendar.NewDate(2025, time.August, 10)

	t.Run("削除したユーザーの予約日は部屋ごとに解放される", func(t *testing.T) {
		store := fakeuow.New()
		h := builder.NewHotelBuilder().BuildDomain()
		store.PutHotel(h)
		roomA := builder.NewRoomBuilder().WithHotel(h.ID()).BuildDomain()
		roomB := builder.NewRoomBuilder().WithHotel(h.ID()).With(func(b *builder.RoomBuilder) { b.Name = "Garden 2" }).BuildDomain()
		store.PutRoom(roomA)
		store.PutRoom(roomB)

		leaving := builder.NewUserBuilder().WithUsername("leaving").WithEmail("leaving@example.com").BuildPersisted()
		staying := builder.NewUserBuilder().WithUsername("staying").WithEmail("staying@example.com").BuildPersisted()
		store.PutUser(leaving)
		store.PutUser(staying)

		booking := commands.NewBookingCommands(store, formatter, calendar.StayLimit(365), clk)
		stay := func(from, to calendar.Date) reqdto.BookRoomRequest {
			return reqdto.BookRoomRequest{CheckIn: formatter.Format(from), CheckOut: formatter.Format(to)}
		}
		_, err := booking.Book(ctx, roomA.ID(), stay(day, day.AddDays(1)), "leaving")
		require.NoError(t, err)
		_, err = booking.Book(ctx, roomA.ID(), stay(day.AddDays(4), day.AddDays(5)), "leaving")
		require.NoError(t, err)
		_, err = booking.Book(ctx, roomB.ID(), stay(day, day), "leaving")
		require.NoError(t, err)
		kept, err := booking.Book(ctx, roomA.ID(), stay(day.AddDays(2), day.AddDays(3)), "staying")
		require.NoError(t, err)

		cmds := commands.NewUserCommands(store, password.NewBcryptHasher(4), clk)
		require.NoError(t, cmds.Delete(ctx, leaving.ID()))

		_, ok := store.User(leaving.ID())
		assert.False(t, ok)

		gotA, _ := store.Room(roomA.ID())
		assert.Equal(t, []calendar.Date{day.AddDays(2), day.AddDays(3)}, gotA.BookedDates().Sorted())
		gotB, _ := store.Room(roomB.ID())
		assert.Zero(t, gotB.BookedDates().Len())

		remaining := store.Reservations()
		require.Len(t, remaining, 1)
		assert.Equal(t, kept, remaining[0].ID())

		cancelled := 0
		for _, e := range store.Events() {
			if e.Type == shared.EventReservationCancelled {
				cancelled++
			}
		}
		assert.Equal(t, 3, cancelled)
	})

	t.Run("存在しないユーザーはNotFound", func(t *testing.T) {
		cmds := commands.NewUserCommands(fakeuow.New(), password.NewBcryptHasher(4), clk)
		assert.ErrorIs(t, cmds.Delete(ctx, uuid.New()), errs.ErrNotFound)
	})
}

func TestUserCommands_Create(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
	valid := reqdto.RegisterRequest{Username: "new.admin", Email: "new.admin@example.com", Password: "password123"}

	t.Run("指定したロールで作成しパスワードはハッシュ化される", func(t *testing.T) {
		store := fakeuow.New()
		cmds := commands.NewUserCommands(store, password.NewBcryptHasher(4), clk)

		id, err := cmds.Create(ctx, reqdto.CreateUserRequest{RegisterRequest: valid, Roles: []string{"ADMIN"}})
		require.NoError(t, err)

		got, ok := store.User(id)
		require.True(t, ok)
		assert.True(t, got.IsAdmin())
		assert.NotEqual(t, valid.Password, got.PasswordHash())
	})

	t.Run("ロール未指定はUSER", func(t *testing.T) {
		store := fakeuow.New()
		cmds := commands.NewUserCommands(store, password.NewBcryptHasher(4), clk)

		id, err := cmds.Create(ctx, reqdto.CreateUserRequest{RegisterRequest: valid})
		require.NoError(t, err)

		got, _ := store.User(id)
		assert.Equal(t, []user.Role{user.RoleUser}, got.Roles())
	})

	t.Run("異常系", func(t *testing.T) {
		cases := []struct {
			name string
			req  reqdto.CreateUserRequest
			want error
		}{
			{"不正なロール", reqdto.CreateUserRequest{RegisterRequest: valid, Roles: []string{"ROOT"}}, errs.ErrValidation},
			{"短いパスワード", reqdto.CreateUserRequest{RegisterRequest: reqdto.RegisterRequest{Username: "abc", Email: "abc@example.com", Password: "short"}}, errs.ErrValidation},
			{"不正なメール", reqdto.CreateUserRequest{RegisterRequest: reqdto.RegisterRequest{Username: "abc", Email: "nope", Password: "password123"}}, errs.ErrValidation},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				cmds := commands.NewUserCommands(fakeuow.New(), password.NewBcryptHasher(4), clk)
				_, err := cmds.Create(ctx, tc.req)
				assert.ErrorIs(t, err, tc.want)
			})
		}
	})

	t.Run("同じユーザー名はDuplicate", func(t *testing.T) {
		store := fakeuow.New()
		cmds := commands.NewUserCommands(store, password.NewBcryptHasher(4), clk)
		_, err := cmds.Create(ctx, reqdto.CreateUserRequest{RegisterRequest: valid})
		require.NoError(t, err)

		_, err = cmds.Create(ctx, reqdto.CreateUserRequest{RegisterRequest: valid})
		assert.ErrorIs(t, err, errs.ErrDuplicate)
	})
}

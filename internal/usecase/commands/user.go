package commands

import (
	"context"
	"log/slog"

	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/domain/user"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/password"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=user.go -destination=../../../tests/mock/commands/mock_user.go -package=commands

type UserCommands interface {
	Create(ctx context.Context, req reqdto.CreateUserRequest) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userCommandsImpl struct {
	uow    shared.UnitOfWork
	hasher password.Hasher
	clock  clock.Clock
}

func NewUserCommands(uow shared.UnitOfWork, hasher password.Hasher, clk clock.Clock) UserCommands {
	return &userCommandsImpl{
		uow:    uow,
		hasher: hasher,
		clock:  clk,
	}
}

func (u *userCommandsImpl) Create(ctx context.Context, req reqdto.CreateUserRequest) (uuid.UUID, error) {
	roles, err := user.NewRoles(req.Roles)
	if err != nil {
		return uuid.Nil, err
	}
	return createUser(ctx, u.uow, u.hasher, u.clock, req.RegisterRequest, roles)
}

// Delete releases every booked day the user holds before the row goes, so
// the cascade on reservations never leaves dates behind on a room.
func (u *userCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	released := 0
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		target, err := tx.Users().FindByID(ctx, id)
		if err != nil {
			return err
		}
		reservations, err := tx.Reservations().LockByUserID(ctx, id)
		if err != nil {
			return err
		}

		rooms := make(map[uuid.UUID]*room.Room)
		for _, res := range reservations {
			rm, ok := rooms[res.RoomID()]
			if !ok {
				rm, err = tx.Rooms().LockByID(ctx, res.RoomID())
				if err != nil {
					return err
				}
				rooms[rm.ID()] = rm
			}
			if err := rm.Release(res.Stay()); err != nil {
				if errs.Is(err, errs.ErrInconsistentState) {
					slog.Error("booked dates out of sync with reservation",
						"reservation_id", res.ID(),
						"room_id", rm.ID(),
						"error", err.Error())
				}
				return err
			}

			payload := shared.NewReservationPayload(res, rm, target.Username().Value())
			event, err := shared.NewEvent(shared.EventReservationCancelled, res.ID(), payload, u.clock.Now())
			if err != nil {
				return err
			}
			if err := tx.Outbox().Append(ctx, event); err != nil {
				return err
			}
		}

		for _, rm := range rooms {
			if err := tx.Rooms().SaveBookedDates(ctx, rm); err != nil {
				return err
			}
		}
		released = len(reservations)
		return tx.Users().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	slog.Info("user deleted", "user_id", id, "released_reservations", released)
	return nil
}

func createUser(ctx context.Context, uow shared.UnitOfWork, hasher password.Hasher, clk clock.Clock, req reqdto.RegisterRequest, roles []user.Role) (uuid.UUID, error) {
	username, err := user.NewUsername(req.Username)
	if err != nil {
		return uuid.Nil, err
	}
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return uuid.Nil, err
	}
	pw, err := user.NewPassword(req.Password)
	if err != nil {
		return uuid.Nil, err
	}
	hash, err := hasher.Hash(pw.Value())
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "hash password")
	}

	entity := user.NewUser(username, email, hash, roles, clk.Now())
	err = uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, entity)
	})
	if err != nil {
		return uuid.Nil, err
	}

	slog.Info("user created", "user_id", entity.ID(), "username", username.Value(), "roles", user.RoleStrings(entity.Roles()))
	return entity.ID(), nil
}

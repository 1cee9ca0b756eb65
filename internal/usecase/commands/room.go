package commands

import (
	"context"
	"log/slog"

	"hotel-booking/internal/domain/room"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=room.go -destination=../../../tests/mock/commands/mock_room.go -package=commands

type RoomCommands interface {
	Create(ctx context.Context, hotelID uuid.UUID, req reqdto.CreateRoomRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateRoomRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type roomCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewRoomCommands(uow shared.UnitOfWork) RoomCommands {
	return &roomCommandsImpl{uow: uow}
}

func (r *roomCommandsImpl) Create(ctx context.Context, hotelID uuid.UUID, req reqdto.CreateRoomRequest) (uuid.UUID, error) {
	details, err := req.ToDetails()
	if err != nil {
		return uuid.Nil, err
	}
	entity, err := room.NewRoom(hotelID, details)
	if err != nil {
		return uuid.Nil, err
	}

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Rooms().Create(ctx, entity)
	})
	if err != nil {
		return uuid.Nil, err
	}

	slog.Info("room created", "room_id", entity.ID(), "hotel_id", hotelID)
	return entity.ID(), nil
}

// Update never touches booked dates; those belong to the booking engine.
func (r *roomCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateRoomRequest) error {
	patch, err := req.ToPatch()
	if err != nil {
		return err
	}

	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Rooms().LockByID(ctx, id)
		if err != nil {
			return err
		}
		changed, err := entity.Apply(patch)
		if err != nil || !changed {
			return err
		}
		return tx.Rooms().Update(ctx, entity)
	})
}

func (r *roomCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Rooms().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	slog.Info("room deleted", "room_id", id)
	return nil
}

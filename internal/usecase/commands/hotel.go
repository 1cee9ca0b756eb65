package commands

import (
	"context"
	"log/slog"

	"hotel-booking/internal/domain/hotel"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=hotel.go -destination=../../../tests/mock/commands/mock_hotel.go -package=commands

type HotelCommands interface {
	Create(ctx context.Context, req reqdto.CreateHotelRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateHotelRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	Rate(ctx context.Context, id uuid.UUID, value int, username string) error
}

type hotelCommandsImpl struct {
	uow   shared.UnitOfWork
	cache shared.HotelCacheInvalidator
	clock clock.Clock
}

func NewHotelCommands(uow shared.UnitOfWork, cache shared.HotelCacheInvalidator, clk clock.Clock) HotelCommands {
	return &hotelCommandsImpl{
		uow:   uow,
		cache: cache,
		clock: clk,
	}
}

func (h *hotelCommandsImpl) Create(ctx context.Context, req reqdto.CreateHotelRequest) (uuid.UUID, error) {
	entity, err := hotel.NewHotel(req.ToDetails(), h.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = h.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Hotels().Create(ctx, entity)
	})
	if err != nil {
		return uuid.Nil, err
	}

	slog.Info("hotel created", "hotel_id", entity.ID(), "name", entity.Name())
	return entity.ID(), nil
}

func (h *hotelCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateHotelRequest) error {
	err := h.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Hotels().LockByID(ctx, id)
		if err != nil {
			return err
		}
		changed, err := entity.Apply(req.ToPatch())
		if err != nil || !changed {
			return err
		}
		return tx.Hotels().Update(ctx, entity)
	})
	if err != nil {
		return err
	}

	h.cache.Invalidate(ctx, id)
	return nil
}

func (h *hotelCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := h.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Hotels().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	h.cache.Invalidate(ctx, id)
	slog.Info("hotel deleted", "hotel_id", id)
	return nil
}

// Rate folds one rating into the running mean under a row lock so
// concurrent ratings are never lost.
func (h *hotelCommandsImpl) Rate(ctx context.Context, id uuid.UUID, value int, username string) error {
	rating, err := hotel.NewRating(value)
	if err != nil {
		return err
	}

	err = h.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		requester, err := tx.Users().FindByUsername(ctx, username)
		if err != nil {
			return err
		}
		entity, err := tx.Hotels().LockByID(ctx, id)
		if err != nil {
			return err
		}

		entity.ApplyRating(rating)
		if err := tx.Hotels().UpdateRating(ctx, entity); err != nil {
			return err
		}

		event, err := shared.NewEvent(shared.EventHotelRated, entity.ID(), shared.HotelRatedPayload{
			HotelID:         entity.ID(),
			UserID:          requester.ID(),
			Value:           value,
			Rating:          entity.Rating(),
			NumberOfRatings: entity.NumberOfRatings(),
		}, h.clock.Now())
		if err != nil {
			return err
		}
		return tx.Outbox().Append(ctx, event)
	})
	if err != nil {
		return err
	}

	h.cache.Invalidate(ctx, id)
	return nil
}

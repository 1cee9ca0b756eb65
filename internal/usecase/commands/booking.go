package commands

import (
	"context"
	"log/slog"

	"hotel-booking/internal/domain/calendar"
	"hotel-booking/internal/domain/reservation"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/datefmt"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/mock_booking.go -package=commands

type BookingCommands interface {
	Book(ctx context.Context, roomID uuid.UUID, req reqdto.BookRoomRequest, username string) (uuid.UUID, error)
	Update(ctx context.Context, reservationID uuid.UUID, req reqdto.UpdateReservationRequest, username string) (uuid.UUID, error)
	Cancel(ctx context.Context, reservationID uuid.UUID, username string) error
}

type bookingCommandsImpl struct {
	uow       shared.UnitOfWork
	formatter *datefmt.Formatter
	limit     calendar.StayLimit
	clock     clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, formatter *datefmt.Formatter, limit calendar.StayLimit, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		uow:       uow,
		formatter: formatter,
		limit:     limit,
		clock:     clk,
	}
}

func (b *bookingCommandsImpl) Book(ctx context.Context, roomID uuid.UUID, req reqdto.BookRoomRequest, username string) (uuid.UUID, error) {
	stay, err := b.parseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		return uuid.Nil, err
	}

	var reservationID uuid.UUID
	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := tx.Rooms().LockByID(ctx, roomID)
		if err != nil {
			return err
		}
		requester, err := tx.Users().FindByUsername(ctx, username)
		if err != nil {
			return err
		}

		if err := rm.Book(stay); err != nil {
			return err
		}
		if err := tx.Rooms().SaveBookedDates(ctx, rm); err != nil {
			return err
		}

		res := reservation.New(rm.ID(), requester.ID(), stay, b.clock.Now())
		if err := tx.Reservations().Create(ctx, res); err != nil {
			return err
		}

		payload := shared.NewReservationPayload(res, rm, requester.Username().Value())
		if err := b.appendEvent(ctx, tx, shared.EventReservationCreated, res.ID(), payload); err != nil {
			return err
		}

		reservationID = res.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	slog.Info("room booked", "reservation_id", reservationID, "room_id", roomID, "username", username)
	return reservationID, nil
}

func (b *bookingCommandsImpl) Update(ctx context.Context, reservationID uuid.UUID, req reqdto.UpdateReservationRequest, username string) (uuid.UUID, error) {
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		requester, err := tx.Users().FindByUsername(ctx, username)
		if err != nil {
			return err
		}
		res, err := tx.Reservations().LockByID(ctx, reservationID)
		if err != nil {
			return err
		}
		if err := authorize(requester, res.UserID()); err != nil {
			return err
		}

		next, err := b.parseStay(req.CheckIn, req.CheckOut)
		if err != nil {
			return err
		}

		rm, err := tx.Rooms().LockByID(ctx, res.RoomID())
		if err != nil {
			return b.orphaned(res, err)
		}
		prev := res.Stay()
		if err := rm.Rebook(prev, next); err != nil {
			return b.logInconsistent(res, err)
		}
		if err := tx.Rooms().SaveBookedDates(ctx, rm); err != nil {
			return err
		}

		res.Reschedule(next, b.clock.Now())
		if err := tx.Reservations().UpdateStay(ctx, res); err != nil {
			return err
		}

		payload := shared.NewReservationPayload(res, rm, requester.Username().Value())
		payload.PreviousDays = prev.Days()
		return b.appendEvent(ctx, tx, shared.EventReservationUpdated, res.ID(), payload)
	})
	if err != nil {
		return uuid.Nil, err
	}

	slog.Info("reservation updated", "reservation_id", reservationID, "username", username)
	return reservationID, nil
}

func (b *bookingCommandsImpl) Cancel(ctx context.Context, reservationID uuid.UUID, username string) error {
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		requester, err := tx.Users().FindByUsername(ctx, username)
		if err != nil {
			return err
		}
		res, err := tx.Reservations().LockByID(ctx, reservationID)
		if err != nil {
			return err
		}
		if err := authorize(requester, res.UserID()); err != nil {
			return err
		}

		rm, err := tx.Rooms().LockByID(ctx, res.RoomID())
		if err != nil {
			return b.orphaned(res, err)
		}
		if err := rm.Release(res.Stay()); err != nil {
			return b.logInconsistent(res, err)
		}
		if err := tx.Rooms().SaveBookedDates(ctx, rm); err != nil {
			return err
		}
		if err := tx.Reservations().Delete(ctx, res.ID()); err != nil {
			return err
		}

		payload := shared.NewReservationPayload(res, rm, requester.Username().Value())
		return b.appendEvent(ctx, tx, shared.EventReservationCancelled, res.ID(), payload)
	})
	if err != nil {
		return err
	}

	slog.Info("reservation cancelled", "reservation_id", reservationID, "username", username)
	return nil
}

func (b *bookingCommandsImpl) parseStay(checkInStr, checkOutStr string) (calendar.Stay, error) {
	checkIn, err := b.formatter.Parse(checkInStr)
	if err != nil {
		return calendar.Stay{}, err
	}
	checkOut, err := b.formatter.Parse(checkOutStr)
	if err != nil {
		return calendar.Stay{}, err
	}
	return b.limit.NewStay(checkIn, checkOut)
}

func (b *bookingCommandsImpl) appendEvent(ctx context.Context, tx shared.Tx, t shared.EventType, aggregateID uuid.UUID, payload any) error {
	event, err := shared.NewEvent(t, aggregateID, payload, b.clock.Now())
	if err != nil {
		return err
	}
	return tx.Outbox().Append(ctx, event)
}

// A reservation whose room is gone should have been removed by the cascade.
func (b *bookingCommandsImpl) orphaned(res *reservation.Reservation, err error) error {
	if !errs.Is(err, errs.ErrNotFound) {
		return err
	}
	return b.logInconsistent(res, errs.Mark(errs.Wrapf(err, "room of reservation %s", res.ID()), errs.ErrInconsistentState))
}

func (b *bookingCommandsImpl) logInconsistent(res *reservation.Reservation, err error) error {
	if errs.Is(err, errs.ErrInconsistentState) {
		slog.Error("booked dates out of sync with reservation",
			"reservation_id", res.ID(),
			"room_id", res.RoomID(),
			"error", err.Error())
	}
	return err
}

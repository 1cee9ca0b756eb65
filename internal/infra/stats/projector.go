package stats

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"hotel-booking/internal/infra/messaging/kafka"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// Delta is the change one event makes to a counter document.
type Delta struct {
	Reservations  int64
	Cancellations int64
	BookedDays    int64
	Ratings       int64
	RatingSum     int64
}

type CounterStore interface {
	MarkProcessed(ctx context.Context, eventID uuid.UUID, at time.Time) (bool, error)
	IncUser(ctx context.Context, userID uuid.UUID, delta Delta, at time.Time) error
	IncHotel(ctx context.Context, hotelID uuid.UUID, delta Delta, at time.Time) error
}

// Projector folds booking and rating events into usage counters. It only
// reads events and never writes back to rooms or reservations.
type Projector struct {
	store CounterStore
}

func NewProjector(store CounterStore) *Projector {
	return &Projector{store: store}
}

// HandleMessage is the kafka.MessageHandler for the event topic.
func (p *Projector) HandleMessage(ctx context.Context, msg kafka.Message) error {
	event, err := shared.DecodeEnvelope(msg.Value)
	if err != nil {
		return err
	}
	return p.Apply(ctx, event)
}

// Apply marks the event processed before counting it, so a redelivered event
// is never counted twice. A crash in between loses that one event.
func (p *Projector) Apply(ctx context.Context, e shared.Event) error {
	proj, ok, err := project(e)
	if err != nil {
		return err
	}
	if !ok {
		slog.Debug("stats projector skipped event", "event_type", e.Type)
		return nil
	}

	fresh, err := p.store.MarkProcessed(ctx, e.ID, e.OccurredAt)
	if err != nil {
		return err
	}
	if !fresh {
		slog.Info("stats projector skipped duplicate event", "event_id", e.ID)
		return nil
	}

	if err := p.store.IncUser(ctx, proj.userID, proj.user, e.OccurredAt); err != nil {
		return err
	}
	return p.store.IncHotel(ctx, proj.hotelID, proj.hotel, e.OccurredAt)
}

type projection struct {
	userID  uuid.UUID
	hotelID uuid.UUID
	user    Delta
	hotel   Delta
}

func project(e shared.Event) (projection, bool, error) {
	switch e.Type {
	case shared.EventReservationCreated, shared.EventReservationUpdated, shared.EventReservationCancelled:
		var payload shared.ReservationPayload
		if err := json.Unmarshal(e.Payload, &payload); err != nil {
			return projection{}, false, errs.Wrapf(err, "decode %s payload", e.Type)
		}
		var d Delta
		switch e.Type {
		case shared.EventReservationCreated:
			d = Delta{Reservations: 1, BookedDays: int64(payload.Days)}
		case shared.EventReservationUpdated:
			d = Delta{BookedDays: int64(payload.Days - payload.PreviousDays)}
		default:
			d = Delta{Cancellations: 1, BookedDays: -int64(payload.Days)}
		}
		return projection{userID: payload.UserID, hotelID: payload.HotelID, user: d, hotel: d}, true, nil

	case shared.EventHotelRated:
		var payload shared.HotelRatedPayload
		if err := json.Unmarshal(e.Payload, &payload); err != nil {
			return projection{}, false, errs.Wrapf(err, "decode %s payload", e.Type)
		}
		return projection{
			userID:  payload.UserID,
			hotelID: payload.HotelID,
			user:    Delta{Ratings: 1},
			hotel:   Delta{Ratings: 1, RatingSum: int64(payload.Value)},
		}, true, nil
	}
	return projection{}, false, nil
}

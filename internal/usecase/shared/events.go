package shared

import (
	"encoding/json"
	"time"

	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type EventType string

const (
	EventReservationCreated   EventType = "reservation.created"
	EventReservationUpdated   EventType = "reservation.updated"
	EventReservationCancelled EventType = "reservation.cancelled"
	EventHotelRated           EventType = "hotel.rated"
)

// Event is one outbox row. Payload is the JSON encoding of one of the
// payload types below, chosen by Type.
type Event struct {
	ID          uuid.UUID
	Type        EventType
	AggregateID uuid.UUID
	Payload     []byte
	OccurredAt  time.Time
}

type ReservationPayload struct {
	ReservationID uuid.UUID `json:"reservationId"`
	RoomID        uuid.UUID `json:"roomId"`
	HotelID       uuid.UUID `json:"hotelId"`
	UserID        uuid.UUID `json:"userId"`
	Username      string    `json:"username"`
	CheckIn       string    `json:"checkIn"`
	CheckOut      string    `json:"checkOut"`
	Days          int       `json:"days"`
	// PreviousDays is set on updates so consumers can apply a delta.
	PreviousDays int `json:"previousDays,omitempty"`
}

type HotelRatedPayload struct {
	HotelID         uuid.UUID `json:"hotelId"`
	UserID          uuid.UUID `json:"userId"`
	Value           int       `json:"value"`
	Rating          float64   `json:"rating"`
	NumberOfRatings int       `json:"numberOfRatings"`
}

func NewEvent(t EventType, aggregateID uuid.UUID, payload any, now time.Time) (Event, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return Event{}, errs.Wrapf(err, "encode %s payload", t)
	}
	return Event{
		ID:          uuid.New(),
		Type:        t,
		AggregateID: aggregateID,
		Payload:     b,
		OccurredAt:  now,
	}, nil
}

func NewReservationPayload(res *reservation.Reservation, rm *room.Room, username string) ReservationPayload {
	stay := res.Stay()
	return ReservationPayload{
		ReservationID: res.ID(),
		RoomID:        rm.ID(),
		HotelID:       rm.HotelID(),
		UserID:        res.UserID(),
		Username:      username,
		CheckIn:       stay.CheckIn().String(),
		CheckOut:      stay.CheckOut().String(),
		Days:          stay.Days(),
	}
}

// Envelope is the wire form of an Event on external transports.
type Envelope struct {
	ID          uuid.UUID       `json:"id"`
	Type        EventType       `json:"type"`
	AggregateID uuid.UUID       `json:"aggregateId"`
	OccurredAt  time.Time       `json:"occurredAt"`
	Payload     json.RawMessage `json:"payload"`
}

func (e Event) Envelope() Envelope {
	return Envelope{
		ID:          e.ID,
		Type:        e.Type,
		AggregateID: e.AggregateID,
		OccurredAt:  e.OccurredAt,
		Payload:     json.RawMessage(e.Payload),
	}
}

func DecodeEnvelope(raw []byte) (Event, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Event{}, errs.Wrap(err, "decode event envelope")
	}
	if env.ID == uuid.Nil || env.Type == "" {
		return Event{}, errs.New("event envelope without id or type")
	}
	return Event{
		ID:          env.ID,
		Type:        env.Type,
		AggregateID: env.AggregateID,
		Payload:     []byte(env.Payload),
		OccurredAt:  env.OccurredAt,
	}, nil
}

package queries

import (
	"context"

	"hotel-booking/internal/domain/calendar"
	"hotel-booking/internal/pkg/datefmt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=room.go -destination=../../../tests/mock/queries/mock_room.go -package=queries

type RoomQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*RoomView, error)
	// CheckAvailability is advisory: it takes no lock, so a later booking
	// can still conflict.
	CheckAvailability(ctx context.Context, roomID uuid.UUID, checkIn, checkOut string) (*AvailabilityView, error)
}

type RoomReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*RoomView, error)
}

type roomQueriesImpl struct {
	store     RoomReadStore
	hotels    HotelReadStore
	formatter *datefmt.Formatter
	limit     calendar.StayLimit
}

func NewRoomQueries(store RoomReadStore, hotels HotelReadStore, formatter *datefmt.Formatter, limit calendar.StayLimit) RoomQueries {
	return &roomQueriesImpl{store: store, hotels: hotels, formatter: formatter, limit: limit}
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	return q.store.FindByID(ctx, id)
}

// ListByHotel reports NotFound for an unknown hotel rather than an empty list.
func (q *roomQueriesImpl) ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*RoomView, error) {
	if _, err := q.hotels.FindByID(ctx, hotelID); err != nil {
		return nil, err
	}
	return q.store.ListByHotel(ctx, hotelID)
}

func (q *roomQueriesImpl) CheckAvailability(ctx context.Context, roomID uuid.UUID, checkIn, checkOut string) (*AvailabilityView, error) {
	in, err := q.formatter.Parse(checkIn)
	if err != nil {
		return nil, err
	}
	out, err := q.formatter.Parse(checkOut)
	if err != nil {
		return nil, err
	}
	stay, err := q.limit.NewStay(in, out)
	if err != nil {
		return nil, err
	}
	candidate := stay.Dates()

	rm, err := q.store.FindByID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	booked := calendar.NewDateSet(rm.BookedDates...)
	var conflicts []calendar.Date
	for _, d := range candidate {
		if booked.Contains(d) {
			conflicts = append(conflicts, d)
		}
	}

	return &AvailabilityView{
		RoomID:    roomID,
		CheckIn:   in,
		CheckOut:  out,
		Available: calendar.IsAvailable(booked, candidate),
		Conflicts: conflicts,
	}, nil
}

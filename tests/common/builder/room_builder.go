//go:build unit || e2e

package builder

import (
	"hotel-booking/internal/domain/calendar"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	ID       uuid.UUID
	HotelID  uuid.UUID
	Name     string
	Category room.Category
	Number   int
	Price    float64
	Capacity int
	Booked   []calendar.Date
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:       uuid.New(),
		HotelID:  uuid.New(),
		Name:     "Sea View 101",
		Category: room.CategoryStandard,
		Number:   101,
		Price:    120,
		Capacity: 2,
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) WithHotel(id uuid.UUID) *RoomBuilder {
	b.HotelID = id
	return b
}

func (b *RoomBuilder) WithBooked(dates ...calendar.Date) *RoomBuilder {
	b.Booked = dates
	return b
}

func (b *RoomBuilder) BuildDomain() *room.Room {
	return room.ReconstructRoom(b.ID, b.HotelID, room.Details{
		Name:     b.Name,
		Category: b.Category,
		Number:   b.Number,
		Price:    b.Price,
		Capacity: b.Capacity,
	}, b.Booked)
}

func (b *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:          b.ID,
		HotelID:     b.HotelID,
		Name:        b.Name,
		Category:    b.Category.String(),
		Number:      b.Number,
		Price:       b.Price,
		Capacity:    b.Capacity,
		BookedDates: calendar.NewDateSet(b.Booked...).Sorted(),
	}
}

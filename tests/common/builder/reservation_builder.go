//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking/internal/domain/calendar"
	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID        uuid.UUID
	RoomID    uuid.UUID
	UserID    uuid.UUID
	HotelID   uuid.UUID
	RoomName  string
	Username  string
	CheckIn   calendar.Date
	CheckOut  calendar.Date
	CreatedAt time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:        uuid.New(),
		RoomID:    uuid.New(),
		UserID:    uuid.New(),
		HotelID:   uuid.New(),
		RoomName:  "Sea View 101",
		Username:  "guest.user",
		CheckIn:   calendar.NewDate(2025, time.July, 1),
		CheckOut:  calendar.NewDate(2025, time.July, 3),
		CreatedAt: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithStay(checkIn, checkOut calendar.Date) *ReservationBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

// BuildDomain panics on an inverted range; builders only describe valid fixtures.
func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	stay, err := calendar.NewStay(b.CheckIn, b.CheckOut)
	if err != nil {
		panic(err)
	}
	return reservation.Reconstruct(b.ID, b.RoomID, b.UserID, stay, b.CreatedAt, b.CreatedAt)
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:        b.ID,
		RoomID:    b.RoomID,
		RoomName:  b.RoomName,
		HotelID:   b.HotelID,
		UserID:    b.UserID,
		Username:  b.Username,
		CheckIn:   b.CheckIn,
		CheckOut:  b.CheckOut,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.CreatedAt,
	}
}

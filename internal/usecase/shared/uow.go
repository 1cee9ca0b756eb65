package shared

import (
	"context"

	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/domain/user"
	sqlc "hotel-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to one open transaction.
type Tx interface {
	Rooms() RoomRepository
	Reservations() ReservationRepository
	Hotels() HotelRepository
	Users() UserRepository
	Outbox() OutboxRepository
	DB() sqlc.DBTX
}

type RoomRepository interface {
	Create(ctx context.Context, r *room.Room) error
	// LockByID takes a row lock held until the transaction ends.
	LockByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
	Update(ctx context.Context, r *room.Room) error
	SaveBookedDates(ctx context.Context, r *room.Room) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	LockByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	LockByUserID(ctx context.Context, userID uuid.UUID) ([]*reservation.Reservation, error)
	UpdateStay(ctx context.Context, res *reservation.Reservation) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type HotelRepository interface {
	Create(ctx context.Context, h *hotel.Hotel) error
	LockByID(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error)
	Update(ctx context.Context, h *hotel.Hotel) error
	UpdateRating(ctx context.Context, h *hotel.Hotel) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByUsername(ctx context.Context, username string) (*user.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type OutboxRepository interface {
	Append(ctx context.Context, e Event) error
}

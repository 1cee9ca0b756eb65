package reservation

import (
	"time"

	"hotel-booking/internal/domain/calendar"

	"github.com/google/uuid"
)

// Reservation binds one user to one room for one inclusive stay.
type Reservation struct {
	id        uuid.UUID
	roomID    uuid.UUID
	userID    uuid.UUID
	stay      calendar.Stay
	createdAt time.Time
	updatedAt time.Time
}

func New(roomID, userID uuid.UUID, stay calendar.Stay, now time.Time) *Reservation {
	return &Reservation{
		id:        uuid.New(),
		roomID:    roomID,
		userID:    userID,
		stay:      stay,
		createdAt: now,
		updatedAt: now,
	}
}

func Reconstruct(id, roomID, userID uuid.UUID, stay calendar.Stay, createdAt, updatedAt time.Time) *Reservation {
	return &Reservation{
		id:        id,
		roomID:    roomID,
		userID:    userID,
		stay:      stay,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Reschedule only moves the reservation; the room's booked set is updated by
// Room.Rebook in the same transaction.
func (r *Reservation) Reschedule(stay calendar.Stay, now time.Time) {
	r.stay = stay
	r.updatedAt = now
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) RoomID() uuid.UUID    { return r.roomID }
func (r *Reservation) UserID() uuid.UUID    { return r.userID }
func (r *Reservation) Stay() calendar.Stay  { return r.stay }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }

//go:build unit || e2e

package fakeuow

import (
	"context"
	"sync"

	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/domain/user"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// Store is an in-memory shared.UnitOfWork. Transactions run one at a time,
// which gives the same isolation as the row locks they would take, and a
// failed transaction leaves no trace.
type Store struct {
	mu    sync.Mutex
	state state

	// OutboxErr, when set, fails every outbox append.
	OutboxErr error
}

type state struct {
	rooms        map[uuid.UUID]*room.Room
	reservations map[uuid.UUID]*reservation.Reservation
	hotels       map[uuid.UUID]*hotel.Hotel
	users        map[uuid.UUID]*user.User
	events       []shared.Event
}

func New() *Store {
	return &Store{state: state{
		rooms:        map[uuid.UUID]*room.Room{},
		reservations: map[uuid.UUID]*reservation.Reservation{},
		hotels:       map[uuid.UUID]*hotel.Hotel{},
		users:        map[uuid.UUID]*user.User{},
	}}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state.copy()
	if err := fn(ctx, &memTx{s: s}); err != nil {
		s.state = snapshot
		return err
	}
	return nil
}

// Seeding helpers. They bypass transactions and store copies.

func (s *Store) PutUser(u *user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.users[u.ID()] = cloneUser(u)
}

func (s *Store) PutHotel(h *hotel.Hotel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.hotels[h.ID()] = cloneHotel(h)
}

func (s *Store) PutRoom(r *room.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.rooms[r.ID()] = cloneRoom(r)
}

func (s *Store) PutReservation(r *reservation.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.reservations[r.ID()] = cloneReservation(r)
}

// Inspection helpers return copies.

func (s *Store) Room(id uuid.UUID) (*room.Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.state.rooms[id]
	if !ok {
		return nil, false
	}
	return cloneRoom(r), true
}

func (s *Store) Hotel(id uuid.UUID) (*hotel.Hotel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.state.hotels[id]
	if !ok {
		return nil, false
	}
	return cloneHotel(h), true
}

func (s *Store) Reservation(id uuid.UUID) (*reservation.Reservation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.state.reservations[id]
	if !ok {
		return nil, false
	}
	return cloneReservation(r), true
}

func (s *Store) User(id uuid.UUID) (*user.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.state.users[id]
	if !ok {
		return nil, false
	}
	return cloneUser(u), true
}

func (s *Store) Reservations() []*reservation.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*reservation.Reservation, 0, len(s.state.reservations))
	for _, r := range s.state.reservations {
		out = append(out, cloneReservation(r))
	}
	return out
}

func (s *Store) Events() []shared.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]shared.Event(nil), s.state.events...)
}

func (st state) copy() state {
	next := state{
		rooms:        make(map[uuid.UUID]*room.Room, len(st.rooms)),
		reservations: make(map[uuid.UUID]*reservation.Reservation, len(st.reservations)),
		hotels:       make(map[uuid.UUID]*hotel.Hotel, len(st.hotels)),
		users:        make(map[uuid.UUID]*user.User, len(st.users)),
		events:       append([]shared.Event(nil), st.events...),
	}
	// Stored values are never mutated in place, so sharing pointers is safe.
	for k, v := range st.rooms {
		next.rooms[k] = v
	}
	for k, v := range st.reservations {
		next.reservations[k] = v
	}
	for k, v := range st.hotels {
		next.hotels[k] = v
	}
	for k, v := range st.users {
		next.users[k] = v
	}
	return next
}

type memTx struct {
	s *Store
}

func (t *memTx) Rooms() shared.RoomRepository               { return roomRepo{t.s} }
func (t *memTx) Reservations() shared.ReservationRepository { return reservationRepo{t.s} }
func (t *memTx) Hotels() shared.HotelRepository             { return hotelRepo{t.s} }
func (t *memTx) Users() shared.UserRepository               { return userRepo{t.s} }
func (t *memTx) Outbox() shared.OutboxRepository            { return outboxRepo{t.s} }
func (t *memTx) DB() sqlc.DBTX                              { return nil }

type roomRepo struct{ s *Store }

func (r roomRepo) Create(_ context.Context, rm *room.Room) error {
	if _, ok := r.s.state.hotels[rm.HotelID()]; !ok {
		return errs.Wrapf(errs.ErrNotFound, "hotel %s", rm.HotelID())
	}
	for _, existing := range r.s.state.rooms {
		if existing.Name() == rm.Name() {
			return errs.Wrapf(errs.ErrDuplicate, "room name %q", rm.Name())
		}
	}
	r.s.state.rooms[rm.ID()] = cloneRoom(rm)
	return nil
}

func (r roomRepo) LockByID(_ context.Context, id uuid.UUID) (*room.Room, error) {
	rm, ok := r.s.state.rooms[id]
	if !ok {
		return nil, errs.Wrapf(errs.ErrNotFound, "room %s", id)
	}
	return cloneRoom(rm), nil
}

func (r roomRepo) Update(_ context.Context, rm *room.Room) error {
	if _, ok := r.s.state.rooms[rm.ID()]; !ok {
		return errs.Wrapf(errs.ErrNotFound, "room %s", rm.ID())
	}
	r.s.state.rooms[rm.ID()] = cloneRoom(rm)
	return nil
}

func (r roomRepo) SaveBookedDates(ctx context.Context, rm *room.Room) error {
	return r.Update(ctx, rm)
}

func (r roomRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.s.state.rooms[id]; !ok {
		return errs.Wrapf(errs.ErrNotFound, "room %s", id)
	}
	delete(r.s.state.rooms, id)
	for resID, res := range r.s.state.reservations {
		if res.RoomID() == id {
			delete(r.s.state.reservations, resID)
		}
	}
	return nil
}

type reservationRepo struct{ s *Store }

func (r reservationRepo) Create(_ context.Context, res *reservation.Reservation) error {
	r.s.state.reservations[res.ID()] = cloneReservation(res)
	return nil
}

func (r reservationRepo) LockByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, ok := r.s.state.reservations[id]
	if !ok {
		return nil, errs.Wrapf(errs.ErrNotFound, "reservation %s", id)
	}
	return cloneReservation(res), nil
}

func (r reservationRepo) LockByUserID(_ context.Context, userID uuid.UUID) ([]*reservation.Reservation, error) {
	var out []*reservation.Reservation
	for _, res := range r.s.state.reservations {
		if res.UserID() == userID {
			out = append(out, cloneReservation(res))
		}
	}
	return out, nil
}

func (r reservationRepo) UpdateStay(_ context.Context, res *reservation.Reservation) error {
	if _, ok := r.s.state.reservations[res.ID()]; !ok {
		return errs.Wrapf(errs.ErrNotFound, "reservation %s", res.ID())
	}
	r.s.state.reservations[res.ID()] = cloneReservation(res)
	return nil
}

func (r reservationRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.s.state.reservations[id]; !ok {
		return errs.Wrapf(errs.ErrNotFound, "reservation %s", id)
	}
	delete(r.s.state.reservations, id)
	return nil
}

type hotelRepo struct{ s *Store }

func (r hotelRepo) Create(_ context.Context, h *hotel.Hotel) error {
	for _, existing := range r.s.state.hotels {
		if existing.Name() == h.Name() {
			return errs.Wrapf(errs.ErrDuplicate, "hotel name %q", h.Name())
		}
	}
	r.s.state.hotels[h.ID()] = cloneHotel(h)
	return nil
}

func (r hotelRepo) LockByID(_ context.Context, id uuid.UUID) (*hotel.Hotel, error) {
	h, ok := r.s.state.hotels[id]
	if !ok {
		return nil, errs.Wrapf(errs.ErrNotFound, "hotel %s", id)
	}
	return cloneHotel(h), nil
}

func (r hotelRepo) Update(_ context.Context, h *hotel.Hotel) error {
	if _, ok := r.s.state.hotels[h.ID()]; !ok {
		return errs.Wrapf(errs.ErrNotFound, "hotel %s", h.ID())
	}
	r.s.state.hotels[h.ID()] = cloneHotel(h)
	return nil
}

func (r hotelRepo) UpdateRating(ctx context.Context, h *hotel.Hotel) error {
	return r.Update(ctx, h)
}

func (r hotelRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.s.state.hotels[id]; !ok {
		return errs.Wrapf(errs.ErrNotFound, "hotel %s", id)
	}
	delete(r.s.state.hotels, id)
	for roomID, rm := range r.s.state.rooms {
		if rm.HotelID() == id {
			if err := (roomRepo{r.s}).Delete(ctx, roomID); err != nil {
				return err
			}
		}
	}
	return nil
}

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, u *user.User) error {
	for _, existing := range r.s.state.users {
		if existing.Username() == u.Username() || existing.Email() == u.Email() {
			return errs.Wrap(errs.ErrDuplicate, "username or email already taken")
		}
	}
	r.s.state.users[u.ID()] = cloneUser(u)
	return nil
}

func (r userRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := r.s.state.users[id]
	if !ok {
		return nil, errs.Wrapf(errs.ErrNotFound, "user %s", id)
	}
	return cloneUser(u), nil
}

func (r userRepo) FindByUsername(_ context.Context, username string) (*user.User, error) {
	for _, u := range r.s.state.users {
		if u.Username().Value() == username {
			return cloneUser(u), nil
		}
	}
	return nil, errs.Wrapf(errs.ErrNotFound, "user %q", username)
}

func (r userRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.s.state.users[id]; !ok {
		return errs.Wrapf(errs.ErrNotFound, "user %s", id)
	}
	delete(r.s.state.users, id)
	for resID, res := range r.s.state.reservations {
		if res.UserID() == id {
			delete(r.s.state.reservations, resID)
		}
	}
	return nil
}

type outboxRepo struct{ s *Store }

func (r outboxRepo) Append(_ context.Context, e shared.Event) error {
	if r.s.OutboxErr != nil {
		return r.s.OutboxErr
	}
	r.s.state.events = append(r.s.state.events, e)
	return nil
}

func cloneRoom(r *room.Room) *room.Room {
	return room.ReconstructRoom(r.ID(), r.HotelID(), room.Details{
		Name:     r.Name(),
		Category: r.Category(),
		Number:   r.Number(),
		Price:    r.Price(),
		Capacity: r.Capacity(),
	}, r.BookedDates().Sorted())
}

func cloneReservation(r *reservation.Reservation) *reservation.Reservation {
	return reservation.Reconstruct(r.ID(), r.RoomID(), r.UserID(), r.Stay(), r.CreatedAt(), r.UpdatedAt())
}

func cloneHotel(h *hotel.Hotel) *hotel.Hotel {
	return hotel.ReconstructHotel(h.ID(), hotel.Details{
		Name:             h.Name(),
		Headline:         h.Headline(),
		City:             h.City(),
		Address:          h.Address(),
		DistanceToCenter: h.DistanceToCenter(),
	}, h.Rating(), h.NumberOfRatings(), h.CreatedAt())
}

func cloneUser(u *user.User) *user.User {
	return user.ReconstructUser(u.ID(), u.Username().Value(), u.Email().Value(), u.PasswordHash(), u.Roles(), u.CreatedAt())
}

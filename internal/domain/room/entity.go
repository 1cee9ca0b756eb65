package room

import (
	"math"
	"strings"

	"hotel-booking/internal/domain/calendar"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/patch"

	"github.com/google/uuid"
)

const (
	MaxNameLength = 100
	// MaxNumber bounds number and capacity to the integer column width.
	MaxNumber = math.MaxInt32
)

var (
	ErrInvalidName     = errs.Wrap(errs.ErrValidation, "room name must be 1-100 characters")
	ErrInvalidNumber   = errs.Wrap(errs.ErrValidation, "room number must be between 1 and 2147483647")
	ErrInvalidPrice    = errs.Wrap(errs.ErrValidation, "room price must not be negative")
	ErrInvalidCapacity = errs.Wrap(errs.ErrValidation, "room capacity must be between 1 and 2147483647")
)

// Room owns the set of dates it is booked on. The set is the union of the
// stays of every reservation that references the room.
type Room struct {
	id       uuid.UUID
	hotelID  uuid.UUID
	name     string
	category Category
	number   int
	price    float64
	capacity int
	booked   calendar.DateSet
}

type Details struct {
	Name     string
	Category Category
	Number   int
	Price    float64
	Capacity int
}

func NewRoom(hotelID uuid.UUID, d Details) (*Room, error) {
	r := &Room{
		id:       uuid.New(),
		hotelID:  hotelID,
		name:     d.Name,
		category: d.Category,
		number:   d.Number,
		price:    d.Price,
		capacity: d.Capacity,
		booked:   calendar.NewDateSet(),
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func ReconstructRoom(id, hotelID uuid.UUID, d Details, booked []calendar.Date) *Room {
	return &Room{
		id:       id,
		hotelID:  hotelID,
		name:     d.Name,
		category: d.Category,
		number:   d.Number,
		price:    d.Price,
		capacity: d.Capacity,
		booked:   calendar.NewDateSet(booked...),
	}
}

func (r *Room) ID() uuid.UUID                 { return r.id }
func (r *Room) HotelID() uuid.UUID            { return r.hotelID }
func (r *Room) Name() string                  { return r.name }
func (r *Room) Category() Category            { return r.category }
func (r *Room) Number() int                   { return r.number }
func (r *Room) Price() float64                { return r.price }
func (r *Room) Capacity() int                 { return r.capacity }
func (r *Room) BookedDates() calendar.DateSet { return r.booked }

// IsAvailable reports whether no day of stay is already booked.
func (r *Room) IsAvailable(stay calendar.Stay) bool {
	return calendar.IsAvailable(r.booked, stay.Dates())
}

// Book adds the stay to the booked set. On conflict the room is unchanged.
func (r *Room) Book(stay calendar.Stay) error {
	if !r.IsAvailable(stay) {
		return errs.Wrapf(errs.ErrBookingConflict, "room %s", r.id)
	}
	r.booked = r.booked.Union(stay.Dates())
	return nil
}

// Release removes the stay from the booked set. Every date must be present.
func (r *Room) Release(stay calendar.Stay) error {
	next, err := r.booked.Difference(stay.Dates())
	if err != nil {
		return errs.Wrapf(err, "room %s", r.id)
	}
	r.booked = next
	return nil
}

// Rebook moves a reservation from prev to next. Availability of next is
// checked with prev already removed, so a stay never conflicts with itself.
func (r *Room) Rebook(prev, next calendar.Stay) error {
	others, err := r.booked.Difference(prev.Dates())
	if err != nil {
		return errs.Wrapf(err, "room %s", r.id)
	}
	candidate := next.Dates()
	if !calendar.IsAvailable(others, candidate) {
		return errs.Wrapf(errs.ErrBookingConflict, "room %s", r.id)
	}
	r.booked = others.Union(candidate)
	return nil
}

type Patch struct {
	Name     *string
	Category *Category
	Number   *int
	Price    *float64
	Capacity *int
}

// Apply merges p field by field. Booked dates are not patchable.
func (r *Room) Apply(p Patch) (bool, error) {
	next := *r
	changed := patch.Apply(&next.name, p.Name)
	changed = patch.Apply(&next.category, p.Category) || changed
	changed = patch.Apply(&next.number, p.Number) || changed
	changed = patch.Apply(&next.price, p.Price) || changed
	changed = patch.Apply(&next.capacity, p.Capacity) || changed
	if !changed {
		return false, nil
	}
	if err := next.validate(); err != nil {
		return false, err
	}
	*r = next
	return true, nil
}

func (r *Room) validate() error {
	r.name = strings.TrimSpace(r.name)
	switch {
	case r.name == "" || len(r.name) > MaxNameLength:
		return ErrInvalidName
	case !r.category.IsValid():
		return ErrInvalidCategory
	case r.number <= 0 || r.number > MaxNumber:
		return ErrInvalidNumber
	case r.price < 0:
		return ErrInvalidPrice
	case r.capacity <= 0 || r.capacity > MaxNumber:
		return ErrInvalidCapacity
	}
	return nil
}

package hotel

import (
	"time"

	"hotel-booking/internal/pkg/patch"

	"github.com/google/uuid"
)

type Hotel struct {
	id               uuid.UUID
	name             string
	headline         string
	city             string
	address          string
	distanceToCenter float64
	rating           float64
	numberOfRatings  int
	createdAt        time.Time
}

type Details struct {
	Name             string
	Headline         string
	City             string
	Address          string
	DistanceToCenter float64
}

func NewHotel(d Details, now time.Time) (*Hotel, error) {
	h := &Hotel{
		id:               uuid.New(),
		name:             d.Name,
		headline:         d.Headline,
		city:             d.City,
		address:          d.Address,
		distanceToCenter: d.DistanceToCenter,
		createdAt:        now,
	}
	if err := h.validate(); err != nil {
		return nil, err
	}
	return h, nil
}

func ReconstructHotel(id uuid.UUID, d Details, rating float64, numberOfRatings int, createdAt time.Time) *Hotel {
	return &Hotel{
		id:               id,
		name:             d.Name,
		headline:         d.Headline,
		city:             d.City,
		address:          d.Address,
		distanceToCenter: d.DistanceToCenter,
		rating:           rating,
		numberOfRatings:  numberOfRatings,
		createdAt:        createdAt,
	}
}

func (h *Hotel) ID() uuid.UUID             { return h.id }
func (h *Hotel) Name() string              { return h.name }
func (h *Hotel) Headline() string          { return h.headline }
func (h *Hotel) City() string              { return h.city }
func (h *Hotel) Address() string           { return h.address }
func (h *Hotel) DistanceToCenter() float64 { return h.distanceToCenter }
func (h *Hotel) Rating() float64           { return h.rating }
func (h *Hotel) NumberOfRatings() int      { return h.numberOfRatings }
func (h *Hotel) CreatedAt() time.Time      { return h.createdAt }

// ApplyRating folds one more rating into the running mean. Ratings are never
// retracted, so mean and count are enough state.
func (h *Hotel) ApplyRating(r Rating) {
	n := float64(h.numberOfRatings)
	h.rating = (h.rating*n + float64(r.Value())) / (n + 1)
	h.numberOfRatings++
}

// Patch lists the admin-editable fields; nil means unchanged.
type Patch struct {
	Name             *string
	Headline         *string
	City             *string
	Address          *string
	DistanceToCenter *float64
}

// Apply merges p field by field. Rating fields are not patchable.
func (h *Hotel) Apply(p Patch) (bool, error) {
	next := *h
	changed := patch.Apply(&next.name, p.Name)
	changed = patch.Apply(&next.headline, p.Headline) || changed
	changed = patch.Apply(&next.city, p.City) || changed
	changed = patch.Apply(&next.address, p.Address) || changed
	changed = patch.Apply(&next.distanceToCenter, p.DistanceToCenter) || changed
	if !changed {
		return false, nil
	}
	if err := next.validate(); err != nil {
		return false, err
	}
	*h = next
	return true, nil
}

func (h *Hotel) validate() error {
	name, err := validateName(h.name)
	if err != nil {
		return err
	}
	h.name = name
	if h.distanceToCenter < 0 {
		return ErrInvalidDistance
	}
	return nil
}

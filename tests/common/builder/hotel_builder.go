//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type HotelBuilder struct {
	ID               uuid.UUID
	Name             string
	Headline         string
	City             string
	Address          string
	DistanceToCenter float64
	Rating           float64
	NumberOfRatings  int
	CreatedAt        time.Time
}

func NewHotelBuilder() *HotelBuilder {
	return &HotelBuilder{
		ID:               uuid.New(),
		Name:             "Grand Budapest",
		Headline:         "A hotel in the mountains",
		City:             "Zubrowka",
		Address:          "1 Alpine Road",
		DistanceToCenter: 2.5,
		CreatedAt:        time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *HotelBuilder) With(mutate func(*HotelBuilder)) *HotelBuilder {
	mutate(b)
	return b
}

func (b *HotelBuilder) WithRating(rating float64, count int) *HotelBuilder {
	b.Rating = rating
	b.NumberOfRatings = count
	return b
}

func (b *HotelBuilder) details() hotel.Details {
	return hotel.Details{
		Name:             b.Name,
		Headline:         b.Headline,
		City:             b.City,
		Address:          b.Address,
		DistanceToCenter: b.DistanceToCenter,
	}
}

func (b *HotelBuilder) BuildDomain() *hotel.Hotel {
	return hotel.ReconstructHotel(b.ID, b.details(), b.Rating, b.NumberOfRatings, b.CreatedAt)
}

func (b *HotelBuilder) BuildView() *queries.HotelView {
	return &queries.HotelView{
		ID:               b.ID,
		Name:             b.Name,
		Headline:         b.Headline,
		City:             b.City,
		Address:          b.Address,
		DistanceToCenter: b.DistanceToCenter,
		Rating:           b.Rating,
		NumberOfRatings:  b.NumberOfRatings,
		CreatedAt:        b.CreatedAt,
	}
}

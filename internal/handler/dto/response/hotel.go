package response

import (
	"time"

	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type HotelResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Headline         string    `json:"headline"`
	City             string    `json:"city"`
	Address          string    `json:"address"`
	DistanceToCenter float64   `json:"distanceToCenter"`
	Rating           float64   `json:"rating"`
	NumberOfRatings  int       `json:"numberOfRatings"`
	CreatedAt        time.Time `json:"createdAt"`
}

func FromHotelView(v *queries.HotelView) *HotelResponse {
	return &HotelResponse{
		ID:               v.ID,
		Name:             v.Name,
		Headline:         v.Headline,
		City:             v.City,
		Address:          v.Address,
		DistanceToCenter: v.DistanceToCenter,
		Rating:           v.Rating,
		NumberOfRatings:  v.NumberOfRatings,
		CreatedAt:        v.CreatedAt,
	}
}

func FromHotelViews(vs []*queries.HotelView) []*HotelResponse {
	out := make([]*HotelResponse, len(vs))
	for i, v := range vs {
		out[i] = FromHotelView(v)
	}
	return out
}

package request

import (
	"hotel-booking/internal/domain/hotel"
)

type CreateHotelRequest struct {
	Name             string  `json:"name" binding:"required,max=100"`
	Headline         string  `json:"headline" binding:"max=255"`
	City             string  `json:"city" binding:"required,max=100"`
	Address          string  `json:"address" binding:"max=255"`
	DistanceToCenter float64 `json:"distanceToCenter" binding:"gte=0"`
}

func (r *CreateHotelRequest) ToDetails() hotel.Details {
	return hotel.Details{
		Name:             r.Name,
		Headline:         r.Headline,
		City:             r.City,
		Address:          r.Address,
		DistanceToCenter: r.DistanceToCenter,
	}
}

// UpdateHotelRequest is a partial update: absent fields keep their value.
type UpdateHotelRequest struct {
	Name             *string  `json:"name" binding:"omitempty,max=100"`
	Headline         *string  `json:"headline" binding:"omitempty,max=255"`
	City             *string  `json:"city" binding:"omitempty,max=100"`
	Address          *string  `json:"address" binding:"omitempty,max=255"`
	DistanceToCenter *float64 `json:"distanceToCenter" binding:"omitempty,gte=0"`
}

func (r *UpdateHotelRequest) ToPatch() hotel.Patch {
	return hotel.Patch{
		Name:             r.Name,
		Headline:         r.Headline,
		City:             r.City,
		Address:          r.Address,
		DistanceToCenter: r.DistanceToCenter,
	}
}

type RateHotelRequest struct {
	Value int `json:"value" binding:"required"`
}

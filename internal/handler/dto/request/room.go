package request

import (
	"hotel-booking/internal/domain/room"
)

type CreateRoomRequest struct {
	Name     string  `json:"name" binding:"required,max=100"`
	Category string  `json:"category" binding:"required,room_category"`
	Number   int     `json:"number" binding:"required,gt=0,max=2147483647"`
	Price    float64 `json:"price" binding:"gte=0"`
	Capacity int     `json:"capacity" binding:"required,gt=0,max=2147483647"`
}

func (r *CreateRoomRequest) ToDetails() (room.Details, error) {
	category, err := room.ParseCategory(r.Category)
	if err != nil {
		return room.Details{}, err
	}
	return room.Details{
		Name:     r.Name,
		Category: category,
		Number:   r.Number,
		Price:    r.Price,
		Capacity: r.Capacity,
	}, nil
}

type UpdateRoomRequest struct {
	Name     *string  `json:"name" binding:"omitempty,max=100"`
	Category *string  `json:"category" binding:"omitempty,room_category"`
	Number   *int     `json:"number" binding:"omitempty,gt=0,max=2147483647"`
	Price    *float64 `json:"price" binding:"omitempty,gte=0"`
	Capacity *int     `json:"capacity" binding:"omitempty,gt=0,max=2147483647"`
}

func (r *UpdateRoomRequest) ToPatch() (room.Patch, error) {
	p := room.Patch{
		Name:     r.Name,
		Number:   r.Number,
		Price:    r.Price,
		Capacity: r.Capacity,
	}
	if r.Category != nil {
		c, err := room.ParseCategory(*r.Category)
		if err != nil {
			return room.Patch{}, err
		}
		p.Category = &c
	}
	return p, nil
}

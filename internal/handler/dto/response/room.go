package response

import (
	"hotel-booking/internal/pkg/datefmt"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomResponse struct {
	ID          uuid.UUID `json:"id"`
	HotelID     uuid.UUID `json:"hotelId"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Number      int       `json:"number"`
	Price       float64   `json:"price"`
	Capacity    int       `json:"capacity"`
	BookedDates []string  `json:"bookedDates"`
}

type AvailabilityResponse struct {
	RoomID    uuid.UUID `json:"roomId"`
	CheckIn   string    `json:"checkIn"`
	CheckOut  string    `json:"checkOut"`
	Available bool      `json:"available"`
	Conflicts []string  `json:"conflicts"`
}

func FromRoomView(v *queries.RoomView, f *datefmt.Formatter) *RoomResponse {
	return &RoomResponse{
		ID:          v.ID,
		HotelID:     v.HotelID,
		Name:        v.Name,
		Category:    v.Category,
		Number:      v.Number,
		Price:       v.Price,
		Capacity:    v.Capacity,
		BookedDates: f.FormatAll(v.BookedDates),
	}
}

func FromRoomViews(vs []*queries.RoomView, f *datefmt.Formatter) []*RoomResponse {
	out := make([]*RoomResponse, len(vs))
	for i, v := range vs {
		out[i] = FromRoomView(v, f)
	}
	return out
}

func FromAvailabilityView(v *queries.AvailabilityView, f *datefmt.Formatter) *AvailabilityResponse {
	return &AvailabilityResponse{
		RoomID:    v.RoomID,
		CheckIn:   f.Format(v.CheckIn),
		CheckOut:  f.Format(v.CheckOut),
		Available: v.Available,
		Conflicts: f.FormatAll(v.Conflicts),
	}
}

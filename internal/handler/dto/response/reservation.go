package response

import (
	"time"

	"hotel-booking/internal/pkg/datefmt"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID        uuid.UUID `json:"id"`
	RoomID    uuid.UUID `json:"roomId"`
	RoomName  string    `json:"roomName"`
	HotelID   uuid.UUID `json:"hotelId"`
	UserID    uuid.UUID `json:"userId"`
	Username  string    `json:"username"`
	CheckIn   string    `json:"checkIn"`
	CheckOut  string    `json:"checkOut"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ReservationListResponse struct {
	Items      []*ReservationResponse `json:"items"`
	NextCursor string                 `json:"nextCursor,omitempty"`
}

func FromReservationView(v *queries.ReservationView, f *datefmt.Formatter) *ReservationResponse {
	return &ReservationResponse{
		ID:        v.ID,
		RoomID:    v.RoomID,
		RoomName:  v.RoomName,
		HotelID:   v.HotelID,
		UserID:    v.UserID,
		Username:  v.Username,
		CheckIn:   f.Format(v.CheckIn),
		CheckOut:  f.Format(v.CheckOut),
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func FromReservationPage(vs []*queries.ReservationView, next *queries.Cursor, f *datefmt.Formatter) *ReservationListResponse {
	items := make([]*ReservationResponse, len(vs))
	for i, v := range vs {
		items[i] = FromReservationView(v, f)
	}
	resp := &ReservationListResponse{Items: items}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp
}

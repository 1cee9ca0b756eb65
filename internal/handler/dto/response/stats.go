package response

import (
	"time"

	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserStatsResponse struct {
	UserID           uuid.UUID  `json:"userId"`
	Reservations     int64      `json:"reservations"`
	Cancellations    int64      `json:"cancellations"`
	BookedDays       int64      `json:"bookedDays"`
	RatingsSubmitted int64      `json:"ratingsSubmitted"`
	LastActivityAt   *time.Time `json:"lastActivityAt,omitempty"`
}

type HotelStatsResponse struct {
	HotelID       uuid.UUID  `json:"hotelId"`
	Reservations  int64      `json:"reservations"`
	Cancellations int64      `json:"cancellations"`
	BookedDays    int64      `json:"bookedDays"`
	Ratings       int64      `json:"ratings"`
	AverageRating float64    `json:"averageRating"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

func FromUserStats(s *queries.UserStats) *UserStatsResponse {
	return &UserStatsResponse{
		UserID:           s.UserID,
		Reservations:     s.Reservations,
		Cancellations:    s.Cancellations,
		BookedDays:       s.BookedDays,
		RatingsSubmitted: s.RatingsSubmitted,
		LastActivityAt:   s.LastActivityAt,
	}
}

func FromHotelStats(s *queries.HotelStats) *HotelStatsResponse {
	resp := &HotelStatsResponse{
		HotelID:       s.HotelID,
		Reservations:  s.Reservations,
		Cancellations: s.Cancellations,
		BookedDays:    s.BookedDays,
		Ratings:       s.Ratings,
		UpdatedAt:     s.UpdatedAt,
	}
	if s.Ratings > 0 {
		resp.AverageRating = float64(s.RatingSum) / float64(s.Ratings)
	}
	return resp
}

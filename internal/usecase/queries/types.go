package queries

import (
	"time"

	"hotel-booking/internal/domain/calendar"

	"github.com/google/uuid"
)

type UserView struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
}

type HotelView struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Headline         string    `json:"headline"`
	City             string    `json:"city"`
	Address          string    `json:"address"`
	DistanceToCenter float64   `json:"distance_to_center"`
	Rating           float64   `json:"rating"`
	NumberOfRatings  int       `json:"number_of_ratings"`
	CreatedAt        time.Time `json:"created_at"`
}

type HotelFilter struct {
	City   string
	Limit  int
	Offset int
}

// RoomView carries booked dates as calendar days; rendering them with the
// configured pattern is the handler's job.
type RoomView struct {
	ID          uuid.UUID       `json:"id"`
	HotelID     uuid.UUID       `json:"hotel_id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Number      int             `json:"number"`
	Price       float64         `json:"price"`
	Capacity    int             `json:"capacity"`
	BookedDates []calendar.Date `json:"booked_dates"`
}

type AvailabilityView struct {
	RoomID    uuid.UUID
	CheckIn   calendar.Date
	CheckOut  calendar.Date
	Available bool
	// Conflicts lists the requested days that are already booked.
	Conflicts []calendar.Date
}

type ReservationView struct {
	ID        uuid.UUID     `json:"id"`
	RoomID    uuid.UUID     `json:"room_id"`
	RoomName  string        `json:"room_name"`
	HotelID   uuid.UUID     `json:"hotel_id"`
	UserID    uuid.UUID     `json:"user_id"`
	Username  string        `json:"username"`
	CheckIn   calendar.Date `json:"check_in"`
	CheckOut  calendar.Date `json:"check_out"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type ReservationReportRow struct {
	ID        uuid.UUID
	HotelName string
	RoomName  string
	Username  string
	CheckIn   calendar.Date
	CheckOut  calendar.Date
	CreatedAt time.Time
}

type UserStats struct {
	UserID           uuid.UUID  `json:"user_id"`
	Reservations     int64      `json:"reservations"`
	Cancellations    int64      `json:"cancellations"`
	BookedDays       int64      `json:"booked_days"`
	RatingsSubmitted int64      `json:"ratings_submitted"`
	LastActivityAt   *time.Time `json:"last_activity_at,omitempty"`
}

type HotelStats struct {
	HotelID       uuid.UUID  `json:"hotel_id"`
	Reservations  int64      `json:"reservations"`
	Cancellations int64      `json:"cancellations"`
	BookedDays    int64      `json:"booked_days"`
	Ratings       int64      `json:"ratings"`
	RatingSum     int64      `json:"rating_sum"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

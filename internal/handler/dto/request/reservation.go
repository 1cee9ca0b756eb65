package request

// Dates are strings in the configured booking pattern; parsing them is the
// booking engine's job so the error kind stays DateFormat.
type BookRoomRequest struct {
	CheckIn  string `json:"checkIn" binding:"required"`
	CheckOut string `json:"checkOut" binding:"required"`
}

type UpdateReservationRequest struct {
	CheckIn  string `json:"checkIn" binding:"required"`
	CheckOut string `json:"checkOut" binding:"required"`
}

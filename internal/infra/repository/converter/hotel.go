package converter

import (
	"hotel-booking/internal/domain/hotel"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
)

func HotelToCreateParams(h *hotel.Hotel) sqlc.CreateHotelParams {
	return sqlc.CreateHotelParams{
		ID:               h.ID(),
		Name:             h.Name(),
		Headline:         h.Headline(),
		City:             h.City(),
		Address:          h.Address(),
		DistanceToCenter: h.DistanceToCenter(),
		Rating:           h.Rating(),
		NumberOfRatings:  int32(h.NumberOfRatings()),
		CreatedAt:        pgconv.TimeToPgtype(h.CreatedAt()),
	}
}

func HotelToUpdateParams(h *hotel.Hotel) sqlc.UpdateHotelParams {
	return sqlc.UpdateHotelParams{
		ID:               h.ID(),
		Name:             h.Name(),
		Headline:         h.Headline(),
		City:             h.City(),
		Address:          h.Address(),
		DistanceToCenter: h.DistanceToCenter(),
	}
}

func HotelFromRow(row sqlc.Hotels) *hotel.Hotel {
	return hotel.ReconstructHotel(row.ID, hotel.Details{
		Name:             row.Name,
		Headline:         row.Headline,
		City:             row.City,
		Address:          row.Address,
		DistanceToCenter: row.DistanceToCenter,
	}, row.Rating, int(row.NumberOfRatings), pgconv.TimeFromPgtype(row.CreatedAt))
}

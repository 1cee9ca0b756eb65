package converter

import (
	"hotel-booking/internal/domain/calendar"
	"hotel-booking/internal/domain/reservation"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/pgconv"
)

func ReservationToCreateParams(res *reservation.Reservation) sqlc.CreateReservationParams {
	stay := res.Stay()
	return sqlc.CreateReservationParams{
		ID:        res.ID(),
		RoomID:    res.RoomID(),
		UserID:    res.UserID(),
		CheckIn:   pgconv.DateToPgtype(stay.CheckIn()),
		CheckOut:  pgconv.DateToPgtype(stay.CheckOut()),
		CreatedAt: pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationToStayParams(res *reservation.Reservation) sqlc.UpdateReservationStayParams {
	stay := res.Stay()
	return sqlc.UpdateReservationStayParams{
		ID:        res.ID(),
		CheckIn:   pgconv.DateToPgtype(stay.CheckIn()),
		CheckOut:  pgconv.DateToPgtype(stay.CheckOut()),
		UpdatedAt: pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

// ReservationFromRow fails only if the row violates the stay order CHECK.
func ReservationFromRow(row sqlc.Reservations) (*reservation.Reservation, error) {
	stay, err := calendar.NewStay(pgconv.DateFromPgtype(row.CheckIn), pgconv.DateFromPgtype(row.CheckOut))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInconsistentState)
	}
	return reservation.Reconstruct(
		row.ID,
		row.RoomID,
		row.UserID,
		stay,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

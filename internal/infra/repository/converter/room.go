package converter

import (
	"hotel-booking/internal/domain/room"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
)

func RoomToCreateParams(r *room.Room) sqlc.CreateRoomParams {
	return sqlc.CreateRoomParams{
		ID:          r.ID(),
		HotelID:     r.HotelID(),
		Name:        r.Name(),
		Category:    r.Category().String(),
		Number:      int32(r.Number()),
		Price:       r.Price(),
		Capacity:    int32(r.Capacity()),
		BookedDates: pgconv.DatesToPgtype(r.BookedDates().Sorted()),
	}
}

func RoomToUpdateParams(r *room.Room) sqlc.UpdateRoomParams {
	return sqlc.UpdateRoomParams{
		ID:       r.ID(),
		Name:     r.Name(),
		Category: r.Category().String(),
		Number:   int32(r.Number()),
		Price:    r.Price(),
		Capacity: int32(r.Capacity()),
	}
}

func RoomFromLockRow(row sqlc.LockRoomByIDRow) *room.Room {
	return room.ReconstructRoom(row.ID, row.HotelID, room.Details{
		Name:     row.Name,
		Category: room.Category(row.Category),
		Number:   int(row.Number),
		Price:    row.Price,
		Capacity: int(row.Capacity),
	}, pgconv.DatesFromPgtype(row.BookedDates))
}

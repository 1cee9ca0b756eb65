package readstore

import (
	"context"

	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomReadQueries interface {
	FindRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindRoomByIDRow, error)
	ListRoomsByHotel(ctx context.Context, db sqlc.DBTX, hotelID uuid.UUID) ([]sqlc.ListRoomsByHotelRow, error)
}

type RoomReadStore struct {
	queries RoomReadQueries
	db      sqlc.DBTX
}

func NewRoomReadStore(queries RoomReadQueries, db sqlc.DBTX) *RoomReadStore {
	return &RoomReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	row, err := r.queries.FindRoomByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	return toRoomView(row), nil
}

func (r *RoomReadStore) ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*queries.RoomView, error) {
	rows, err := r.queries.ListRoomsByHotel(ctx, r.db, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}

	result := make([]*queries.RoomView, len(rows))
	for i, row := range rows {
		result[i] = toRoomView(sqlc.FindRoomByIDRow(row))
	}
	return result, nil
}

func toRoomView(row sqlc.FindRoomByIDRow) *queries.RoomView {
	return &queries.RoomView{
		ID:          row.ID,
		HotelID:     row.HotelID,
		Name:        row.Name,
		Category:    row.Category,
		Number:      int(row.Number),
		Price:       row.Price,
		Capacity:    int(row.Capacity),
		BookedDates: pgconv.DatesFromPgtype(row.BookedDates),
	}
}

package repository

import (
	"context"

	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/repository/converter"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RoomWriteQueries interface {
	CreateRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRoomParams) error
	LockRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.LockRoomByIDRow, error)
	UpdateRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRoomParams) error
	UpdateRoomBookedDates(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRoomBookedDatesParams) error
	DeleteRoom(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type RoomRepository struct {
	queries RoomWriteQueries
	db      sqlc.DBTX
}

func NewRoomRepository(queries RoomWriteQueries, db sqlc.DBTX) *RoomRepository {
	return &RoomRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RoomRepository) Create(ctx context.Context, rm *room.Room) error {
	if err := r.queries.CreateRoom(ctx, r.db, converter.RoomToCreateParams(rm)); err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to create room", err)
	}
	return nil
}

// LockByID selects the room FOR UPDATE. Concurrent bookings of the same room
// queue here until the holder commits or rolls back.
func (r *RoomRepository) LockByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	row, err := r.queries.LockRoomByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock room", err)
	}
	return converter.RoomFromLockRow(row), nil
}

func (r *RoomRepository) Update(ctx context.Context, rm *room.Room) error {
	if err := r.queries.UpdateRoom(ctx, r.db, converter.RoomToUpdateParams(rm)); err != nil {
		return infra.WrapRepoErr("failed to update room", err)
	}
	return nil
}

func (r *RoomRepository) SaveBookedDates(ctx context.Context, rm *room.Room) error {
	params := sqlc.UpdateRoomBookedDatesParams{
		ID:          rm.ID(),
		BookedDates: pgconv.DatesToPgtype(rm.BookedDates().Sorted()),
	}
	if err := r.queries.UpdateRoomBookedDates(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to save booked dates", err)
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteRoom(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete room", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

package repository

import (
	"context"

	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/repository/converter"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type HotelWriteQueries interface {
	CreateHotel(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateHotelParams) error
	LockHotelByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Hotels, error)
	UpdateHotel(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateHotelParams) error
	UpdateHotelRating(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateHotelRatingParams) error
	DeleteHotel(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type HotelRepository struct {
	queries HotelWriteQueries
	db      sqlc.DBTX
}

func NewHotelRepository(queries HotelWriteQueries, db sqlc.DBTX) *HotelRepository {
	return &HotelRepository{
		queries: queries,
		db:      db,
	}
}

func (r *HotelRepository) Create(ctx context.Context, h *hotel.Hotel) error {
	if err := r.queries.CreateHotel(ctx, r.db, converter.HotelToCreateParams(h)); err != nil {
		return infra.WrapRepoErr("failed to create hotel", err)
	}
	return nil
}

func (r *HotelRepository) LockByID(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error) {
	row, err := r.queries.LockHotelByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock hotel", err)
	}
	return converter.HotelFromRow(row), nil
}

func (r *HotelRepository) Update(ctx context.Context, h *hotel.Hotel) error {
	if err := r.queries.UpdateHotel(ctx, r.db, converter.HotelToUpdateParams(h)); err != nil {
		return infra.WrapRepoErr("failed to update hotel", err)
	}
	return nil
}

func (r *HotelRepository) UpdateRating(ctx context.Context, h *hotel.Hotel) error {
	params := sqlc.UpdateHotelRatingParams{
		ID:              h.ID(),
		Rating:          h.Rating(),
		NumberOfRatings: int32(h.NumberOfRatings()),
	}
	if err := r.queries.UpdateHotelRating(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to update hotel rating", err)
	}
	return nil
}

func (r *HotelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteHotel(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete hotel", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("hotel not found", nil, infra.KindNotFound)
	}
	return nil
}

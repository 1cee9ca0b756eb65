package readstore

import (
	"context"

	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type HotelReadQueries interface {
	FindHotelByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Hotels, error)
	ListHotels(ctx context.Context, db sqlc.DBTX, arg sqlc.ListHotelsParams) ([]sqlc.Hotels, error)
}

type HotelReadStore struct {
	queries HotelReadQueries
	db      sqlc.DBTX
}

func NewHotelReadStore(queries HotelReadQueries, db sqlc.DBTX) *HotelReadStore {
	return &HotelReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *HotelReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.HotelView, error) {
	row, err := r.queries.FindHotelByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find hotel by ID", err)
	}
	return toHotelView(row), nil
}

func (r *HotelReadStore) List(ctx context.Context, filter queries.HotelFilter) ([]*queries.HotelView, error) {
	params := sqlc.ListHotelsParams{
		Limit:  int32(filter.Limit),
		Offset: int32(filter.Offset),
	}
	if filter.City != "" {
		params.City = pgtype.Text{String: filter.City, Valid: true}
	}

	rows, err := r.queries.ListHotels(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hotels", err)
	}

	result := make([]*queries.HotelView, len(rows))
	for i, row := range rows {
		result[i] = toHotelView(row)
	}
	return result, nil
}

func toHotelView(row sqlc.Hotels) *queries.HotelView {
	return &queries.HotelView{
		ID:               row.ID,
		Name:             row.Name,
		Headline:         row.Headline,
		City:             row.City,
		Address:          row.Address,
		DistanceToCenter: row.DistanceToCenter,
		Rating:           row.Rating,
		NumberOfRatings:  int(row.NumberOfRatings),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

package queries

import (
	"context"

	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=stats.go -destination=../../../tests/mock/queries/mock_stats.go -package=queries

type StatsQueries interface {
	UserStats(ctx context.Context, actor shared.Actor, userID uuid.UUID) (*UserStats, error)
	HotelStats(ctx context.Context, hotelID uuid.UUID) (*HotelStats, error)
}

// StatsReader is backed by the document store the projector writes to. A
// subject with no recorded activity yields zeroed stats, not an error.
type StatsReader interface {
	UserStats(ctx context.Context, userID uuid.UUID) (*UserStats, error)
	HotelStats(ctx context.Context, hotelID uuid.UUID) (*HotelStats, error)
}

type statsQueriesImpl struct {
	reader StatsReader
	hotels HotelReadStore
}

func NewStatsQueries(reader StatsReader, hotels HotelReadStore) StatsQueries {
	return &statsQueriesImpl{reader: reader, hotels: hotels}
}

func (q *statsQueriesImpl) UserStats(ctx context.Context, actor shared.Actor, userID uuid.UUID) (*UserStats, error) {
	if !actor.CanAccess(userID) {
		return nil, errs.Wrap(errs.ErrAccessDenied, "stats belong to another user")
	}
	return q.reader.UserStats(ctx, userID)
}

func (q *statsQueriesImpl) HotelStats(ctx context.Context, hotelID uuid.UUID) (*HotelStats, error) {
	if _, err := q.hotels.FindByID(ctx, hotelID); err != nil {
		return nil, err
	}
	return q.reader.HotelStats(ctx, hotelID)
}

// NopStatsReader serves zeroed stats when no document store is configured.
type NopStatsReader struct{}

func (NopStatsReader) UserStats(_ context.Context, userID uuid.UUID) (*UserStats, error) {
	return &UserStats{UserID: userID}, nil
}

func (NopStatsReader) HotelStats(_ context.Context, hotelID uuid.UUID) (*HotelStats, error) {
	return &HotelStats{HotelID: hotelID}, nil
}

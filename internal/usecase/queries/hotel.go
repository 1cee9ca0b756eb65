package queries

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=hotel.go -destination=../../../tests/mock/queries/mock_hotel.go -package=queries

type HotelQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*HotelView, error)
	List(ctx context.Context, filter HotelFilter) ([]*HotelView, error)
}

type HotelReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*HotelView, error)
	List(ctx context.Context, filter HotelFilter) ([]*HotelView, error)
}

// HotelViewCache is a read-through cache in front of the hotel store.
// A miss or a cache failure both report ok == false.
type HotelViewCache interface {
	Get(ctx context.Context, id uuid.UUID) (view *HotelView, ok bool)
	Set(ctx context.Context, view *HotelView)
}

type hotelQueriesImpl struct {
	store HotelReadStore
	cache HotelViewCache
}

func NewHotelQueries(store HotelReadStore, cache HotelViewCache) HotelQueries {
	return &hotelQueriesImpl{store: store, cache: cache}
}

func (q *hotelQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*HotelView, error) {
	if view, ok := q.cache.Get(ctx, id); ok {
		return view, nil
	}

	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	q.cache.Set(ctx, view)
	return view, nil
}

func (q *hotelQueriesImpl) List(ctx context.Context, filter HotelFilter) ([]*HotelView, error) {
	filter.Limit = ValidateLimit(filter.Limit)
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return q.store.List(ctx, filter)
}

type NopHotelViewCache struct{}

func (NopHotelViewCache) Get(context.Context, uuid.UUID) (*HotelView, bool) { return nil, false }
func (NopHotelViewCache) Set(context.Context, *HotelView)                   {}

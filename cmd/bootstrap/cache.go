package bootstrap

import (
	"context"
	"log/slog"

	"hotel-booking/internal/infra/cache"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewHotelCaches,
	),
)

type HotelCaches struct {
	fx.Out

	Views       queries.HotelViewCache
	Invalidator shared.HotelCacheInvalidator
}

// NewHotelCaches falls back to no-op caches when Redis is disabled, so the
// read path always goes to Postgres.
func NewHotelCaches(lc fx.Lifecycle, cfg config.Config) (HotelCaches, error) {
	if !cfg.Redis.Enabled {
		slog.Info("redis disabled, hotel cache off")
		return HotelCaches{
			Views:       queries.NopHotelViewCache{},
			Invalidator: shared.NopHotelCache{},
		}, nil
	}

	client, err := cache.NewClient(context.Background(), cfg.Redis)
	if err != nil {
		return HotelCaches{}, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	hotelCache := cache.NewHotelCache(client, cfg.Redis)
	return HotelCaches{Views: hotelCache, Invalidator: hotelCache}, nil
}

package bootstrap

import (
	"context"
	"errors"
	"log/slog"

	"hotel-booking/internal/infra/messaging/kafka"
	"hotel-booking/internal/infra/stats"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var StatsModule = fx.Module("stats",
	fx.Provide(
		NewStatsStore,
		NewStatsReader,
	),
	fx.Invoke(startProjector),
)

// NewStatsStore returns nil when MongoDB is disabled.
func NewStatsStore(lc fx.Lifecycle, cfg config.Config) (*stats.MongoStore, error) {
	if !cfg.Mongo.Enabled {
		return nil, nil
	}

	client, err := stats.Connect(context.Background(), cfg.Mongo)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	})

	return stats.NewMongoStore(client.Database(cfg.Mongo.Database)), nil
}

func NewStatsReader(store *stats.MongoStore) queries.StatsReader {
	if store == nil {
		return queries.NopStatsReader{}
	}
	return store
}

// startProjector consumes the event topic into the stats store. It needs
// both Kafka and MongoDB; otherwise the stats endpoints serve zeroes.
func startProjector(lc fx.Lifecycle, cfg config.Config, store *stats.MongoStore) error {
	if store == nil || !cfg.Kafka.Enabled {
		slog.Info("stats projector disabled", "mongo", cfg.Mongo.Enabled, "kafka", cfg.Kafka.Enabled)
		return nil
	}

	projector := stats.NewProjector(store)
	consumer, err := kafka.NewConsumer(cfg.Kafka, projector.HandleMessage)
	if err != nil {
		return err
	}

	// Hooks stop in reverse order: the loop exits before the reader closes.
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return consumer.Close()
		},
	})
	runInBackground(lc, func(ctx context.Context) {
		if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("stats consumer stopped", "error", err.Error())
		}
	})
	return nil
}

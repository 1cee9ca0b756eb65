package bootstrap

import (
	"context"
	"sync"

	"hotel-booking/internal/infra/messaging/amqp"
	"hotel-booking/internal/infra/messaging/kafka"
	"hotel-booking/internal/infra/outbox"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewSinks,
		NewRelay,
	),
	fx.Invoke(startRelay),
)

// NewSinks opens one sink per enabled transport. With none enabled the relay
// leaves outbox rows pending.
func NewSinks(lc fx.Lifecycle, cfg config.Config) ([]outbox.Sink, error) {
	var sinks []outbox.Sink

	if cfg.Kafka.Enabled {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return producer.Close()
			},
		})
		sinks = append(sinks, producer)
	}

	if cfg.AMQP.Enabled {
		publisher, err := amqp.NewPublisher(cfg.AMQP)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return publisher.Close()
			},
		})
		sinks = append(sinks, publisher)
	}

	return sinks, nil
}

func NewRelay(uow shared.UnitOfWork, q *sqlc.Queries, sinks []outbox.Sink, cfg config.Config, clk clock.Clock) *outbox.Relay {
	return outbox.NewRelay(uow, q, sinks, cfg.Outbox, clk)
}

func startRelay(lc fx.Lifecycle, relay *outbox.Relay) {
	runInBackground(lc, func(ctx context.Context) {
		relay.Run(ctx)
	})
}

// runInBackground ties a long-running loop to the app lifecycle: it starts
// with the app and OnStop waits for it to return.
func runInBackground(lc fx.Lifecycle, run func(ctx context.Context)) {
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			wg.Add(1)
			go func() {
				defer wg.Done()
				run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			done := make(chan struct{})
			go func() {
				wg.Wait()
				close(done)
			}()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}

package outbox

import (
	"context"
	"log/slog"
	"time"

	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/shared"
)

// Sink is one external transport fed by the relay.
type Sink interface {
	Name() string
	Accepts(t shared.EventType) bool
	Publish(ctx context.Context, e shared.Event) error
}

type RelayQueries interface {
	ClaimOutboxEvents(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimOutboxEventsParams) ([]sqlc.OutboxEvents, error)
	MarkOutboxEventPublished(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOutboxEventPublishedParams) error
	MarkOutboxEventFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOutboxEventFailedParams) error
}

// Relay moves committed outbox rows to the sinks. Delivery is at least once:
// a row is marked published only after every accepting sink took it, and a
// failed row is retried on the next poll until MaxAttempts is reached.
type Relay struct {
	uow     shared.UnitOfWork
	queries RelayQueries
	sinks   []Sink
	cfg     config.OutboxConfig
	clock   clock.Clock
}

func NewRelay(uow shared.UnitOfWork, queries RelayQueries, sinks []Sink, cfg config.OutboxConfig, clk clock.Clock) *Relay {
	return &Relay{
		uow:     uow,
		queries: queries,
		sinks:   sinks,
		cfg:     cfg,
		clock:   clk,
	}
}

// Run polls until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) {
	if len(r.sinks) == 0 {
		slog.Info("outbox relay idle: no sinks configured")
		return
	}

	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := r.RelayOnce(ctx); err != nil && ctx.Err() == nil {
				slog.Warn("outbox relay batch failed", "error", err.Error())
			}
		}
	}
}

// RelayOnce claims one batch with SKIP LOCKED, so several relays never
// publish the same row concurrently. It returns how many rows were published.
func (r *Relay) RelayOnce(ctx context.Context) (int, error) {
	published := 0
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		published = 0
		rows, err := r.queries.ClaimOutboxEvents(ctx, tx.DB(), sqlc.ClaimOutboxEventsParams{
			MaxAttempts: r.cfg.MaxAttempts,
			Limit:       r.cfg.BatchSize,
		})
		if err != nil {
			return err
		}

		for _, row := range rows {
			event := toEvent(row)
			if pubErr := r.publish(ctx, event); pubErr != nil {
				slog.Warn("outbox event not delivered",
					"event_id", event.ID,
					"event_type", event.Type,
					"attempt", row.Attempts+1,
					"error", pubErr.Error())
				if err := r.queries.MarkOutboxEventFailed(ctx, tx.DB(), sqlc.MarkOutboxEventFailedParams{
					ID:        row.ID,
					LastError: pgconv.StringToPgtype(pubErr.Error()),
				}); err != nil {
					return err
				}
				continue
			}

			if err := r.queries.MarkOutboxEventPublished(ctx, tx.DB(), sqlc.MarkOutboxEventPublishedParams{
				ID:          row.ID,
				PublishedAt: pgconv.TimeToPgtype(r.clock.Now()),
			}); err != nil {
				return err
			}
			published++
		}
		return nil
	})
	return published, err
}

func (r *Relay) publish(ctx context.Context, e shared.Event) error {
	for _, sink := range r.sinks {
		if !sink.Accepts(e.Type) {
			continue
		}
		if err := sink.Publish(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func toEvent(row sqlc.OutboxEvents) shared.Event {
	return shared.Event{
		ID:          row.ID,
		Type:        shared.EventType(row.EventType),
		AggregateID: row.AggregateID,
		Payload:     row.Payload,
		OccurredAt:  row.CreatedAt.Time,
	}
}

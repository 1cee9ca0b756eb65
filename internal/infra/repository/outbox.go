package repository

import (
	"context"

	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/shared"
)

type OutboxWriteQueries interface {
	InsertOutboxEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertOutboxEventParams) error
}

type OutboxRepository struct {
	queries OutboxWriteQueries
	db      sqlc.DBTX
}

func NewOutboxRepository(queries OutboxWriteQueries, db sqlc.DBTX) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OutboxRepository) Append(ctx context.Context, e shared.Event) error {
	params := sqlc.InsertOutboxEventParams{
		ID:          e.ID,
		EventType:   string(e.Type),
		AggregateID: e.AggregateID,
		Payload:     e.Payload,
		CreatedAt:   pgconv.TimeToPgtype(e.OccurredAt),
	}
	if err := r.queries.InsertOutboxEvent(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to append outbox event", err)
	}
	return nil
}

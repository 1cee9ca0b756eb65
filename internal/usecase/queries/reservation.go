package queries

import (
	"context"
	"time"

	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/mock_reservation.go -package=queries

type ReservationQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, after *Cursor, limit int) ([]*ReservationView, *Cursor, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByUserIDFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*ReservationView, error)
	FindByUserIDKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReservationView, error)
	ListForReport(ctx context.Context) ([]*ReservationReportRow, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

// GetByID denies access to reservations the actor neither owns nor administers.
func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(view.UserID) {
		return nil, errs.Wrap(errs.ErrAccessDenied, "reservation belongs to another user")
	}
	return view, nil
}

// ListByUser pages newest first. The next cursor is nil on the last page.
func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, after *Cursor, limit int) ([]*ReservationView, *Cursor, error) {
	limit = ValidateLimit(limit)
	// one extra row tells whether another page exists
	fetch := int32(limit + 1) // #nosec G115 -- limit is capped by ValidateLimit

	var (
		rows []*ReservationView
		err  error
	)
	if after == nil || after.After == "" {
		rows, err = q.store.FindByUserIDFirstPage(ctx, userID, fetch)
	} else {
		createdAt, lastID, decodeErr := DecodeAfterCursor(after.After)
		if decodeErr != nil {
			return nil, nil, decodeErr
		}
		rows, err = q.store.FindByUserIDKeyset(ctx, userID, createdAt, lastID, fetch)
	}
	if err != nil {
		return nil, nil, err
	}

	if len(rows) <= limit {
		return rows, nil, nil
	}
	rows = rows[:limit]
	last := rows[len(rows)-1]
	return rows, &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}, nil
}

package readstore

import (
	"context"
	"time"

	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/readstore/mock_reservation.go -package=readstore

type ReservationReadQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationByIDRow, error)
	GetReservationsByUserIDFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.GetReservationsByUserIDFirstPageParams) ([]sqlc.GetReservationsByUserIDFirstPageRow, error)
	GetReservationsByUserIDKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.GetReservationsByUserIDKeysetParams) ([]sqlc.GetReservationsByUserIDKeysetRow, error)
	ListReservationsForReport(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListReservationsForReportRow, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationReadQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return toReservationView(sqlc.GetReservationsByUserIDFirstPageRow(row)), nil
}

func (r *ReservationReadStore) FindByUserIDFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.ReservationView, error) {
	params := sqlc.GetReservationsByUserIDFirstPageParams{
		UserID: userID,
		Limit:  limit,
	}

	rows, err := r.queries.GetReservationsByUserIDFirstPage(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations first page", err)
	}

	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = toReservationView(row)
	}
	return result, nil
}

func (r *ReservationReadStore) FindByUserIDKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReservationView, error) {
	params := sqlc.GetReservationsByUserIDKeysetParams{
		UserID:     userID,
		CreatedAt:  pgconv.TimeToPgtype(lastCreatedAt),
		ID:         lastID,
		LimitCount: limit,
	}

	rows, err := r.queries.GetReservationsByUserIDKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations keyset", err)
	}

	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = toReservationView(sqlc.GetReservationsByUserIDFirstPageRow(row))
	}
	return result, nil
}

func (r *ReservationReadStore) ListForReport(ctx context.Context) ([]*queries.ReservationReportRow, error) {
	rows, err := r.queries.ListReservationsForReport(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations for report", err)
	}

	result := make([]*queries.ReservationReportRow, len(rows))
	for i, row := range rows {
		result[i] = &queries.ReservationReportRow{
			ID:        row.ID,
			HotelName: row.HotelName,
			RoomName:  row.RoomName,
			Username:  row.Username,
			CheckIn:   pgconv.DateFromPgtype(row.CheckIn),
			CheckOut:  pgconv.DateFromPgtype(row.CheckOut),
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

// The three reservation view rows share one column list, so they convert
// into each other.
func toReservationView(row sqlc.GetReservationsByUserIDFirstPageRow) *queries.ReservationView {
	return &queries.ReservationView{
		ID:        row.ID,
		RoomID:    row.RoomID,
		RoomName:  row.RoomName,
		HotelID:   row.HotelID,
		UserID:    row.UserID,
		Username:  row.Username,
		CheckIn:   pgconv.DateFromPgtype(row.CheckIn),
		CheckOut:  pgconv.DateFromPgtype(row.CheckOut),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

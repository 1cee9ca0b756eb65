//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-booking/internal/domain/calendar"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/readstore"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/pgconv"
	readstoremock "hotel-booking/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

// =============================================================================
// FindByID Tests
// =============================================================================

func TestReservationReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	checkIn := calendar.NewDate(2025, time.August, 10)
	checkOut := calendar.NewDate(2025, time.August, 12)

	testCases := []struct {
		name       string
		setupMock  func(*readstoremock.MockReservationReadQueries)
		expectKind infra.RepositoryErrorKind
		errIs      error
	}{
		{
			name: "success: reservation found",
			setupMock: func(m *readstoremock.MockReservationReadQueries) {
				m.EXPECT().GetReservationByID(ctx, gomock.Any(), id).Return(sqlc.GetReservationByIDRow{
					ID:        id,
					RoomName:  "Sea View 101",
					Username:  "guest.user",
					CheckIn:   pgconv.DateToPgtype(checkIn),
					CheckOut:  pgconv.DateToPgtype(checkOut),
					CreatedAt: pgtype.Timestamptz{Time: time.Now(), Valid: true},
					UpdatedAt: pgtype.Timestamptz{Time: time.Now(), Valid: true},
				}, nil)
			},
		},
		{
			name: "error: reservation not found",
			setupMock: func(m *readstoremock.MockReservationReadQueries) {
				m.EXPECT().GetReservationByID(ctx, gomock.Any(), id).Return(sqlc.GetReservationByIDRow{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
			errIs:      errs.ErrNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(m *readstoremock.MockReservationReadQueries) {
				m.EXPECT().GetReservationByID(ctx, gomock.Any(), id).Return(sqlc.GetReservationByIDRow{}, errDBConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := readstoremock.NewMockReservationReadQueries(ctrl)
			tc.setupMock(m)

			view, err := readstore.NewReservationReadStore(m, nil).FindByID(ctx, id)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, checkIn, view.CheckIn)
			assert.Equal(t, checkOut, view.CheckOut)
			assert.Equal(t, "Sea View 101", view.RoomName)
		})
	}
}

// =============================================================================
// Paging Tests
// =============================================================================

func TestReservationReadStore_FindByUserIDKeyset(t *testing.T) {
	ctx := context.Background()
	userID, lastID := uuid.New(), uuid.New()
	lastCreatedAt := time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	m := readstoremock.NewMockReservationReadQueries(ctrl)
	m.EXPECT().GetReservationsByUserIDKeyset(ctx, gomock.Any(), sqlc.GetReservationsByUserIDKeysetParams{
		UserID:     userID,
		CreatedAt:  pgconv.TimeToPgtype(lastCreatedAt),
		ID:         lastID,
		LimitCount: 21,
	}).Return([]sqlc.GetReservationsByUserIDKeysetRow{{ID: uuid.New(), UserID: userID}, {ID: uuid.New(), UserID: userID}}, nil)

	views, err := readstore.NewReservationReadStore(m, nil).FindByUserIDKeyset(ctx, userID, lastCreatedAt, lastID, 21)
	require.NoError(t, err)
	assert.Len(t, views, 2)
	assert.Equal(t, userID, views[0].UserID)
}

func TestReservationReadStore_ListForReport(t *testing.T) {
	ctx := context.Background()

	t.Run("success: rows convert to report rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := readstoremock.NewMockReservationReadQueries(ctrl)
		m.EXPECT().ListReservationsForReport(ctx, gomock.Any()).Return([]sqlc.ListReservationsForReportRow{{
			ID:        uuid.New(),
			HotelName: "Harbor Inn",
			RoomName:  "Sea View 101",
			Username:  "guest.user",
			CheckIn:   pgconv.DateToPgtype(calendar.NewDate(2025, time.August, 10)),
			CheckOut:  pgconv.DateToPgtype(calendar.NewDate(2025, time.August, 10)),
		}}, nil)

		rows, err := readstore.NewReservationReadStore(m, nil).ListForReport(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Harbor Inn", rows[0].HotelName)
		assert.Equal(t, rows[0].CheckIn, rows[0].CheckOut)
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := readstoremock.NewMockReservationReadQueries(ctrl)
		m.EXPECT().ListReservationsForReport(ctx, gomock.Any()).Return(nil, errDBConnectionLost)

		_, err := readstore.NewReservationReadStore(m, nil).ListForReport(ctx)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

//go:build unit

package stats_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"hotel-booking/internal/infra/messaging/kafka"
	"hotel-booking/internal/infra/stats"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCounters struct {
	processed map[uuid.UUID]bool
	users     map[uuid.UUID]stats.Delta
	hotels    map[uuid.UUID]stats.Delta
}

func newMemCounters() *memCounters {
	return &memCounters{
		processed: map[uuid.UUID]bool{},
		users:     map[uuid.UUID]stats.Delta{},
		hotels:    map[uuid.UUID]stats.Delta{},
	}
}

func (m *memCounters) MarkProcessed(_ context.Context, eventID uuid.UUID, _ time.Time) (bool, error) {
	if m.processed[eventID] {
		return false, nil
	}
	m.processed[eventID] = true
	return true, nil
}

func (m *memCounters) IncUser(_ context.Context, userID uuid.UUID, d stats.Delta, _ time.Time) error {
	m.users[userID] = add(m.users[userID], d)
	return nil
}

func (m *memCounters) IncHotel(_ context.Context, hotelID uuid.UUID, d stats.Delta, _ time.Time) error {
	m.hotels[hotelID] = add(m.hotels[hotelID], d)
	return nil
}

func add(a, b stats.Delta) stats.Delta {
	return stats.Delta{
		Reservations:  a.Reservations + b.Reservations,
		Cancellations: a.Cancellations + b.Cancellations,
		BookedDays:    a.BookedDays + b.BookedDays,
		Ratings:       a.Ratings + b.Ratings,
		RatingSum:     a.RatingSum + b.RatingSum,
	}
}

func event(t *testing.T, typ shared.EventType, payload any) shared.Event {
	t.Helper()
	e, err := shared.NewEvent(typ, uuid.New(), payload, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return e
}

func TestProjector_Apply(t *testing.T) {
	ctx := context.Background()
	userID, hotelID := uuid.New(), uuid.New()
	reservation := func(days, previous int) shared.ReservationPayload {
		return shared.ReservationPayload{UserID: userID, HotelID: hotelID, Days: days, PreviousDays: previous}
	}

	t.Run("予約のライフサイクルを集計する", func(t *testing.T) {
		store := newMemCounters()
		p := stats.NewProjector(store)

		require.NoError(t, p.Apply(ctx, event(t, shared.EventReservationCreated, reservation(3, 0))))
		require.NoError(t, p.Apply(ctx, event(t, shared.EventReservationUpdated, reservation(5, 3))))
		require.NoError(t, p.Apply(ctx, event(t, shared.EventReservationCreated, reservation(2, 0))))
		require.NoError(t, p.Apply(ctx, event(t, shared.EventReservationCancelled, reservation(2, 0))))

		want := stats.Delta{Reservations: 2, Cancellations: 1, BookedDays: 5}
		assert.Equal(t, want, store.users[userID])
		assert.Equal(t, want, store.hotels[hotelID])
	})

	t.Run("評価はホテルに合計値を加算する", func(t *testing.T) {
		store := newMemCounters()
		p := stats.NewProjector(store)

		require.NoError(t, p.Apply(ctx, event(t, shared.EventHotelRated, shared.HotelRatedPayload{UserID: userID, HotelID: hotelID, Value: 4})))
		require.NoError(t, p.Apply(ctx, event(t, shared.EventHotelRated, shared.HotelRatedPayload{UserID: userID, HotelID: hotelID, Value: 2})))

		assert.Equal(t, stats.Delta{Ratings: 2}, store.users[userID])
		assert.Equal(t, stats.Delta{Ratings: 2, RatingSum: 6}, store.hotels[hotelID])
	})

	t.Run("再配信されたイベントは二重に数えない", func(t *testing.T) {
		store := newMemCounters()
		p := stats.NewProjector(store)
		e := event(t, shared.EventReservationCreated, reservation(4, 0))

		require.NoError(t, p.Apply(ctx, e))
		require.NoError(t, p.Apply(ctx, e))

		assert.Equal(t, int64(1), store.users[userID].Reservations)
		assert.Equal(t, int64(4), store.hotels[hotelID].BookedDays)
	})

	t.Run("未知のイベントは無視する", func(t *testing.T) {
		store := newMemCounters()
		p := stats.NewProjector(store)

		require.NoError(t, p.Apply(ctx, shared.Event{ID: uuid.New(), Type: "hotel.renamed", Payload: []byte(`{}`)}))
		assert.Empty(t, store.processed)
	})

	t.Run("壊れたペイロードはエラー", func(t *testing.T) {
		p := stats.NewProjector(newMemCounters())
		err := p.Apply(ctx, shared.Event{ID: uuid.New(), Type: shared.EventReservationCreated, Payload: []byte(`{`)})
		assert.Error(t, err)
	})
}

func TestProjector_HandleMessage(t *testing.T) {
	store := newMemCounters()
	p := stats.NewProjector(store)
	userID := uuid.New()

	e := event(t, shared.EventReservationCreated, shared.ReservationPayload{UserID: userID, HotelID: uuid.New(), Days: 2})
	raw, err := json.Marshal(e.Envelope())
	require.NoError(t, err)

	require.NoError(t, p.HandleMessage(context.Background(), kafka.Message{Key: e.AggregateID.String(), Value: raw}))
	assert.Equal(t, int64(2), store.users[userID].BookedDays)

	assert.Error(t, p.HandleMessage(context.Background(), kafka.Message{Value: []byte(`{"payload":{}}`)}))
}

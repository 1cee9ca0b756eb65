//go:build e2e

package stats_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"hotel-booking/internal/infra/stats"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startMongo(t *testing.T) config.MongoConfig {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForListeningPort("27017/tcp"),
		},
		Started: true,
	})
	require.NoError(t, err, "MongoDBコンテナの起動に失敗")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)
	return config.MongoConfig{Enabled: true, URI: fmt.Sprintf("mongodb://%s", endpoint), Database: "stats_test"}
}

func TestMongoStore_ProjectsEvents(t *testing.T) {
	cfg := startMongo(t)
	ctx := context.Background()

	client, err := stats.Connect(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	store := stats.NewMongoStore(client.Database(cfg.Database))
	projector := stats.NewProjector(store)

	userID, hotelID := uuid.New(), uuid.New()
	at := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)
	created, err := shared.NewEvent(shared.EventReservationCreated, uuid.New(),
		shared.ReservationPayload{UserID: userID, HotelID: hotelID, Days: 3}, at)
	require.NoError(t, err)
	rated, err := shared.NewEvent(shared.EventHotelRated, hotelID,
		shared.HotelRatedPayload{UserID: userID, HotelID: hotelID, Value: 4}, at.Add(time.Hour))
	require.NoError(t, err)

	require.NoError(t, projector.Apply(ctx, created))
	require.NoError(t, projector.Apply(ctx, created), "redelivery must be skipped")
	require.NoError(t, projector.Apply(ctx, rated))

	userStats, err := store.UserStats(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), userStats.Reservations)
	assert.Equal(t, int64(3), userStats.BookedDays)
	assert.Equal(t, int64(1), userStats.RatingsSubmitted)
	require.NotNil(t, userStats.LastActivityAt)
	assert.True(t, userStats.LastActivityAt.Equal(at.Add(time.Hour)))

	hotelStats, err := store.HotelStats(ctx, hotelID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), hotelStats.Ratings)
	assert.Equal(t, int64(4), hotelStats.RatingSum)

	empty, err := store.HotelStats(ctx, uuid.New())
	require.NoError(t, err)
	assert.Zero(t, empty.Reservations, "unknown subject yields zeroed stats")
}

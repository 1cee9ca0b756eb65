//go:build e2e

package cache_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/infra/cache"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) config.RedisConfig {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp"),
		},
		Started: true,
	})
	require.NoError(t, err, "Redisコンテナの起動に失敗")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)
	return config.RedisConfig{Enabled: true, Addr: endpoint, TTL: time.Minute, Prefix: "test"}
}

func TestHotelCache(t *testing.T) {
	cfg := startRedis(t)
	ctx := context.Background()

	client, err := cache.NewClient(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	c := cache.NewHotelCache(client, cfg)

	view := builder.NewHotelBuilder().WithRating(4.5, 2).BuildView()

	_, ok := c.Get(ctx, view.ID)
	assert.False(t, ok, "empty cache must miss")

	c.Set(ctx, view)
	got, ok := c.Get(ctx, view.ID)
	require.True(t, ok)
	assert.Equal(t, view.Name, got.Name)
	assert.InDelta(t, 4.5, got.Rating, 1e-9)

	ttl, err := client.TTL(ctx, "test:hotel:"+view.ID.String()).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	c.Invalidate(ctx, view.ID)
	_, ok = c.Get(ctx, view.ID)
	assert.False(t, ok, "invalidated entry must miss")

	require.NoError(t, client.Set(ctx, "test:hotel:"+view.ID.String(), "{broken", time.Minute).Err())
	_, ok = c.Get(ctx, view.ID)
	assert.False(t, ok, "unreadable entry must miss")
	exists, err := client.Exists(ctx, "test:hotel:"+view.ID.String()).Result()
	require.NoError(t, err)
	assert.Zero(t, exists, "unreadable entry must be dropped")
}

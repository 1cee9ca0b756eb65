package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// HotelCache keeps hotel views in Redis. Every failure degrades to a miss:
// the relational store stays the source of truth.
type HotelCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

func NewHotelCache(client *redis.Client, cfg config.RedisConfig) *HotelCache {
	return &HotelCache{
		client: client,
		ttl:    cfg.TTL,
		prefix: cfg.Prefix,
	}
}

func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func (c *HotelCache) key(id uuid.UUID) string {
	return c.prefix + ":hotel:" + id.String()
}

func (c *HotelCache) Get(ctx context.Context, id uuid.UUID) (*queries.HotelView, bool) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("hotel cache read failed", "hotel_id", id, "error", err.Error())
		}
		return nil, false
	}

	var view queries.HotelView
	if err := json.Unmarshal(raw, &view); err != nil {
		slog.Warn("hotel cache entry unreadable", "hotel_id", id, "error", err.Error())
		c.Invalidate(ctx, id)
		return nil, false
	}
	return &view, true
}

func (c *HotelCache) Set(ctx context.Context, view *queries.HotelView) {
	raw, err := json.Marshal(view)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.key(view.ID), raw, c.ttl).Err(); err != nil {
		slog.Warn("hotel cache write failed", "hotel_id", view.ID, "error", err.Error())
	}
}

func (c *HotelCache) Invalidate(ctx context.Context, id uuid.UUID) {
	if err := c.client.Del(ctx, c.key(id)).Err(); err != nil {
		slog.Warn("hotel cache invalidation failed", "hotel_id", id, "error", err.Error())
	}
}

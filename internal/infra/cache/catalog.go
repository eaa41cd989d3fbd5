package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"aqualux-api/internal/pkg/config"
	"aqualux-api/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const catalogKey = "catalog:services"

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

// RedisCatalogCache caches the service list. Any redis failure is treated
// as a miss so the database remains the source of truth.
type RedisCatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCatalogCache(client *redis.Client, ttl time.Duration) *RedisCatalogCache {
	return &RedisCatalogCache{client: client, ttl: ttl}
}

func (c *RedisCatalogCache) GetServices(ctx context.Context) ([]*queries.ServiceView, bool) {
	val, err := c.client.Get(ctx, catalogKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		slog.Warn("catalog cache read failed", "error", err.Error())
		return nil, false
	}

	var services []*queries.ServiceView
	if err := json.Unmarshal([]byte(val), &services); err != nil {
		slog.Warn("catalog cache entry corrupt, dropping", "error", err.Error())
		_ = c.client.Del(ctx, catalogKey).Err()
		return nil, false
	}

	return services, true
}

func (c *RedisCatalogCache) SetServices(ctx context.Context, services []*queries.ServiceView) {
	data, err := json.Marshal(services)
	if err != nil {
		slog.Warn("failed to marshal catalog for cache", "error", err.Error())
		return
	}

	if err := c.client.Set(ctx, catalogKey, data, c.ttl).Err(); err != nil {
		slog.Warn("catalog cache write failed", "error", err.Error())
	}
}

// NopCatalogCache is used when redis is disabled.
type NopCatalogCache struct{}

func NewNopCatalogCache() *NopCatalogCache {
	return &NopCatalogCache{}
}

func (NopCatalogCache) GetServices(context.Context) ([]*queries.ServiceView, bool) { return nil, false }

func (NopCatalogCache) SetServices(context.Context, []*queries.ServiceView) {}

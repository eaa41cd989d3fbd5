package bootstrap

import (
	"context"
	"log/slog"

	"aqualux-api/internal/infra/cache"
	"aqualux-api/internal/pkg/config"
	"aqualux-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewCatalogCache,
	),
)

// NewCatalogCache degrades to a no-op cache when redis is disabled, so the
// catalog always has a cache dependency to talk to.
func NewCatalogCache(lc fx.Lifecycle, cfg config.Config) queries.CatalogCache {
	if !cfg.Redis.Enabled {
		slog.Info("redis disabled, catalog cache is a no-op")
		return cache.NewNopCatalogCache()
	}

	client := cache.NewRedisClient(cfg.Redis)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return cache.NewRedisCatalogCache(client, cfg.Redis.CatalogTTL)
}

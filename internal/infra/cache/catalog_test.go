//go:build unit

package cache_test

import (
	"context"
	"testing"
	"time"

	"aqualux-api/internal/infra/cache"
	"aqualux-api/internal/usecase/queries"
	"aqualux-api/tests/common/builder"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogKey = "catalog:services"

func newCacheUnderTest(t *testing.T, ttl time.Duration) (*cache.RedisCatalogCache, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return cache.NewRedisCatalogCache(client, ttl), srv
}

func TestRedisCatalogCache(t *testing.T) {
	ctx := context.Background()

	t.Run("empty cache is a miss", func(t *testing.T) {
		c, _ := newCacheUnderTest(t, time.Minute)

		got, ok := c.GetServices(ctx)
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("set then get round-trips the catalog", func(t *testing.T) {
		c, _ := newCacheUnderTest(t, time.Minute)

		services := []*queries.ServiceView{
			builder.NewServiceBuilder().BuildView(),
			builder.NewServiceBuilder().WithTitle("Thermal Equilibrium").BuildView(),
		}
		c.SetServices(ctx, services)

		got, ok := c.GetServices(ctx)
		require.True(t, ok)
		require.Len(t, got, 2)
		assert.Equal(t, services[0].ID, got[0].ID)
		assert.Equal(t, "Thermal Equilibrium", got[1].Title)
	})

	t.Run("entry expires after the TTL", func(t *testing.T) {
		c, srv := newCacheUnderTest(t, time.Minute)

		c.SetServices(ctx, []*queries.ServiceView{builder.NewServiceBuilder().BuildView()})
		srv.FastForward(2 * time.Minute)

		_, ok := c.GetServices(ctx)
		assert.False(t, ok)
	})

	t.Run("corrupt entry is dropped and treated as a miss", func(t *testing.T) {
		c, srv := newCacheUnderTest(t, time.Minute)

		require.NoError(t, srv.Set(catalogKey, "{not json"))

		_, ok := c.GetServices(ctx)
		assert.False(t, ok)
		assert.False(t, srv.Exists(catalogKey))
	})

	t.Run("unreachable redis degrades to a miss", func(t *testing.T) {
		srv := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
		c := cache.NewRedisCatalogCache(client, time.Minute)
		srv.Close()

		_, ok := c.GetServices(ctx)
		assert.False(t, ok)
	})
}

func TestNopCatalogCache(t *testing.T) {
	ctx := context.Background()
	c := cache.NewNopCatalogCache()

	c.SetServices(ctx, []*queries.ServiceView{builder.NewServiceBuilder().BuildView()})

	got, ok := c.GetServices(ctx)
	assert.False(t, ok)
	assert.Nil(t, got)
}

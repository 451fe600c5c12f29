//go:build integration

package redis_test

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	rcache "github.com/Gunvolt24/catalog_site/internal/cache/redis"
	"github.com/Gunvolt24/catalog_site/internal/testutil"
	"github.com/Gunvolt24/catalog_site/pkg/logger"
)

func TestRedisCache_SetGetClear(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	env, stop, err := testutil.StartRedisTC(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stop(context.Background()) })

	client := goredis.NewClient(&goredis.Options{Addr: env.Addr})
	t.Cleanup(func() { _ = client.Close() })

	c := rcache.New(client, "", time.Minute, logger.NewNop())

	_, ok := c.Get(ctx, "home:setting")
	require.False(t, ok)

	require.NoError(t, c.Set(ctx, "home:setting", []byte(`{"title":"Site"}`), 0))
	got, ok := c.Get(ctx, "home:setting")
	require.True(t, ok)
	require.JSONEq(t, `{"title":"Site"}`, string(got))

	// ключ хранится с префиксом и TTL
	ttl, err := client.TTL(ctx, rcache.DefaultPrefix+"home:setting").Result()
	require.NoError(t, err)
	require.Greater(t, ttl, time.Duration(0))

	// чужие ключи Clear не трогает
	require.NoError(t, client.Set(ctx, "foreign:key", "x", 0).Err())
	require.NoError(t, c.Set(ctx, "faqs:faqs", []byte(`[]`), 0))

	require.NoError(t, c.Clear(ctx))
	_, ok = c.Get(ctx, "home:setting")
	require.False(t, ok)
	_, ok = c.Get(ctx, "faqs:faqs")
	require.False(t, ok)

	v, err := client.Get(ctx, "foreign:key").Result()
	require.NoError(t, err)
	require.Equal(t, "x", v)
}

func TestRedisCache_TTLExpiry(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	env, stop, err := testutil.StartRedisTC(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stop(context.Background()) })

	client := goredis.NewClient(&goredis.Options{Addr: env.Addr})
	t.Cleanup(func() { _ = client.Close() })

	c := rcache.New(client, "test:", time.Minute, logger.NewNop())
	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Second))

	require.Eventually(t, func() bool {
		_, ok := c.Get(ctx, "k")
		return !ok
	}, 5*time.Second, 100*time.Millisecond)
}

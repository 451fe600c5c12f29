package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/Gunvolt24/catalog_site/internal/ports"
	"github.com/Gunvolt24/catalog_site/pkg/metrics"
)

// DefaultPrefix — префикс ключей сайта в общем Redis.
const DefaultPrefix = "site:"

const scanBatch = 500

var _ ports.ResponseCache = (*Cache)(nil)

// Cache — общий для нескольких реплик кэш ответов поверх Redis.
// TTL выставляется через SET EX, истечение контролирует сам Redis.
type Cache struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
	log    ports.Logger
}

func New(client *goredis.Client, prefix string, ttl time.Duration, log ports.Logger) *Cache {
	if client == nil {
		panic("redis client cannot be nil")
	}
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Cache{client: client, prefix: prefix, ttl: ttl, log: log}
}

// Get — ошибки Redis деградируют до промаха: страница будет загружена из контент-API.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, goredis.Nil) && c.log != nil {
			c.log.Warnf(ctx, "redis cache get failed key=%s: %v", key, err)
		}
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	metrics.CacheOps.WithLabelValues("hit").Inc()
	return data, true
}

func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return nil
	}
	if ttl <= 0 {
		ttl = c.ttl
	}
	// ttl == 0 у go-redis — ключ без истечения
	if err := c.client.Set(ctx, c.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	metrics.CacheOps.WithLabelValues("set").Inc()
	return nil
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Clear — удаляет все ключи с префиксом сайта (SCAN + DEL пачками).
func (c *Cache) Clear(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, c.prefix+"*", scanBatch).Result()
		if err != nil {
			return fmt.Errorf("redis scan: %w", err)
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("redis del: %w", err)
			}
		}
		if next == 0 {
			break
		}
		cursor = next
	}
	metrics.CacheOps.WithLabelValues("clear").Inc()
	return nil
}

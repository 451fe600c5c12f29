// Package cache — общие помощники поверх ports.ResponseCache.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Gunvolt24/catalog_site/internal/ports"
)

// Key — ключ вида <scope>:<resource>[:<args>...]; пустые части пропускаются.
func Key(scope, resource string, args ...string) string {
	parts := make([]string, 0, 2+len(args))
	parts = append(parts, scope, resource)
	for _, a := range args {
		if a != "" {
			parts = append(parts, a)
		}
	}
	return strings.Join(parts, ":")
}

// GetOrLoad — типизированное чтение через кэш: при промахе вызывает loader
// и кладёт результат в кэш. Ошибки loader не кэшируются.
// Битое значение в кэше считается промахом.
func GetOrLoad[T any](
	ctx context.Context,
	c ports.ResponseCache,
	key string,
	ttl time.Duration,
	loader func(context.Context) (T, error),
) (T, error) {
	if c != nil {
		if raw, ok := c.Get(ctx, key); ok {
			var v T
			if err := json.Unmarshal(raw, &v); err == nil {
				return v, nil
			}
			_ = c.Delete(ctx, key)
		}
	}

	v, err := loader(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	if c != nil {
		raw, err := json.Marshal(v)
		if err != nil {
			return v, fmt.Errorf("cache encode %s: %w", key, err)
		}
		// ошибка записи в кэш не должна ронять страницу
		_ = c.Set(ctx, key, raw, ttl)
	}
	return v, nil
}

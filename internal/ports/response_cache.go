package ports

import (
	"context"
	"time"
)

// ResponseCache — кэш ответов контент-API (ключ → сериализованное значение).
// Требования к реализации: потокобезопасность; истечение TTL проверяется при чтении;
// повторный Set продлевает жизнь именно нового значения; Get/Set возвращают копии.
type ResponseCache interface {
	// Get — (value, true) при попадании, (nil, false) при промахе/истечении.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set — сохранить значение; ttl <= 0 означает TTL по умолчанию реализации.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete — удалить ключ (отсутствующий ключ — не ошибка).
	Delete(ctx context.Context, key string) error

	// Clear — безусловно очистить весь кэш.
	Clear(ctx context.Context) error
}

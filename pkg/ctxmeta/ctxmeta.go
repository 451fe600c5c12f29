// Пакет ctxmeta — нейтральный слой для работы с метаданными запроса,
// которые прокидываются через context.Context (request_id, view_id, trace_id).
// HTTP-слой, логгер и usecase зависят от небольшого общего пакета, но не друг от друга.
package ctxmeta

import "context"

type ctxKey string

const (
	// Ключи контекста (собственный тип — чтобы избежать коллизий).
	KeyRequestID ctxKey = "request_id"
	KeyViewID    ctxKey = "view_id"
)

// WithRequestID кладёт request_id в контекст (если пусто — ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return withString(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	return stringFrom(ctx, KeyRequestID)
}

// WithViewID кладёт идентификатор просмотра страницы (X-View-ID).
// Один view_id — одна открытая вкладка со своим состоянием фильтров.
func WithViewID(ctx context.Context, viewID string) context.Context {
	return withString(ctx, KeyViewID, viewID)
}

// ViewIDFromContext достаёт view_id из контекста.
func ViewIDFromContext(ctx context.Context) (string, bool) {
	return stringFrom(ctx, KeyViewID)
}

func withString(ctx context.Context, key ctxKey, v string) context.Context {
	if ctx == nil || v == "" {
		return ctx
	}
	return context.WithValue(ctx, key, v)
}

func stringFrom(ctx context.Context, key ctxKey) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(key).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

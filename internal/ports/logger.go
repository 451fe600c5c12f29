package ports

import "context"

// Logger — логгер сервиса. ctx нужен для request id и trace id в полях записи.
type Logger interface {
	Infof(ctx context.Context, format string, args ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
}

package app_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/catalog_site/config"
	"github.com/Gunvolt24/catalog_site/internal/app"
	portmocks "github.com/Gunvolt24/catalog_site/internal/ports/mocks"
)

// логгер-заглушка
type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

func TestAppRun_GracefulShutdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	consumer := portmocks.NewMockMessageConsumer(ctrl)
	consumer.EXPECT().Run(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	consumer.EXPECT().Close().Return(nil)

	a := &app.App{
		Logger:        nopLogger{},
		HTTPServer:    &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()},
		KafkaConsumer: consumer,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	require.NoError(t, a.Run(ctx))
}

// Падение консьюмера останавливает сервис и возвращается из Run.
func TestAppRun_ConsumerFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boom := errors.New("broker gone")
	consumer := portmocks.NewMockMessageConsumer(ctrl)
	consumer.EXPECT().Run(gomock.Any()).Return(boom)
	consumer.EXPECT().Close().Return(nil)

	a := &app.App{
		Logger:        nopLogger{},
		HTTPServer:    &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()},
		KafkaConsumer: consumer,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.ErrorIs(t, a.Run(ctx), boom)
}

// Kafka выключена: консьюмера нет, сервер всё равно корректно стартует и останавливается.
func TestAppRun_WithoutConsumer(t *testing.T) {
	a := &app.App{
		Logger:     nopLogger{},
		HTTPServer: &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	require.NoError(t, a.Run(ctx))
}

func loadTestConfig(t *testing.T, prefix string) config.Config {
	t.Helper()
	cfg, err := config.LoadWithPrefix(prefix)
	require.NoError(t, err)
	cfg.HTTP.GinMode = "test"
	cfg.HTTP.Addr = "127.0.0.1:0"
	return cfg
}

// Конфигурация по умолчанию: memory-кэш, без Postgres/SendGrid/Kafka.
func TestBootstrap_Defaults(t *testing.T) {
	cfg := loadTestConfig(t, "SITE_APP_TEST_DEFAULTS")

	a, cleanup, err := app.Bootstrap(context.Background(), &cfg)
	require.NoError(t, err)
	defer cleanup()

	require.NotNil(t, a.HTTPServer)
	require.Nil(t, a.KafkaConsumer)
	require.Equal(t, cfg.HTTP.Addr, a.HTTPServer.Addr)
}

func TestBootstrap_InvalidCacheBackend(t *testing.T) {
	cfg := loadTestConfig(t, "SITE_APP_TEST_BADCACHE")
	cfg.Cache.Backend = "memcached"

	_, cleanup, err := app.Bootstrap(context.Background(), &cfg)
	require.Error(t, err)
	cleanup()
}

// Недоступный Redis — fail-fast на старте.
func TestBootstrap_RedisUnavailable(t *testing.T) {
	cfg := loadTestConfig(t, "SITE_APP_TEST_REDIS")
	cfg.Cache.Backend = "redis"
	cfg.Redis.Addr = "127.0.0.1:1"

	_, cleanup, err := app.Bootstrap(context.Background(), &cfg)
	require.Error(t, err)
	cleanup()
}

// Почта включена без ключа — ошибка конфигурации приёмника.
func TestBootstrap_MailWithoutKey(t *testing.T) {
	cfg := loadTestConfig(t, "SITE_APP_TEST_MAIL")
	cfg.Mail.Enabled = true
	cfg.Mail.APIKey = ""

	_, cleanup, err := app.Bootstrap(context.Background(), &cfg)
	require.Error(t, err)
	cleanup()
}

// Kafka включена: консьюмер собирается (брокер не нужен до Run).
func TestBootstrap_KafkaEnabled(t *testing.T) {
	cfg := loadTestConfig(t, "SITE_APP_TEST_KAFKA")
	cfg.Kafka.Enabled = true

	a, cleanup, err := app.Bootstrap(context.Background(), &cfg)
	require.NoError(t, err)
	defer cleanup()
	require.NotNil(t, a.KafkaConsumer)
}

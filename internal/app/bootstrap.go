package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"

	"github.com/Gunvolt24/catalog_site/config"
	cachemem "github.com/Gunvolt24/catalog_site/internal/cache/memory"
	cacheredis "github.com/Gunvolt24/catalog_site/internal/cache/redis"
	"github.com/Gunvolt24/catalog_site/internal/content"
	"github.com/Gunvolt24/catalog_site/internal/country"
	"github.com/Gunvolt24/catalog_site/internal/enquiry"
	"github.com/Gunvolt24/catalog_site/internal/kafka"
	"github.com/Gunvolt24/catalog_site/internal/mail"
	"github.com/Gunvolt24/catalog_site/internal/ports"
	"github.com/Gunvolt24/catalog_site/internal/repo/postgres"
	"github.com/Gunvolt24/catalog_site/internal/sitemap"
	rest "github.com/Gunvolt24/catalog_site/internal/transport/http"
	"github.com/Gunvolt24/catalog_site/internal/usecase"
	"github.com/Gunvolt24/catalog_site/pkg/logger"
	"github.com/Gunvolt24/catalog_site/pkg/metrics"
	"github.com/Gunvolt24/catalog_site/pkg/telemetry"
	"github.com/Gunvolt24/catalog_site/pkg/validate"
)

// App — собранное приложение и его внешние интерфейсы (HTTP, consumer).
type App struct {
	Logger          ports.Logger          // логгер
	HTTPServer      *http.Server          // HTTP-сервер
	KafkaConsumer   ports.MessageConsumer // консьюмер изменений контента; nil — выключен
	gracefulTimeout time.Duration         // время ожидания завершения HTTP-сервера
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// cleanups — стек функций очистки, выполняется в обратном порядке.
type cleanups []func()

func (c *cleanups) push(f func()) { *c = append(*c, f) }

func (c cleanups) run() {
	for i := len(c) - 1; i >= 0; i-- {
		c[i]()
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
// Postgres, SendGrid и Kafka подключаются только при Enabled в конфигурации.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	var stack cleanups
	stack.push(func() { _ = cleanupLogger() })
	fail := func(err error) (*App, Cleanup, error) {
		logg.Errorf(ctx, "bootstrap failed: %v", err)
		stack.run()
		return nil, func() {}, err
	}

	metrics.MustRegister()

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	otelService := ""
	if cfg.Tracing.Enabled {
		shutdown, tErr := telemetry.SetupTracing(ctx, telemetry.Options{
			ServiceName: cfg.Tracing.ServiceName,
			Endpoint:    cfg.Tracing.Endpoint,
			SampleRatio: cfg.Tracing.SampleRatio,
		})
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			otelService = cfg.Tracing.ServiceName
			stack.push(func() {
				if err := shutdown(context.Background()); err != nil {
					logg.Warnf(ctx, "shutdown tracing: %v", err)
				}
			})
		}
	}

	responseCache, err := newResponseCache(ctx, cfg, logg, &stack)
	if err != nil {
		return fail(err)
	}

	src, err := content.New(content.Config{
		BaseURL:   cfg.Content.BaseURL,
		Timeout:   cfg.Content.Timeout,
		UserAgent: cfg.Content.UserAgent,
		ListLimit: cfg.Content.ListLimit,
	}, logg)
	if err != nil {
		return fail(fmt.Errorf("content client: %w", err))
	}

	site := usecase.NewSite(src, responseCache, logg, usecase.Options{
		TTL:       cfg.Cache.TTL,
		ListLimit: cfg.Content.ListLimit,
		PageLimit: cfg.Content.PageLimit,
	})

	sinks, err := newLeadSinks(ctx, cfg, logg, &stack)
	if err != nil {
		return fail(err)
	}

	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	handler := rest.NewHandler(rest.Deps{
		Site:      site,
		Sitemaps:  sitemap.NewGenerator(site, responseCache, cfg.Cache.SitemapTTL, cfg.HTTP.PublicURL),
		Countries: country.NewService(cfg.Country.DatasetURL, cfg.Content.Timeout, responseCache, cfg.Country.TTL, logg),
		Enquiries: enquiry.NewService(validate.NewEnquiryValidator(), logg, sinks...),
		Log:       logg,
	}, rest.Options{
		StaticDir:      cfg.HTTP.StaticDir,
		PublicURL:      cfg.HTTP.PublicURL,
		AdminToken:     cfg.Admin.Token,
		HandlerTimeout: cfg.HTTP.HandlerTimeout,
		OtelService:    otelService,
	})
	router, err := rest.NewRouter(handler)
	if err != nil {
		return fail(fmt.Errorf("router: %w", err))
	}

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Kafka: события CMS сбрасывают кэш ответов.
	if cfg.Kafka.Enabled {
		consumer := kafka.NewConsumer(&kafka.ConsumerConfig{
			Brokers:        cfg.Kafka.Brokers,
			GroupID:        cfg.Kafka.GroupID,
			Topic:          cfg.Kafka.Topic,
			StartOffset:    cfg.Kafka.StartOffset,
			ProcessTimeout: cfg.Kafka.ProcessTimeout,
			RetryInitial:   cfg.Kafka.RetryInitial,
			RetryMax:       cfg.Kafka.RetryMax,
		}, site, logg)
		app.KafkaConsumer = consumer
		stack.push(func() {
			if err := consumer.Close(); err != nil {
				logg.Warnf(ctx, "kafka consumer close error: %v", err)
			}
		})
	}

	logg.Infof(ctx, "bootstrap done content=%s cache=%s sinks=%d kafka=%v",
		cfg.Content.BaseURL, cfg.Cache.Backend, len(sinks), cfg.Kafka.Enabled)
	return app, stack.run, nil
}

// newResponseCache — memory (по умолчанию) или redis для нескольких реплик.
func newResponseCache(ctx context.Context, cfg *config.Config, log ports.Logger, stack *cleanups) (ports.ResponseCache, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Cache.Backend)) {
	case "", "memory":
		return cachemem.NewLRUCacheTTL(cfg.Cache.Capacity, cfg.Cache.TTL), nil
	case "redis":
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("redis ping %s: %w", cfg.Redis.Addr, err)
		}
		stack.push(func() { _ = client.Close() })
		log.Infof(ctx, "redis response cache addr=%s db=%d", cfg.Redis.Addr, cfg.Redis.DB)
		return cacheredis.New(client, cacheredis.DefaultPrefix, cfg.Cache.TTL, log), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}

// newLeadSinks — приёмники заявок. Без приёмников заявка только валидируется и логируется.
func newLeadSinks(ctx context.Context, cfg *config.Config, log ports.Logger, stack *cleanups) ([]ports.LeadSink, error) {
	var sinks []ports.LeadSink

	if cfg.Postgres.Enabled {
		if err := postgres.Migrate(cfg.Postgres.DSN); err != nil {
			return nil, fmt.Errorf("migrate leads db: %w", err)
		}
		pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
		if err != nil {
			return nil, fmt.Errorf("postgres pool: %w", err)
		}
		stack.push(pool.Close)
		sinks = append(sinks, postgres.NewLeadRepository(pool))
	}

	if cfg.Mail.Enabled {
		sink, err := mail.NewSendGridSink(cfg.Mail.APIKey, cfg.Mail.From, cfg.Mail.To, cfg.Mail.SiteName, log)
		if err != nil {
			return nil, fmt.Errorf("sendgrid sink: %w", err)
		}
		sinks = append(sinks, sink)
	}

	if len(sinks) == 0 {
		log.Warnf(ctx, "no lead sinks enabled: enquiries will be validated and logged only")
	}
	return sinks, nil
}

// Run — запускает HTTP-сервер и консьюмера; ждёт отмены контекста или ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 2)

	if a.KafkaConsumer != nil {
		go func() {
			a.Logger.Infof(ctx, "kafka consumer starting")
			if err := a.KafkaConsumer.Run(ctx); err != nil {
				errCh <- err
			}
		}()
	}

	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Warnf(ctx, "background error: %v", err)
			runErr = err
		}
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	if a.KafkaConsumer != nil {
		if err := a.KafkaConsumer.Close(); err != nil {
			a.Logger.Warnf(ctx, "kafka consumer close error: %v", err)
		}
	}

	a.Logger.Infof(ctx, "service stopped")
	return runErr
}

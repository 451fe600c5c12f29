//go:build integration

package kafka_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	cachemem "github.com/Gunvolt24/catalog_site/internal/cache/memory"
	"github.com/Gunvolt24/catalog_site/internal/content"
	ikafka "github.com/Gunvolt24/catalog_site/internal/kafka"
	"github.com/Gunvolt24/catalog_site/internal/testutil"
	"github.com/Gunvolt24/catalog_site/internal/usecase"
	"github.com/Gunvolt24/catalog_site/pkg/logger"
)

var reUnsafe = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

func safe(t *testing.T) string { return reUnsafe.ReplaceAllString(t.Name(), "-") }

type stack struct {
	ctx   context.Context
	kf    *testutil.KafkaEnv
	api   *testutil.ContentAPI
	cache *cachemem.LRUCacheTTL
	site  *usecase.Site
	topic string
}

// newStack — redpanda + фейковый контент-API + сайт с памятью-кэшем + запущенный консьюмер.
func newStack(t *testing.T) *stack {
	t.Helper()

	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	kf, stopKF, err := testutil.StartKafkaTC(ctxStart, "content-itc")
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopKF(context.Background()) })

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	t.Cleanup(cancel)

	topic, group := testutil.UniqueTopicAndGroup(kf.BaseTopic + "-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(ctx, kf.Brokers[0], topic))

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	api := testutil.NewContentAPI()
	t.Cleanup(api.Close)
	api.One("setting", map[string]any{"site_name": "Acme"})
	api.List("faqs", []map[string]any{{"id": 1, "question": "Q1", "answer": "A1"}})

	src, err := content.New(content.Config{BaseURL: api.URL(), Timeout: 2 * time.Second}, logg)
	require.NoError(t, err)
	mem := cachemem.NewLRUCacheTTL(100, time.Hour)
	site := usecase.NewSite(src, mem, logg, usecase.Options{ListLimit: 100, PageLimit: 12})

	consumer := ikafka.NewConsumer(&ikafka.ConsumerConfig{
		Brokers:        kf.Brokers,
		Topic:          topic,
		GroupID:        group,
		StartOffset:    "first",
		ProcessTimeout: 3 * time.Second,
		RetryInitial:   200 * time.Millisecond,
		RetryMax:       2 * time.Second,
	}, site, logg)
	t.Cleanup(func() { _ = consumer.Close() })

	runCtx, cancelRun := context.WithCancel(ctx)
	t.Cleanup(cancelRun)
	go func() { _ = consumer.Run(runCtx) }()

	// даём консьюмеру присоединиться к группе
	time.Sleep(1500 * time.Millisecond)

	return &stack{ctx: ctx, kf: kf, api: api, cache: mem, site: site, topic: topic}
}

func (s *stack) publish(t *testing.T, values ...string) {
	t.Helper()
	require.NoError(t, testutil.PublishChangeEvents(s.ctx, s.kf.Brokers, s.topic, values...))
}

func (s *stack) waitEmpty(t *testing.T) {
	t.Helper()
	deadline := time.Now().Add(20 * time.Second)
	for s.cache.Len() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("cache not flushed in time, len=%d", s.cache.Len())
		}
		time.Sleep(200 * time.Millisecond)
	}
}

// 1) Событие изменения контента сбрасывает кэш, следующий рендер идёт в API
func TestKafka_ContentEvent_FlushesCache_TC(t *testing.T) {
	s := newStack(t)

	_, err := s.site.FAQs(s.ctx, usecase.RouteRequest{})
	require.NoError(t, err)
	_, err = s.site.FAQs(s.ctx, usecase.RouteRequest{})
	require.NoError(t, err)
	require.Equal(t, 1, s.api.Hits("faqs"), "second render must be served from cache")
	require.Positive(t, s.cache.Len())

	s.publish(t, `{"resource":"faqs","action":"update"}`)
	s.waitEmpty(t)

	_, err = s.site.FAQs(s.ctx, usecase.RouteRequest{})
	require.NoError(t, err)
	require.Equal(t, 2, s.api.Hits("faqs"))
}

// 2) Мусор пропускается (коммит без сброса), валидное событие после него срабатывает
func TestKafka_SkipInvalid_ThenFlush_TC(t *testing.T) {
	s := newStack(t)

	_, err := s.site.FAQs(s.ctx, usecase.RouteRequest{})
	require.NoError(t, err)
	require.Positive(t, s.cache.Len())

	s.publish(t, `not-json`, `{"action":"explode"}`, `{"action":"flush"}`)
	s.waitEmpty(t)
}

package metrics

import (
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of content-change messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of content-change messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of content-change messages failed to process",
		},
		[]string{"topic"},
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Response cache operations",
		},
		[]string{"op"}, // hit|miss|expired|evicted|set|clear
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of items currently in the response cache",
		},
	)
)

var (
	ContentRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_requests_total",
			Help: "Upstream content API requests by resource and status",
		},
		[]string{"resource", "status"},
	)
	ContentRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "content_request_duration_seconds",
			Help:    "Upstream content API request duration by resource",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"resource"},
	)
	PageRenders = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "page_renders_total",
			Help: "Rendered pages by route and status",
		},
		[]string{"route", "status"},
	)
	Enquiries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "enquiries_total",
			Help: "Enquiry submissions by result",
		},
		[]string{"result"}, // accepted|invalid|failed
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует метрики в DefaultRegisterer; повторный вызов безопасен.
func MustRegister() {
	registerOnce.Do(func() {
		for _, c := range []prometheus.Collector{
			KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
			CacheOps, CacheSize,
			ContentRequests, ContentRequestDuration, PageRenders, Enquiries,
		} {
			if err := prometheus.Register(c); err != nil {
				var are prometheus.AlreadyRegisteredError
				if !errors.As(err, &are) {
					panic(err)
				}
			}
		}
	})
}

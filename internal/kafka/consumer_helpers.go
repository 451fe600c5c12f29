package kafka

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/catalog_site/pkg/metrics"
)

// handleMessage — разбирает событие и сбрасывает кэш; возвращает true, если оффсет можно коммитить.
func (c *Consumer) handleMessage(ctx context.Context, topic string, msg *kafka.Message) bool {
	ev, err := ParseChangeEvent(msg.Value)
	if err != nil {
		// мусор не ретраим
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "invalid message offset=%d: %v (skipped)", msg.Offset, err)
		return true
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, c.processTimeout)
	err = c.flusher.Flush(ctxTimeout)
	cancel()
	if err != nil {
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "cache flush failed offset=%d resource=%s: %v (will retry without commit)",
			msg.Offset, ev.Resource, err)
		return false
	}

	metrics.KafkaMessagesProcessed.WithLabelValues(topic).Inc()
	c.log.Infof(ctx, "cache flushed by content event action=%s resource=%s slug=%s", ev.Action, ev.Resource, ev.Slug)
	return true
}

func (c *Consumer) commitSafely(ctx context.Context, msg *kafka.Message) {
	if commitErr := c.reader.CommitMessages(ctx, *msg); commitErr != nil {
		c.log.Warnf(ctx, "commit failed offset=%d: %v", msg.Offset, commitErr)
	}
}

// sleepWithBackoff — ждёт d; false, если контекст отменён раньше.
func (c *Consumer) sleepWithBackoff(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func (c *Consumer) nextBackoff(current time.Duration) time.Duration {
	current *= 2
	if current > c.retryMax {
		return c.retryMax
	}
	return current
}

// withJitterEqual — половина задержки фиксирована, вторая половина случайна.
func (c *Consumer) withJitterEqual(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	return half + time.Duration(c.jitterRand.Int63n(int64(d-half)+1))
}

func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}

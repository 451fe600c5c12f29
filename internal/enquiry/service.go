// Package enquiry — приём заявок с форм сайта и рассылка по приёмникам (почта, БД лидов).
package enquiry

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Gunvolt24/catalog_site/internal/domain"
	"github.com/Gunvolt24/catalog_site/internal/ports"
	"github.com/Gunvolt24/catalog_site/pkg/ctxmeta"
	"github.com/Gunvolt24/catalog_site/pkg/metrics"
)

// ErrDelivery — заявка валидна, но хотя бы один приёмник её не принял.
var ErrDelivery = errors.New("enquiry delivery failed")

var _ ports.EnquiryService = (*Service)(nil)

type Service struct {
	validator ports.EnquiryValidator
	sinks     []ports.LeadSink
	log       ports.Logger
	now       func() time.Time
}

func NewService(validator ports.EnquiryValidator, log ports.Logger, sinks ...ports.LeadSink) *Service {
	return &Service{validator: validator, sinks: sinks, log: log, now: time.Now}
}

// Submit — валидирует заявку и отдаёт её всем приёмникам параллельно.
// Ошибка валидации возвращается как есть (*validate.ValidationError),
// сбой любого приёмника — обёрнутым ErrDelivery.
func (s *Service) Submit(ctx context.Context, e *domain.Enquiry, sourceURL string) (*domain.Lead, error) {
	if err := s.validator.Validate(ctx, e); err != nil {
		metrics.Enquiries.WithLabelValues("invalid").Inc()
		s.log.Warnf(ctx, "enquiry rejected: %v", err)
		return nil, err
	}

	requestID, _ := ctxmeta.RequestIDFromContext(ctx)
	lead := &domain.Lead{
		ID:         uuid.NewString(),
		RequestID:  requestID,
		Enquiry:    *e,
		SourceURL:  sourceURL,
		ReceivedAt: s.now().UTC(),
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for _, sink := range s.sinks {
		wg.Add(1)
		go func(sink ports.LeadSink) {
			defer wg.Done()
			if err := sink.Deliver(ctx, lead); err != nil {
				s.log.Errorf(ctx, "lead delivery failed sink=%s lead=%s: %v", sink.Name(), lead.ID, err)
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", sink.Name(), err))
				mu.Unlock()
			}
		}(sink)
	}
	wg.Wait()

	if len(errs) > 0 {
		metrics.Enquiries.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("%w: %w", ErrDelivery, errors.Join(errs...))
	}

	metrics.Enquiries.WithLabelValues("accepted").Inc()
	s.log.Infof(ctx, "enquiry accepted lead=%s topic=%q sinks=%d", lead.ID, e.Topic(), len(s.sinks))
	return lead, nil
}

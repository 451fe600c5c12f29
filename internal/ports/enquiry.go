package ports

import (
	"context"

	"github.com/Gunvolt24/catalog_site/internal/domain"
)

type EnquiryValidator interface {
	Validate(ctx context.Context, enquiry *domain.Enquiry) error
}

// LeadSink — приёмник принятых заявок (почта, БД лидов).
type LeadSink interface {
	Name() string
	Deliver(ctx context.Context, lead *domain.Lead) error
}

// EnquiryService — приём заявок для HTTP-слоя.
type EnquiryService interface {
	Submit(ctx context.Context, enquiry *domain.Enquiry, sourceURL string) (*domain.Lead, error)
}

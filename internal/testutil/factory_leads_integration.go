//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/google/uuid"

	"github.com/Gunvolt24/catalog_site/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// MakeLead — мини-генератор валидного лида; opts правят поля поверх базового.
func MakeLead(opts ...func(*domain.Lead)) *domain.Lead {
	l := &domain.Lead{
		ID:        uuid.NewString(),
		RequestID: "req-" + UniqSuffix(),
		Enquiry: domain.Enquiry{
			Name:        "Ann",
			Mobile:      "9876543210",
			CountryCode: "+91",
			Email:       "ann@example.com",
			Product:     "Blaster " + UniqSuffix(),
			Message:     "price?",
			Captcha:     true,
		},
		SourceURL:  "https://example.com/product/blaster",
		ReceivedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	for _, f := range opts {
		f(l)
	}
	return l
}

// ReceivedAt — опция MakeLead: фиксированное время приёма.
func ReceivedAt(at time.Time) func(*domain.Lead) {
	return func(l *domain.Lead) { l.ReceivedAt = at.UTC().Truncate(time.Microsecond) }
}

package ports

import (
	"context"

	"github.com/Gunvolt24/catalog_site/internal/domain"
)

// CountryCodes — нормализованный список телефонных кодов стран.
type CountryCodes interface {
	List(ctx context.Context) ([]domain.Country, error)
}

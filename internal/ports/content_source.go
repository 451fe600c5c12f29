package ports

import (
	"context"

	"github.com/Gunvolt24/catalog_site/internal/domain"
)

// ContentSource — типизированный доступ к контент-API.
// Ошибки: *content.UpstreamError (non-2xx, сеть, таймаут), content.ErrNotFound (нет записи).
type ContentSource interface {
	Settings(ctx context.Context) (*domain.Setting, error)
	Categories(ctx context.Context, q domain.CategoryQuery) ([]domain.Category, error)
	Category(ctx context.Context, slug string) (*domain.Category, error)
	Products(ctx context.Context, q domain.ProductListQuery) ([]domain.Product, error)
	Product(ctx context.Context, slug string) (*domain.Product, error)
	Blogs(ctx context.Context, q domain.BlogQuery) ([]domain.Blog, error)
	Blog(ctx context.Context, slug string) (*domain.Blog, error)
	BlogCategories(ctx context.Context) ([]domain.Taxon, error)
	BlogCategory(ctx context.Context, slug string) (*domain.Taxon, error)
	Tags(ctx context.Context) ([]domain.Taxon, error)
	Tag(ctx context.Context, slug string) (*domain.Taxon, error)
	FAQs(ctx context.Context) ([]domain.FAQ, error)
	Pages(ctx context.Context, q domain.PageQuery) ([]domain.Page, error)
	Page(ctx context.Context, slug string) (*domain.Page, error)
	Sliders(ctx context.Context) ([]domain.Slider, error)
	Videos(ctx context.Context) ([]domain.Video, error)
	Careers(ctx context.Context) ([]domain.Career, error)
}

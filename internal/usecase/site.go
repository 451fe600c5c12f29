// Package usecase — загрузчики данных страниц: собирают ответы контент-API
// (через кэш для медленно меняющихся ресурсов) в один агрегат на маршрут.
package usecase

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/Gunvolt24/catalog_site/internal/cache"
	"github.com/Gunvolt24/catalog_site/internal/domain"
	"github.com/Gunvolt24/catalog_site/internal/ports"
)

// Имена маршрутов; они же — scope ключей кэша.
const (
	RouteHome           = "home"
	RouteCategories     = "category"
	RouteCategory       = "category-detail"
	RouteProducts       = "products"
	RouteProduct        = "product"
	RouteBlogs          = "blog"
	RouteBlog           = "blog-detail"
	RouteBlogCategory   = "blog-category"
	RouteTag            = "tag"
	RouteFAQs           = "faqs"
	RouteContact        = "contact"
	RouteCareers        = "careers"
	RouteVideos         = "videos"
	RoutePage           = "page"
	RouteSitemap        = "sitemap"
	homeProductsLimit   = 8
	homeBlogsLimit      = 3
	relatedProductLimit = 4
)

// RouteRequest — вход загрузчика: параметры маршрута, query и данные запроса.
type RouteRequest struct {
	Slug    string
	Query   url.Values
	BaseURL string
	FullURL string
}

// Meta — общая часть всех агрегатов.
type Meta struct {
	BaseURL  string          `json:"base_url"`
	FullURL  string          `json:"full_url"`
	Settings *domain.Setting `json:"settings,omitempty"`
}

type Options struct {
	// TTL — время жизни кэшируемых ресурсов; 0 — TTL кэша по умолчанию.
	TTL time.Duration
	// ListLimit — лимит полной выборки для prev/next и карты сайта.
	ListLimit int
	// PageLimit — размер страницы списков товаров и блога.
	PageLimit int
}

// Site — загрузчики всех маршрутов сайта.
type Site struct {
	src   ports.ContentSource
	cache ports.ResponseCache
	log   ports.Logger
	opts  Options
}

func NewSite(src ports.ContentSource, c ports.ResponseCache, log ports.Logger, opts Options) *Site {
	if opts.ListLimit <= 0 {
		opts.ListLimit = 1000
	}
	if opts.PageLimit <= 0 {
		opts.PageLimit = 12
	}
	return &Site{src: src, cache: c, log: log, opts: opts}
}

func (s *Site) PageLimit() int { return s.opts.PageLimit }

func (s *Site) ListLimit() int { return s.opts.ListLimit }

// Flush — полная очистка кэша ответов.
func (s *Site) Flush(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Clear(ctx); err != nil {
		s.log.Errorf(ctx, "cache clear failed: %v", err)
		return err
	}
	s.log.Infof(ctx, "response cache cleared")
	return nil
}

func meta(req RouteRequest, settings *domain.Setting) Meta {
	return Meta{BaseURL: req.BaseURL, FullURL: req.FullURL, Settings: settings}
}

// ------кэшируемые ресурсы------

func cached[T any](ctx context.Context, s *Site, scope, resource string, load func(context.Context) (T, error), args ...string) (T, error) {
	return cache.GetOrLoad(ctx, s.cache, cache.Key(scope, resource, args...), s.opts.TTL, load)
}

func (s *Site) settings(ctx context.Context, scope string) (*domain.Setting, error) {
	return cached(ctx, s, scope, "setting", s.src.Settings)
}

func (s *Site) categories(ctx context.Context, scope string, q domain.CategoryQuery) ([]domain.Category, error) {
	return cached(ctx, s, scope, "categories", func(ctx context.Context) ([]domain.Category, error) {
		return s.src.Categories(ctx, q)
	}, q.Parent, q.SortOrder, limitArg(q.Limit))
}

func (s *Site) blogCategories(ctx context.Context, scope string) ([]domain.Taxon, error) {
	return cached(ctx, s, scope, "blogcategory", s.src.BlogCategories)
}

func (s *Site) tags(ctx context.Context, scope string) ([]domain.Taxon, error) {
	return cached(ctx, s, scope, "tags", s.src.Tags)
}

func (s *Site) sliders(ctx context.Context, scope string) ([]domain.Slider, error) {
	return cached(ctx, s, scope, "sliders", s.src.Sliders)
}

func (s *Site) videos(ctx context.Context, scope string) ([]domain.Video, error) {
	return cached(ctx, s, scope, "video", s.src.Videos)
}

func (s *Site) faqs(ctx context.Context, scope string) ([]domain.FAQ, error) {
	return cached(ctx, s, scope, "faqs", s.src.FAQs)
}

func (s *Site) topPages(ctx context.Context, scope string) ([]domain.Page, error) {
	return cached(ctx, s, scope, "pages", func(ctx context.Context) ([]domain.Page, error) {
		return s.src.Pages(ctx, domain.PageQuery{Parent: "0", Limit: s.opts.ListLimit})
	}, "0")
}

func limitArg(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}

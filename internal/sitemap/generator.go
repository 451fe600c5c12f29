package sitemap

import (
	"context"
	"strings"
	"time"

	"github.com/Gunvolt24/catalog_site/internal/cache"
	"github.com/Gunvolt24/catalog_site/internal/ports"
	"github.com/Gunvolt24/catalog_site/internal/usecase"
)

// FeedSource — источник коллекций контента (usecase.Site).
type FeedSource interface {
	Feed(ctx context.Context) (*usecase.Feed, error)
}

// Generator — генерация документов. Кэшируются только документы для
// канонического origin (ключи sitemap:xml, sitemap:image-xml); без него
// origin берётся из запроса и документ собирается заново.
type Generator struct {
	src       FeedSource
	cache     ports.ResponseCache
	ttl       time.Duration
	canonical string
}

// NewGenerator — canonical: публичный origin сайта (SITE_HTTP_PUBLIC_URL), может быть пустым.
func NewGenerator(src FeedSource, c ports.ResponseCache, ttl time.Duration, canonical string) *Generator {
	return &Generator{src: src, cache: c, ttl: ttl, canonical: strings.TrimRight(canonical, "/")}
}

// Sitemap — sitemap.xml; base используется, только если канонический origin не задан.
func (g *Generator) Sitemap(ctx context.Context, base string) ([]byte, error) {
	return g.document(ctx, base, false)
}

// ImageSitemap — вариант с <image:image>.
func (g *Generator) ImageSitemap(ctx context.Context, base string) ([]byte, error) {
	return g.document(ctx, base, true)
}

func (g *Generator) document(ctx context.Context, base string, withImages bool) ([]byte, error) {
	build := func(ctx context.Context, base string) ([]byte, error) {
		feed, err := g.src.Feed(ctx)
		if err != nil {
			return nil, err
		}
		return Render(Entries(base, feed), withImages)
	}
	if g.canonical == "" || g.cache == nil {
		return build(ctx, base)
	}

	kind := "xml"
	if withImages {
		kind = "image-xml"
	}
	return cache.GetOrLoad(ctx, g.cache, cache.Key(usecase.RouteSitemap, kind), g.ttl,
		func(ctx context.Context) ([]byte, error) { return build(ctx, g.canonical) })
}

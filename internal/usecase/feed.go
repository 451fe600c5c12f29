package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Gunvolt24/catalog_site/internal/domain"
)

// Feed — все коллекции контента для генерации карты сайта.
type Feed struct {
	Categories     []domain.Category
	Products       []domain.Product
	Blogs          []domain.Blog
	BlogCategories []domain.Taxon
	Tags           []domain.Taxon
	Pages          []domain.Page
}

// Feed — полная выборка всех коллекций; любая ошибка прерывает генерацию.
func (s *Site) Feed(ctx context.Context) (*Feed, error) {
	f := &Feed{}
	limit := s.opts.ListLimit

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		f.Categories, err = s.categories(gctx, RouteSitemap, domain.CategoryQuery{Limit: limit})
		return err
	})
	g.Go(func() (err error) {
		f.Products, err = s.src.Products(gctx, domain.ProductListQuery{Limit: limit})
		return err
	})
	g.Go(func() (err error) {
		f.Blogs, err = s.src.Blogs(gctx, domain.BlogQuery{Limit: limit})
		return err
	})
	g.Go(func() (err error) {
		f.BlogCategories, err = s.blogCategories(gctx, RouteSitemap)
		return err
	})
	g.Go(func() (err error) {
		f.Tags, err = s.tags(gctx, RouteSitemap)
		return err
	})
	g.Go(func() (err error) {
		f.Pages, err = s.topPages(gctx, RouteSitemap)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load sitemap feed: %w", err)
	}
	return f, nil
}

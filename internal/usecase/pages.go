package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Gunvolt24/catalog_site/internal/domain"
	"github.com/Gunvolt24/catalog_site/internal/usecase/filter"
	"github.com/Gunvolt24/catalog_site/internal/widget"
)

type HomePage struct {
	Meta
	Sliders    []domain.Slider
	Categories []domain.Category
	Products   []domain.Product
	Blogs      []domain.Blog
	Videos     []domain.Video

	Hero          widget.Carousel
	ProductSlider widget.Carousel
	BlogSlider    widget.Carousel
	VideoSlider   widget.Carousel
}

// Home — независимые ресурсы грузятся параллельно; первая ошибка отменяет остальные.
func (s *Site) Home(ctx context.Context, req RouteRequest) (*HomePage, error) {
	page := &HomePage{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		page.Settings, err = s.settings(gctx, RouteHome)
		return err
	})
	g.Go(func() (err error) {
		page.Sliders, err = s.sliders(gctx, RouteHome)
		return err
	})
	g.Go(func() (err error) {
		page.Categories, err = s.categories(gctx, RouteHome, domain.CategoryQuery{Parent: "0"})
		return err
	})
	g.Go(func() (err error) {
		page.Products, err = s.src.Products(gctx, domain.ProductListQuery{Limit: homeProductsLimit})
		return err
	})
	g.Go(func() (err error) {
		page.Blogs, err = s.src.Blogs(gctx, domain.BlogQuery{Limit: homeBlogsLimit})
		return err
	})
	g.Go(func() (err error) {
		page.Videos, err = s.videos(gctx, RouteHome)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load home: %w", err)
	}

	page.Meta = meta(req, page.Settings)
	page.Hero = widget.NewCarousel(len(page.Sliders), 1, widget.Wrap).FromQuery(req.Query)
	page.ProductSlider = widget.NewCarousel(len(page.Products), widget.ProductSlider.Max(), widget.Clamp)
	page.BlogSlider = widget.NewCarousel(len(page.Blogs), widget.BlogSlider.Max(), widget.Clamp)
	page.VideoSlider = widget.NewCarousel(len(page.Videos), widget.VideoSlider.Max(), widget.Wrap)
	return page, nil
}

type CategoriesPage struct {
	Meta
	Categories []domain.Category
}

func (s *Site) Categories(ctx context.Context, req RouteRequest) (*CategoriesPage, error) {
	page := &CategoriesPage{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		page.Settings, err = s.settings(gctx, RouteCategories)
		return err
	})
	g.Go(func() (err error) {
		page.Categories, err = s.categories(gctx, RouteCategories, domain.CategoryQuery{Parent: "0", SortOrder: "asc"})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	page.Meta = meta(req, page.Settings)
	return page, nil
}

type CategoryPage struct {
	Meta
	Category   *domain.Category
	Products   []domain.Product
	FAQs       []domain.FAQ
	NoProducts bool
	Accordion  widget.Accordion
	Modal      widget.Modal
}

// Category — товары приходят вложенными в категорию. Пустая категория
// рендерится как «No Products Found.» без дальнейших запросов.
func (s *Site) Category(ctx context.Context, req RouteRequest) (*CategoryPage, error) {
	page := &CategoryPage{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		page.Settings, err = s.settings(gctx, RouteCategory)
		return err
	})
	g.Go(func() (err error) {
		page.Category, err = s.src.Category(gctx, req.Slug)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load category %q: %w", req.Slug, err)
	}
	page.Meta = meta(req, page.Settings)

	page.Products = page.Category.Products
	if len(page.Products) == 0 {
		page.NoProducts = true
		page.Products = []domain.Product{}
		return page, nil
	}

	faqs, err := s.faqs(ctx, RouteCategory)
	if err != nil {
		return nil, fmt.Errorf("load category %q: %w", req.Slug, err)
	}
	page.FAQs = faqs
	page.Accordion = widget.AccordionFromQuery(req.Query, len(faqs))
	page.Modal = widget.ModalFromQuery(req.Query, productResolver(page.Products))
	return page, nil
}

type ProductsPage struct {
	Meta
	Categories []domain.Category
	Products   []domain.Product
	Query      domain.ProductListQuery
	Selection  *filter.Selection
	Modal      widget.Modal
}

// Products — список товаров с фильтром по категориям из query (categories=A,B&search=x).
func (s *Site) Products(ctx context.Context, req RouteRequest) (*ProductsPage, error) {
	sel, q := filter.Parse(req.Query, s.opts.PageLimit, s.opts.ListLimit)
	page := &ProductsPage{Query: q, Selection: sel}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		page.Settings, err = s.settings(gctx, RouteProducts)
		return err
	})
	g.Go(func() (err error) {
		page.Categories, err = s.categories(gctx, RouteProducts, domain.CategoryQuery{})
		return err
	})
	g.Go(func() (err error) {
		page.Products, err = s.src.Products(gctx, q)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	page.Meta = meta(req, page.Settings)
	page.Modal = widget.ModalFromQuery(req.Query, productResolver(page.Products))
	return page, nil
}

// ProductList — только выборка товаров (JSON-эндпоинт фильтра).
func (s *Site) ProductList(ctx context.Context, q domain.ProductListQuery) ([]domain.Product, error) {
	if q.Limit <= 0 {
		q.Limit = s.opts.PageLimit
	}
	products, err := s.src.Products(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("load product list: %w", err)
	}
	return products, nil
}

type ProductPage struct {
	Meta
	Product       *domain.Product
	Related       []domain.Product
	Prev          *domain.Product
	Next          *domain.Product
	Gallery       widget.Carousel
	RelatedSlider widget.Carousel
	Modal         widget.Modal
}

func (s *Site) Product(ctx context.Context, req RouteRequest) (*ProductPage, error) {
	page := &ProductPage{}
	var all []domain.Product

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		page.Settings, err = s.settings(gctx, RouteProduct)
		return err
	})
	g.Go(func() (err error) {
		page.Product, err = s.src.Product(gctx, req.Slug)
		return err
	})
	g.Go(func() (err error) {
		all, err = s.src.Products(gctx, domain.ProductListQuery{Limit: s.opts.ListLimit})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load product %q: %w", req.Slug, err)
	}
	page.Meta = meta(req, page.Settings)

	page.Related = relatedProducts(all, *page.Product, relatedProductLimit)
	page.Prev, page.Next = neighbours(all, func(p domain.Product) bool { return p.Slug == page.Product.Slug })
	page.Gallery = widget.NewCarousel(len(page.Product.Images()), 1, widget.Wrap).FromQuery(req.Query)
	page.RelatedSlider = widget.NewCarousel(len(page.Related), widget.ProductSlider.Max(), widget.Clamp)
	page.Modal = widget.ModalFromQuery(req.Query, productResolver(append([]domain.Product{*page.Product}, page.Related...)))
	return page, nil
}

type BlogListPage struct {
	Meta
	Blogs      []domain.Blog
	Categories []domain.Taxon
	Years      []int
	Year       int
}

// Blogs — лента блога, опционально за год (?year=2024).
func (s *Site) Blogs(ctx context.Context, req RouteRequest) (*BlogListPage, error) {
	_, q := filter.Parse(req.Query, s.opts.PageLimit, s.opts.ListLimit)
	page := &BlogListPage{Year: q.Year}

	var archive []domain.Blog
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		page.Settings, err = s.settings(gctx, RouteBlogs)
		return err
	})
	g.Go(func() (err error) {
		page.Blogs, err = s.src.Blogs(gctx, domain.BlogQuery{Limit: q.Limit, Year: q.Year})
		return err
	})
	g.Go(func() (err error) {
		page.Categories, err = s.blogCategories(gctx, RouteBlogs)
		return err
	})
	g.Go(func() (err error) {
		archive, err = cached(gctx, s, RouteBlogs, "blogs", func(ctx context.Context) ([]domain.Blog, error) {
			return s.src.Blogs(ctx, domain.BlogQuery{Limit: s.opts.ListLimit})
		}, "archive")
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load blogs: %w", err)
	}
	page.Meta = meta(req, page.Settings)
	page.Years = blogYears(archive)
	return page, nil
}

type BlogPage struct {
	Meta
	Blog *domain.Blog
	Prev *domain.Blog
	Next *domain.Blog
}

func (s *Site) Blog(ctx context.Context, req RouteRequest) (*BlogPage, error) {
	page := &BlogPage{}
	var all []domain.Blog

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		page.Settings, err = s.settings(gctx, RouteBlog)
		return err
	})
	g.Go(func() (err error) {
		page.Blog, err = s.src.Blog(gctx, req.Slug)
		return err
	})
	g.Go(func() (err error) {
		all, err = s.src.Blogs(gctx, domain.BlogQuery{Limit: s.opts.ListLimit})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load blog %q: %w", req.Slug, err)
	}
	page.Meta = meta(req, page.Settings)
	page.Prev, page.Next = neighbours(all, func(b domain.Blog) bool { return b.Slug == page.Blog.Slug })
	return page, nil
}

// TaxonPage — страница категории блога или тега со списком статей.
type TaxonPage struct {
	Meta
	Kind  string
	Taxon *domain.Taxon
}

func (s *Site) BlogCategory(ctx context.Context, req RouteRequest) (*TaxonPage, error) {
	return s.taxon(ctx, req, RouteBlogCategory, s.src.BlogCategory)
}

func (s *Site) Tag(ctx context.Context, req RouteRequest) (*TaxonPage, error) {
	return s.taxon(ctx, req, RouteTag, s.src.Tag)
}

func (s *Site) taxon(
	ctx context.Context,
	req RouteRequest,
	route string,
	fetch func(context.Context, string) (*domain.Taxon, error),
) (*TaxonPage, error) {
	page := &TaxonPage{Kind: route}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		page.Settings, err = s.settings(gctx, route)
		return err
	})
	g.Go(func() (err error) {
		page.Taxon, err = fetch(gctx, req.Slug)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load %s %q: %w", route, req.Slug, err)
	}
	page.Meta = meta(req, page.Settings)
	if page.Taxon.Blogs == nil {
		page.Taxon.Blogs = []domain.Blog{}
	}
	return page, nil
}

type FAQPage struct {
	Meta
	FAQs      []domain.FAQ
	Accordion widget.Accordion
}

func (s *Site) FAQs(ctx context.Context, req RouteRequest) (*FAQPage, error) {
	page := &FAQPage{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		page.Settings, err = s.settings(gctx, RouteFAQs)
		return err
	})
	g.Go(func() (err error) {
		page.FAQs, err = s.faqs(gctx, RouteFAQs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load faqs: %w", err)
	}
	page.Meta = meta(req, page.Settings)
	page.Accordion = widget.AccordionFromQuery(req.Query, len(page.FAQs))
	return page, nil
}

type ContactPage struct {
	Meta
	Subject string
	Modal   widget.Modal
}

// Contact — страница формы; модалку статуса после POST без JS выставляет транспорт.
func (s *Site) Contact(ctx context.Context, req RouteRequest) (*ContactPage, error) {
	settings, err := s.settings(ctx, RouteContact)
	if err != nil {
		return nil, fmt.Errorf("load contact: %w", err)
	}
	page := &ContactPage{Meta: meta(req, settings), Subject: req.Query.Get("subject")}
	page.Modal = widget.ModalFromQuery(req.Query, nil)
	return page, nil
}

type CareersPage struct {
	Meta
	Careers []domain.Career
}

func (s *Site) Careers(ctx context.Context, req RouteRequest) (*CareersPage, error) {
	page := &CareersPage{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		page.Settings, err = s.settings(gctx, RouteCareers)
		return err
	})
	g.Go(func() (err error) {
		page.Careers, err = s.src.Careers(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load careers: %w", err)
	}
	page.Meta = meta(req, page.Settings)
	return page, nil
}

type VideosPage struct {
	Meta
	Videos   []domain.Video
	Carousel widget.Carousel
}

func (s *Site) Videos(ctx context.Context, req RouteRequest) (*VideosPage, error) {
	page := &VideosPage{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		page.Settings, err = s.settings(gctx, RouteVideos)
		return err
	})
	g.Go(func() (err error) {
		page.Videos, err = s.videos(gctx, RouteVideos)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load videos: %w", err)
	}
	page.Meta = meta(req, page.Settings)
	page.Carousel = widget.NewCarousel(len(page.Videos), 1, widget.Wrap).FromQuery(req.Query)
	return page, nil
}

type StaticPage struct {
	Meta
	Page     *domain.Page
	Children []domain.Page
}

// Page — статическая страница и её дочерние страницы (второй запрос зависит от id).
func (s *Site) Page(ctx context.Context, req RouteRequest) (*StaticPage, error) {
	page := &StaticPage{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		page.Settings, err = s.settings(gctx, RoutePage)
		return err
	})
	g.Go(func() (err error) {
		page.Page, err = s.src.Page(gctx, req.Slug)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load page %q: %w", req.Slug, err)
	}
	page.Meta = meta(req, page.Settings)

	if page.Page.ID == "" {
		page.Children = []domain.Page{}
		return page, nil
	}
	children, err := s.src.Pages(ctx, domain.PageQuery{Parent: page.Page.ID.String(), Limit: s.opts.ListLimit})
	if err != nil {
		return nil, fmt.Errorf("load page %q children: %w", req.Slug, err)
	}
	page.Children = children
	return page, nil
}

package rest

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/catalog_site/internal/domain"
	"github.com/Gunvolt24/catalog_site/internal/ports"
	"github.com/Gunvolt24/catalog_site/internal/usecase"
	"github.com/Gunvolt24/catalog_site/internal/usecase/filter"
	"github.com/Gunvolt24/catalog_site/pkg/httpx"
	"github.com/Gunvolt24/catalog_site/web"
)

// HeaderAdminToken — токен оператора для сброса кэша.
const HeaderAdminToken = "X-Admin-Token"

// Sitemaps — генератор sitemap-документов (sitemap.Generator).
type Sitemaps interface {
	Sitemap(ctx context.Context, base string) ([]byte, error)
	ImageSitemap(ctx context.Context, base string) ([]byte, error)
}

// Deps — зависимости HTTP-слоя.
type Deps struct {
	Site      *usecase.Site
	Sitemaps  Sitemaps
	Countries ports.CountryCodes
	Enquiries ports.EnquiryService
	Log       ports.Logger
}

type Options struct {
	// StaticDir — каталог статики на диске; пусто — встроенная статика.
	StaticDir string
	// PublicURL — канонический origin; пусто — из запроса.
	PublicURL string
	// AdminToken — если задан, /api/cache/flush требует X-Admin-Token.
	AdminToken     string
	HandlerTimeout time.Duration
	// OtelService — имя сервиса для otelgin; пусто — без трейсинга.
	OtelService string
}

type Handler struct {
	site      *usecase.Site
	sitemaps  Sitemaps
	countries ports.CountryCodes
	enquiries ports.EnquiryService
	log       ports.Logger
	latest    *filter.Latest[[]domain.Product]
	opts      Options
}

func NewHandler(d Deps, opts Options) *Handler {
	return &Handler{
		site:      d.Site,
		sitemaps:  d.Sitemaps,
		countries: d.Countries,
		enquiries: d.Enquiries,
		log:       d.Log,
		latest:    filter.NewLatest[[]domain.Product](),
		opts:      opts,
	}
}

// NewRouter — страницы, SEO-документы и JSON API сайта.
func NewRouter(h *Handler) (*gin.Engine, error) {
	tmpl, err := loadTemplates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(gin.CustomRecovery(h.recovered))
	if h.opts.OtelService != "" {
		r.Use(otelgin.Middleware(h.opts.OtelService))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.ViewIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))
	r.Use(httpx.Origin(h.opts.PublicURL))
	r.Use(httpx.HandlerTimeout(h.opts.HandlerTimeout))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if h.opts.StaticDir != "" {
		r.Static("/static", h.opts.StaticDir)
	} else {
		static, err := fs.Sub(web.FS, "static")
		if err != nil {
			return nil, fmt.Errorf("embedded static: %w", err)
		}
		r.StaticFS("/static", http.FS(static))
	}

	// страницы
	r.GET("/", page(h, usecase.RouteHome, "home.html", h.site.Home))
	r.GET("/category", page(h, usecase.RouteCategories, "categories.html", h.site.Categories))
	r.GET("/category/:slug", page(h, usecase.RouteCategory, "category.html", h.site.Category))
	r.GET("/products", page(h, usecase.RouteProducts, "products.html", h.site.Products))
	r.GET("/product/:slug", page(h, usecase.RouteProduct, "product.html", h.site.Product))
	r.GET("/blog", page(h, usecase.RouteBlogs, "blogs.html", h.site.Blogs))
	r.GET("/blog/:slug", page(h, usecase.RouteBlog, "blog.html", h.site.Blog))
	r.GET("/blog-category/:slug", page(h, usecase.RouteBlogCategory, "taxon.html", h.site.BlogCategory))
	r.GET("/tag/:slug", page(h, usecase.RouteTag, "taxon.html", h.site.Tag))
	r.GET("/faqs", page(h, usecase.RouteFAQs, "faqs.html", h.site.FAQs))
	r.GET("/contact", page(h, usecase.RouteContact, "contact.html", h.site.Contact))
	r.GET("/careers", page(h, usecase.RouteCareers, "careers.html", h.site.Careers))
	r.GET("/videos", page(h, usecase.RouteVideos, "videos.html", h.site.Videos))
	r.GET("/page/:slug", page(h, usecase.RoutePage, "page.html", h.site.Page))

	// SEO
	r.GET("/sitemap.xml", h.sitemapXML)
	r.GET("/image-sitemap.xml", h.imageSitemapXML)
	r.GET("/robots.txt", h.robotsTxt)

	// API
	api := r.Group("/api")
	api.GET("/products", h.listProducts)
	api.POST("/cache/flush", h.flushCache)
	api.GET("/cache/flush", h.flushCache)
	api.GET("/country-codes", h.countryCodes)
	api.POST("/enquiry", h.submitEnquiry)

	r.NoRoute(h.notFound)

	return r, nil
}

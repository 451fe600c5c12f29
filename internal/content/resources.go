package content

import (
	"context"
	"net/url"
	"strings"

	"github.com/Gunvolt24/catalog_site/internal/domain"
	"github.com/Gunvolt24/catalog_site/internal/ports"
)

var _ ports.ContentSource = (*Client)(nil)

// Пути ресурсов контент-API.
const (
	ResSetting      = "setting"
	ResCategory     = "category"
	ResProducts     = "products"
	ResProduct      = "product"
	ResBlogs        = "blogs"
	ResBlog         = "blog"
	ResBlogCategory = "blogcategory"
	ResTags         = "tags"
	ResTag          = "tag"
	ResFAQs         = "faqs"
	ResPages        = "pages"
	ResPage         = "page"
	ResSliders      = "sliders"
	ResVideo        = "video"
	ResCareers      = "careers"
)

func slugPath(resource, slug string) string {
	return resource + "/" + url.PathEscape(strings.TrimSpace(slug))
}

func (c *Client) Settings(ctx context.Context) (*domain.Setting, error) {
	return fetchOne[domain.Setting](ctx, c, ResSetting, nil)
}

func (c *Client) Categories(ctx context.Context, q domain.CategoryQuery) ([]domain.Category, error) {
	p := Params{}.
		Add("parent", q.Parent).
		Add("sortOrder", q.SortOrder).
		AddInt("limit", q.Limit)
	return fetchList[domain.Category](ctx, c, ResCategory, p)
}

func (c *Client) Category(ctx context.Context, slug string) (*domain.Category, error) {
	return fetchOne[domain.Category](ctx, c, slugPath(ResCategory, slug), nil)
}

func (c *Client) Products(ctx context.Context, q domain.ProductListQuery) ([]domain.Product, error) {
	return fetchList[domain.Product](ctx, c, ResProducts, ProductParams(q))
}

func (c *Client) Product(ctx context.Context, slug string) (*domain.Product, error) {
	return fetchOne[domain.Product](ctx, c, slugPath(ResProduct, slug), nil)
}

func (c *Client) Blogs(ctx context.Context, q domain.BlogQuery) ([]domain.Blog, error) {
	p := Params{}.AddInt("limit", q.Limit).AddInt("year", q.Year)
	return fetchList[domain.Blog](ctx, c, ResBlogs, p)
}

func (c *Client) Blog(ctx context.Context, slug string) (*domain.Blog, error) {
	return fetchOne[domain.Blog](ctx, c, slugPath(ResBlog, slug), nil)
}

func (c *Client) BlogCategories(ctx context.Context) ([]domain.Taxon, error) {
	return fetchList[domain.Taxon](ctx, c, ResBlogCategory, nil)
}

func (c *Client) BlogCategory(ctx context.Context, slug string) (*domain.Taxon, error) {
	return fetchOne[domain.Taxon](ctx, c, slugPath(ResBlogCategory, slug), nil)
}

func (c *Client) Tags(ctx context.Context) ([]domain.Taxon, error) {
	return fetchList[domain.Taxon](ctx, c, ResTags, nil)
}

func (c *Client) Tag(ctx context.Context, slug string) (*domain.Taxon, error) {
	return fetchOne[domain.Taxon](ctx, c, slugPath(ResTag, slug), nil)
}

func (c *Client) FAQs(ctx context.Context) ([]domain.FAQ, error) {
	return fetchList[domain.FAQ](ctx, c, ResFAQs, nil)
}

func (c *Client) Pages(ctx context.Context, q domain.PageQuery) ([]domain.Page, error) {
	p := Params{}.Add("parent", q.Parent).AddInt("limit", q.Limit)
	return fetchList[domain.Page](ctx, c, ResPages, p)
}

func (c *Client) Page(ctx context.Context, slug string) (*domain.Page, error) {
	return fetchOne[domain.Page](ctx, c, slugPath(ResPage, slug), nil)
}

func (c *Client) Sliders(ctx context.Context) ([]domain.Slider, error) {
	return fetchList[domain.Slider](ctx, c, ResSliders, nil)
}

func (c *Client) Videos(ctx context.Context) ([]domain.Video, error) {
	return fetchList[domain.Video](ctx, c, ResVideo, nil)
}

func (c *Client) Careers(ctx context.Context) ([]domain.Career, error) {
	return fetchList[domain.Career](ctx, c, ResCareers, nil)
}

package content_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/catalog_site/internal/content"
	"github.com/Gunvolt24/catalog_site/internal/domain"
	"github.com/Gunvolt24/catalog_site/internal/testutil"
	"github.com/Gunvolt24/catalog_site/pkg/logger"
)

func newClient(t *testing.T, api *testutil.ContentAPI, timeout time.Duration) *content.Client {
	t.Helper()
	c, err := content.New(content.Config{
		BaseURL:   api.URL() + "/",
		Timeout:   timeout,
		UserAgent: "catalog-site-test",
	}, logger.NewNop())
	require.NoError(t, err)
	return c
}

func TestNew_EmptyBaseURL(t *testing.T) {
	_, err := content.New(content.Config{}, logger.NewNop())
	require.Error(t, err)
}

func TestFetch_SendsHeadersAndOneRequest(t *testing.T) {
	api := testutil.NewContentAPI()
	defer api.Close()
	api.One("setting", map[string]any{"site_name": "Acme"})

	c := newClient(t, api, time.Second)
	s, err := c.Settings(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Acme", s.SiteName)

	require.Equal(t, 1, api.Hits("setting"))
	h := api.LastHeaders()
	require.Equal(t, "application/json", h.Get("Accept"))
	require.Equal(t, "catalog-site-test", h.Get("User-Agent"))
}

func TestFetch_Non2xx_UpstreamError(t *testing.T) {
	api := testutil.NewContentAPI()
	defer api.Close()
	api.Fail("setting", http.StatusInternalServerError)

	c := newClient(t, api, time.Second)
	_, err := c.Settings(context.Background())

	var ue *content.UpstreamError
	require.ErrorAs(t, err, &ue)
	require.Equal(t, 500, ue.Status)
	require.Equal(t, "setting", ue.Resource)
	require.False(t, ue.Timeout)
	require.Equal(t, http.StatusInternalServerError, content.StatusCode(err))

	// ретраев нет
	require.Equal(t, 1, api.Hits("setting"))
}

func TestFetch_404_IsNotFound(t *testing.T) {
	api := testutil.NewContentAPI()
	defer api.Close()

	c := newClient(t, api, time.Second)
	_, err := c.Product(context.Background(), "missing")
	require.ErrorIs(t, err, content.ErrNotFound)
	require.Equal(t, http.StatusNotFound, content.StatusCode(err))
}

func TestFetch_EmptySingleRecord_IsNotFound(t *testing.T) {
	api := testutil.NewContentAPI()
	defer api.Close()
	api.Handle("blog/gone", testutil.ContentResponse{Body: `{"data":null}`})

	c := newClient(t, api, time.Second)
	_, err := c.Blog(context.Background(), "gone")
	require.ErrorIs(t, err, content.ErrNotFound)
}

func TestFetch_Timeout(t *testing.T) {
	api := testutil.NewContentAPI()
	defer api.Close()
	api.Handle("faqs", testutil.ContentResponse{Body: `{"data":[]}`, Delay: time.Second})

	c := newClient(t, api, 50*time.Millisecond)
	_, err := c.FAQs(context.Background())

	var ue *content.UpstreamError
	require.ErrorAs(t, err, &ue)
	require.True(t, ue.Timeout)
	require.Equal(t, 0, ue.Status)
	require.ErrorIs(t, err, content.ErrTimeout)
	require.Equal(t, http.StatusGatewayTimeout, content.StatusCode(err))
}

func TestFetch_CallerCancel(t *testing.T) {
	api := testutil.NewContentAPI()
	defer api.Close()
	api.Handle("video", testutil.ContentResponse{Body: `{"data":[]}`, Delay: time.Second})

	c := newClient(t, api, 5*time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(30 * time.Millisecond)
		cancel()
	}()

	_, err := c.Videos(ctx)
	require.Error(t, err)
	require.True(t, errors.Is(err, context.Canceled))
	require.False(t, errors.Is(err, content.ErrTimeout))
}

func TestProducts_QueryString(t *testing.T) {
	api := testutil.NewContentAPI()
	defer api.Close()
	api.List("products", []map[string]any{{"id": 1, "title": "Blaster", "slug": "blaster"}})

	c := newClient(t, api, time.Second)
	got, err := c.Products(context.Background(), domain.ProductListQuery{
		CategoryIDs: []domain.ID{"A", "B"},
		Search:      "",
		Limit:       12,
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, domain.ID("1"), got[0].ID)

	q := api.LastQuery("products")
	require.Contains(t, q, "categories=A,B")
	require.NotContains(t, q, "search")
	require.Equal(t, "limit=12&categories=A,B", q)
}

func TestCategories_ListEnvelopeAndParams(t *testing.T) {
	api := testutil.NewContentAPI()
	defer api.Close()
	api.List("category", []map[string]any{
		{"id": "1", "title": "Blasting", "slug": "blasting"},
		{"id": 2, "title": "Painting", "slug": "painting"},
	})

	c := newClient(t, api, time.Second)
	got, err := c.Categories(context.Background(), domain.CategoryQuery{Parent: "0", SortOrder: "asc"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "parent=0&sortOrder=asc", api.LastQuery("category"))
}

func TestCategory_SlugWithEmbeddedProducts(t *testing.T) {
	api := testutil.NewContentAPI()
	defer api.Close()
	api.Handle("category/sand-blasting", testutil.ContentResponse{
		Body: `{"data":{"title":"Sand Blasting","products":[]}}`,
	})

	c := newClient(t, api, time.Second)
	cat, err := c.Category(context.Background(), "sand-blasting")
	require.NoError(t, err)
	require.Equal(t, "Sand Blasting", cat.Title)
	require.Empty(t, cat.Products)
}

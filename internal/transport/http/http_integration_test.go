//go:build integration

package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/catalog_site/internal/cache/memory"
	"github.com/Gunvolt24/catalog_site/internal/content"
	"github.com/Gunvolt24/catalog_site/internal/country"
	"github.com/Gunvolt24/catalog_site/internal/enquiry"
	pgrepo "github.com/Gunvolt24/catalog_site/internal/repo/postgres"
	"github.com/Gunvolt24/catalog_site/internal/sitemap"
	"github.com/Gunvolt24/catalog_site/internal/testutil"
	rest "github.com/Gunvolt24/catalog_site/internal/transport/http"
	"github.com/Gunvolt24/catalog_site/internal/usecase"
	"github.com/Gunvolt24/catalog_site/pkg/logger"
	"github.com/Gunvolt24/catalog_site/pkg/validate"
)

// POST /api/enquiry по реальному TCP: заявка проходит валидацию и ложится в Postgres.
func TestHTTP_Enquiry_StoredInPostgres_TC(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pg, stop, err := testutil.StartPostgresTC(ctx)
	require.NoError(t, err)
	defer func() { _ = stop(context.Background()) }()
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	defer func() { _ = cleanup() }()

	api := testutil.NewContentAPI()
	defer api.Close()
	seed(api)

	src, err := content.New(content.Config{BaseURL: api.URL(), Timeout: 2 * time.Second}, logg)
	require.NoError(t, err)
	mem := memory.NewLRUCacheTTL(100, time.Minute)
	site := usecase.NewSite(src, mem, logg, usecase.Options{})

	repo := pgrepo.NewLeadRepository(pg.Pool)
	h := rest.NewHandler(rest.Deps{
		Site:      site,
		Sitemaps:  sitemap.NewGenerator(site, mem, time.Minute, ""),
		Countries: country.NewService(api.URL()+"/countries", time.Second, mem, time.Hour, logg),
		Enquiries: enquiry.NewService(validate.NewEnquiryValidator(), logg, repo),
		Log:       logg,
	}, rest.Options{HandlerTimeout: 5 * time.Second})
	r, err := rest.NewRouter(h)
	require.NoError(t, err)

	ts := httptest.NewServer(r)
	defer ts.Close()

	payload := []byte(`{"name":"Ann","mobile":"98765 43210","country_code":"+91","captcha":true,"product":"Blaster A"}`)
	resp, err := http.Post(ts.URL+"/api/enquiry", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	leads, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, leads, 1)
	require.Equal(t, "9876543210", leads[0].Enquiry.Mobile)
	require.Equal(t, "Blaster A", leads[0].Enquiry.Product)

	// невалидная заявка не доходит до БД
	resp2, err := http.Post(ts.URL+"/api/enquiry", "application/json", bytes.NewReader([]byte(`{"name":"","mobile":"1","captcha":false}`)))
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusUnprocessableEntity, resp2.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&body))
	require.EqualValues(t, 422, body["status"])

	leads, err = repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, leads, 1)
}

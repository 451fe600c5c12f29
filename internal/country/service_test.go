package country_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/catalog_site/internal/cache/memory"
	"github.com/Gunvolt24/catalog_site/internal/content"
	"github.com/Gunvolt24/catalog_site/internal/country"
	"github.com/Gunvolt24/catalog_site/internal/domain"
	"github.com/Gunvolt24/catalog_site/pkg/logger"
)

func TestNormalize_FlatShape(t *testing.T) {
	body := `[
		{"name":"India","dial_code":"+91","code":"IN"},
		{"name":"Afghanistan","dial_code":"+93","code":"AF"},
		{"name":"Nowhere","dial_code":"","code":"XX"}
	]`
	got, err := country.Normalize([]byte(body))
	require.NoError(t, err)
	require.Equal(t, []domain.Country{
		{DialCode: "+93", Name: "Afghanistan"},
		{DialCode: "+91", Name: "India"},
	}, got)
}

func TestNormalize_IDDShape(t *testing.T) {
	body := `[
		{"name":{"common":"Germany"},"idd":{"root":"+4","suffixes":["9"]}},
		{"name":{"common":"United States"},"idd":{"root":"+1","suffixes":["201","202"]}},
		{"name":{"common":"Antarctica"},"idd":{}}
	]`
	got, err := country.Normalize([]byte(body))
	require.NoError(t, err)
	require.Equal(t, []domain.Country{
		{DialCode: "+49", Name: "Germany"},
		{DialCode: "+1", Name: "United States"},
	}, got)
}

func TestNormalize_Invalid(t *testing.T) {
	_, err := country.Normalize([]byte(`{"not":"a list"}`))
	require.Error(t, err)
}

func TestService_CachesAndDedupes(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		time.Sleep(20 * time.Millisecond)
		_, _ = w.Write([]byte(`[{"name":"India","dial_code":"+91"}]`))
	}))
	defer srv.Close()

	svc := country.NewService(srv.URL, time.Second, memory.NewLRUCacheTTL(0, 0), 24*time.Hour, logger.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			list, err := svc.List(context.Background())
			assert.NoError(t, err)
			assert.Len(t, list, 1)
		}()
	}
	wg.Wait()

	_, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, int32(1), hits.Load())
}

// Ушедший первый клиент не роняет запрос для тех, кто присоединился к нему.
func TestService_SharedFetchSurvivesCallerCancel(t *testing.T) {
	arrived := make(chan struct{})
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		close(arrived)
		<-release
		_, _ = w.Write([]byte(`[{"name":"India","dial_code":"+91"}]`))
	}))
	defer srv.Close()

	svc := country.NewService(srv.URL, 5*time.Second, memory.NewLRUCacheTTL(0, 0), time.Hour, logger.NewNop())

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstDone := make(chan struct{})
	go func() {
		defer close(firstDone)
		_, _ = svc.List(firstCtx)
	}()
	<-arrived

	type result struct {
		list []domain.Country
		err  error
	}
	second := make(chan result, 1)
	go func() {
		list, err := svc.List(context.Background())
		second <- result{list, err}
	}()
	time.Sleep(50 * time.Millisecond)

	cancelFirst()
	close(release)

	got := <-second
	require.NoError(t, got.err)
	require.Equal(t, []domain.Country{{DialCode: "+91", Name: "India"}}, got.list)
	<-firstDone
}

func TestService_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	svc := country.NewService(srv.URL, time.Second, memory.NewLRUCacheTTL(0, 0), time.Hour, logger.NewNop())
	_, err := svc.List(context.Background())

	var ue *content.UpstreamError
	require.ErrorAs(t, err, &ue)
	require.Equal(t, http.StatusBadGateway, ue.Status)
}

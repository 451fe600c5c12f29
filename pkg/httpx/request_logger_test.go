package httpx_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/catalog_site/pkg/httpx"
)

type recLogger struct {
	mu    sync.Mutex
	lines []string
}

func (r *recLogger) add(level, format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, level+" "+fmt.Sprintf(format, args...))
}

func (r *recLogger) Infof(_ context.Context, f string, a ...any)  { r.add("INFO", f, a...) }
func (r *recLogger) Warnf(_ context.Context, f string, a ...any)  { r.add("WARN", f, a...) }
func (r *recLogger) Errorf(_ context.Context, f string, a ...any) { r.add("ERROR", f, a...) }

func TestRequestLogger_LevelByStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := &recLogger{}

	r := gin.New()
	r.Use(httpx.RequestIDMiddleware(), httpx.ViewIDMiddleware(), httpx.RequestLogger(log))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/product/:slug", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/blog/:slug", func(c *gin.Context) { c.String(http.StatusNotFound, "nope") })
	r.GET("/broken", func(c *gin.Context) { c.String(http.StatusBadGateway, "upstream") })

	for _, path := range []string{"/ping", "/product/blaster?enquire=blaster", "/blog/missing", "/broken"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set(httpx.HeaderViewID, "v-1")
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	require.Len(t, log.lines, 3, "ping is not logged")
	require.Contains(t, log.lines[0], "INFO ")
	require.Contains(t, log.lines[0], "route=/product/:slug")
	require.Contains(t, log.lines[0], "/product/blaster?enquire=blaster")
	require.Contains(t, log.lines[0], "view=v-1")
	require.Contains(t, log.lines[1], "WARN ")
	require.Contains(t, log.lines[1], "status=404")
	require.Contains(t, log.lines[2], "ERROR ")
	require.Contains(t, log.lines[2], "status=502")
}

package httpx

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// BaseURL — origin сайта для канонических ссылок и sitemap.
// Если публичный URL задан конфигурацией — он приоритетнее заголовков запроса.
func BaseURL(r *http.Request, publicURL string) string {
	if publicURL != "" {
		return strings.TrimRight(publicURL, "/")
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
	}
	host := r.Host
	if fwd := r.Header.Get("X-Forwarded-Host"); fwd != "" {
		host = strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	return scheme + "://" + host
}

// FullURL — BaseURL + путь и query текущего запроса.
func FullURL(r *http.Request, publicURL string) string {
	return BaseURL(r, publicURL) + r.URL.RequestURI()
}

// Origin — middleware, кладёт base_url/full_url в gin.Context.
func Origin(publicURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("base_url", BaseURL(c.Request, publicURL))
		c.Set("full_url", FullURL(c.Request, publicURL))
		c.Next()
	}
}

package httpx

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/catalog_site/internal/ports"
	"github.com/Gunvolt24/catalog_site/pkg/ctxmeta"
)

// RequestLogger — access-лог страниц и API. Уровень зависит от статуса:
// 5xx → Errorf, 4xx → Warnf, остальное → Infof.
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		switch route {
		case "/metrics", "/ping", "/static/*filepath":
			return
		case "":
			route = c.Request.URL.Path
		}

		ctx := c.Request.Context()
		rid, _ := ctxmeta.RequestIDFromContext(ctx)
		view, _ := ctxmeta.ViewIDFromContext(ctx)
		tr, _ := ctxmeta.TraceIDFromContext(ctx)

		status := c.Writer.Status()
		logf := log.Infof
		switch {
		case status >= http.StatusInternalServerError:
			logf = log.Errorf
		case status >= http.StatusBadRequest:
			logf = log.Warnf
		}

		logf(ctx, "request id=%s view=%s trace=%s %s %s route=%s status=%d ip=%s took=%s bytes=%d",
			rid, view, tr,
			c.Request.Method, c.Request.URL.RequestURI(), route,
			status, c.ClientIP(), time.Since(start), c.Writer.Size(),
		)
	}
}

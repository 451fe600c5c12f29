package rest

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/catalog_site/internal/content"
	"github.com/Gunvolt24/catalog_site/internal/usecase"
	"github.com/Gunvolt24/catalog_site/internal/widget"
	"github.com/Gunvolt24/catalog_site/pkg/metrics"
	"github.com/Gunvolt24/catalog_site/web"
)

func loadTemplates() (*template.Template, error) {
	tmpl, err := template.New("site").Funcs(funcMap()).ParseFS(web.FS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		// HTML из CMS считается доверенным
		"safeHTML": func(s string) template.HTML { return template.HTML(s) }, //nolint:gosec
		"date": func(t *time.Time) string {
			if t == nil {
				return ""
			}
			return t.Format("January 2, 2006")
		},
		"modalProduct": func(m widget.Modal) widget.ProductRef {
			p, _ := m.Product()
			return p
		},
		"modalStatus": func(m widget.Modal) widget.StatusPayload {
			s, _ := m.Status()
			return s
		},
		"dict": dict,
	}
}

// dict — map из пар ключ/значение для передачи нескольких аргументов в {{template}}.
func dict(kv ...any) (map[string]any, error) {
	if len(kv)%2 != 0 {
		return nil, errors.New("dict: odd number of arguments")
	}
	m := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", kv[i])
		}
		m[k] = kv[i+1]
	}
	return m, nil
}

// errorView — данные error.html.
type errorView struct {
	usecase.Meta
	Status  int
	Message string
}

func routeRequest(c *gin.Context) usecase.RouteRequest {
	return usecase.RouteRequest{
		Slug:    c.Param("slug"),
		Query:   c.Request.URL.Query(),
		BaseURL: c.GetString("base_url"),
		FullURL: c.GetString("full_url"),
	}
}

// page — обработчик маршрута: загрузчик → шаблон; любая ошибка загрузки → error.html.
func page[T any](h *Handler, route, name string, load func(context.Context, usecase.RouteRequest) (T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := routeRequest(c)
		data, err := load(c.Request.Context(), req)
		if err != nil {
			h.renderError(c, route, req, err)
			return
		}
		metrics.PageRenders.WithLabelValues(route, strconv.Itoa(http.StatusOK)).Inc()
		c.HTML(http.StatusOK, name, data)
	}
}

// renderError — граница ошибок: NotFound → 404, таймаут → 504, ответ API 4xx/5xx → он же, иначе 500.
func (h *Handler) renderError(c *gin.Context, route string, req usecase.RouteRequest, err error) {
	ctx := c.Request.Context()
	status := content.StatusCode(err)
	if errors.Is(err, context.DeadlineExceeded) && status == http.StatusInternalServerError {
		status = http.StatusGatewayTimeout
	}

	switch {
	case status == http.StatusNotFound:
		h.log.Warnf(ctx, "page not found route=%s slug=%s: %v", route, req.Slug, err)
	case errors.Is(err, context.Canceled):
		h.log.Warnf(ctx, "page load canceled route=%s: %v", route, err)
	default:
		h.log.Errorf(ctx, "page load failed route=%s slug=%s status=%d: %v", route, req.Slug, status, err)
	}

	metrics.PageRenders.WithLabelValues(route, strconv.Itoa(status)).Inc()
	c.HTML(status, "error.html", errorView{
		Meta:    usecase.Meta{BaseURL: req.BaseURL, FullURL: req.FullURL},
		Status:  status,
		Message: errorMessage(status),
	})
}

func errorMessage(status int) string {
	switch status {
	case http.StatusNotFound:
		return "The page you are looking for could not be found."
	case http.StatusGatewayTimeout:
		return "The content service took too long to respond. Please try again."
	default:
		if text := http.StatusText(status); text != "" {
			return text
		}
		return "Something went wrong."
	}
}

func (h *Handler) notFound(c *gin.Context) {
	req := routeRequest(c)
	metrics.PageRenders.WithLabelValues("not-found", strconv.Itoa(http.StatusNotFound)).Inc()
	c.HTML(http.StatusNotFound, "error.html", errorView{
		Meta:    usecase.Meta{BaseURL: req.BaseURL, FullURL: req.FullURL},
		Status:  http.StatusNotFound,
		Message: errorMessage(http.StatusNotFound),
	})
}

// recovered — паника в обработчике → 500-страница вместо пустого ответа.
func (h *Handler) recovered(c *gin.Context, rec any) {
	h.log.Errorf(c.Request.Context(), "panic recovered path=%s: %v", c.Request.URL.Path, rec)
	c.HTML(http.StatusInternalServerError, "error.html", errorView{
		Meta:    usecase.Meta{BaseURL: c.GetString("base_url"), FullURL: c.GetString("full_url")},
		Status:  http.StatusInternalServerError,
		Message: errorMessage(http.StatusInternalServerError),
	})
	c.Abort()
}

package rest

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/catalog_site/internal/sitemap"
	"github.com/Gunvolt24/catalog_site/internal/usecase"
)

const xmlContentType = "application/xml; charset=utf-8"

func (h *Handler) sitemapXML(c *gin.Context) {
	h.serveSitemap(c, h.sitemaps.Sitemap)
}

func (h *Handler) imageSitemapXML(c *gin.Context) {
	h.serveSitemap(c, h.sitemaps.ImageSitemap)
}

func (h *Handler) serveSitemap(c *gin.Context, gen func(context.Context, string) ([]byte, error)) {
	body, err := gen(c.Request.Context(), c.GetString("base_url"))
	if err != nil {
		h.renderError(c, usecase.RouteSitemap, routeRequest(c), err)
		return
	}
	c.Data(http.StatusOK, xmlContentType, body)
}

func (h *Handler) robotsTxt(c *gin.Context) {
	c.String(http.StatusOK, sitemap.Robots(c.GetString("base_url")))
}

package rest

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/catalog_site/internal/content"
	"github.com/Gunvolt24/catalog_site/internal/domain"
	"github.com/Gunvolt24/catalog_site/internal/usecase"
	"github.com/Gunvolt24/catalog_site/internal/usecase/filter"
	"github.com/Gunvolt24/catalog_site/internal/widget"
	"github.com/Gunvolt24/catalog_site/pkg/ctxmeta"
	"github.com/Gunvolt24/catalog_site/pkg/metrics"
	"github.com/Gunvolt24/catalog_site/pkg/validate"
)

const (
	enquirySuccess  = "Thank you! Your enquiry has been received, we will get back to you shortly."
	enquiryDelivery = "We could not send your enquiry right now. Please try again later."
)

// listProducts — выборка фильтра; ответы вытесненных запросов того же X-View-ID → 409.
func (h *Handler) listProducts(c *gin.Context) {
	ctx := c.Request.Context()
	_, q := filter.Parse(c.Request.URL.Query(), h.site.PageLimit(), h.site.ListLimit())
	viewID, _ := ctxmeta.ViewIDFromContext(ctx)

	products, err := h.latest.Do(ctx, viewID, func(ctx context.Context) ([]domain.Product, error) {
		return h.site.ProductList(ctx, q)
	})
	switch {
	case errors.Is(err, filter.ErrSuperseded):
		c.JSON(http.StatusConflict, gin.H{"error": "superseded"})
		return
	case err != nil:
		status := content.StatusCode(err)
		h.log.Errorf(ctx, "product list failed view=%s status=%d: %v", viewID, status, err)
		c.JSON(status, gin.H{"status": status, "error": http.StatusText(status)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "data": products})
}

func (h *Handler) flushCache(c *gin.Context) {
	ctx := c.Request.Context()
	if token := h.opts.AdminToken; token != "" {
		got := c.GetHeader(HeaderAdminToken)
		if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			h.log.Warnf(ctx, "cache flush rejected: bad admin token ip=%s", c.ClientIP())
			c.JSON(http.StatusUnauthorized, gin.H{"status": http.StatusUnauthorized, "error": "unauthorized"})
			return
		}
	}
	if err := h.site.Flush(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": http.StatusInternalServerError, "error": "cache flush failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "message": "cache cleared"})
}

func (h *Handler) countryCodes(c *gin.Context) {
	ctx := c.Request.Context()
	list, err := h.countries.List(ctx)
	if err != nil {
		h.log.Errorf(ctx, "country codes failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"status": http.StatusBadGateway, "error": "country codes unavailable"})
		return
	}
	c.Header("Cache-Control", "public, max-age=3600")
	c.JSON(http.StatusOK, list)
}

// submitEnquiry — JSON-клиент получает статус в JSON; обычный POST формы —
// страницу контактов с открытой модалкой статуса.
func (h *Handler) submitEnquiry(c *gin.Context) {
	ctx := c.Request.Context()

	var e domain.Enquiry
	status, msg := http.StatusOK, enquirySuccess
	if err := c.ShouldBind(&e); err != nil {
		status, msg = http.StatusUnprocessableEntity, "malformed enquiry: "+err.Error()
		metrics.Enquiries.WithLabelValues("invalid").Inc()
	} else if lead, err := h.enquiries.Submit(ctx, &e, sourceURL(c)); err != nil {
		status, msg = enquiryFailure(err)
		h.log.Warnf(ctx, "enquiry rejected status=%d: %v", status, err)
	} else {
		h.log.Infof(ctx, "enquiry accepted lead=%s topic=%q", lead.ID, lead.Enquiry.Topic())
	}

	if wantsJSON(c) {
		if status == http.StatusOK {
			c.JSON(status, gin.H{"status": status, "success": msg})
		} else {
			c.JSON(status, gin.H{"status": status, "error": msg})
		}
		return
	}

	req := routeRequest(c)
	contact, err := h.site.Contact(ctx, req)
	if err != nil {
		h.renderError(c, usecase.RouteContact, req, err)
		return
	}
	contact.Subject = e.Subject
	contact.Modal = contact.Modal.Open(widget.Status(widget.StatusPayload{
		OK:      status == http.StatusOK,
		Code:    status,
		Message: msg,
	}))
	c.HTML(status, "contact.html", contact)
}

func enquiryFailure(err error) (int, string) {
	var verr *validate.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity, verr.Field + " " + verr.Reason
	case errors.Is(err, validate.ErrInvalidEnquiry):
		return http.StatusUnprocessableEntity, err.Error()
	default:
		return http.StatusBadGateway, enquiryDelivery
	}
}

func wantsJSON(c *gin.Context) bool {
	if strings.Contains(c.ContentType(), "json") {
		return true
	}
	return strings.Contains(c.GetHeader("Accept"), "application/json")
}

// sourceURL — страница, с которой отправлена форма.
func sourceURL(c *gin.Context) string {
	if ref := c.GetHeader("Referer"); ref != "" {
		return ref
	}
	return c.GetString("full_url")
}

package httpx

import (
	"github.com/Gunvolt24/catalog_site/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderViewID — идентификатор открытой страницы (вкладки), который фронтенд
// отправляет с запросами фильтрации товаров.
const HeaderViewID = "X-View-ID"

// RequestIDMiddleware:
// - принимает X-Request-ID от клиента или генерирует UUID
// - кладёт request_id в контекст
// - возвращает его в ответном заголовке X-Request-ID
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header("X-Request-ID", requestID)

		ctx := ctxmeta.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// ViewIDMiddleware — переносит X-View-ID (если есть) в контекст запроса.
func ViewIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if viewID := c.GetHeader(HeaderViewID); viewID != "" {
			c.Request = c.Request.WithContext(ctxmeta.WithViewID(c.Request.Context(), viewID))
		}
		c.Next()
	}
}

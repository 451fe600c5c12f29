package httpx

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// HandlerTimeout — дедлайн на обработку запроса; d <= 0 — без ограничения.
// Загрузчики страниц получают его через ctx и отменяют запросы к API.
func HandlerTimeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

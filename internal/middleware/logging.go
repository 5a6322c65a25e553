package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Logging writes one access log line per request.
func (m Middleware) Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		m.l.Infof(ctx, "%s %s status=%d duration_ms=%d remote_ip=%s",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(),
			time.Since(start).Milliseconds(), c.ClientIP())
	}
}

package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// AccessLog writes one line per request after it completes.
func (m Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		latency := time.Since(start)
		switch {
		case status >= 500:
			m.l.Errorf(ctx, "%s %s %d %s", c.Request.Method, c.Request.URL.Path, status, latency)
		case status >= 400:
			m.l.Warnf(ctx, "%s %s %d %s", c.Request.Method, c.Request.URL.Path, status, latency)
		default:
			m.l.Infof(ctx, "%s %s %d %s", c.Request.Method, c.Request.URL.Path, status, latency)
		}
	}
}

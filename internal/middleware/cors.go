package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ai-scheduler/pkg/response"
)

type corsPolicy struct {
	allowAll bool
	allowed  map[string]struct{}
}

func newCORSPolicy(allowedOrigins []string) corsPolicy {
	p := corsPolicy{allowed: make(map[string]struct{}, len(allowedOrigins))}
	for _, origin := range allowedOrigins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == "*" {
			p.allowAll = true
			continue
		}
		p.allowed[origin] = struct{}{}
	}
	return p
}

// CORS adds CORS headers for the configured allow-list. Credentials are
// allowed, so "*" echoes the request origin.
func (m Middleware) CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			c.Next()
			return
		}

		preflight := c.Request.Method == http.MethodOptions && c.GetHeader("Access-Control-Request-Method") != ""

		allowed := m.cors.allowAll
		if !allowed {
			_, allowed = m.cors.allowed[origin]
		}
		if !allowed {
			if preflight {
				response.Forbidden(c)
				c.Abort()
				return
			}
			c.Next()
			return
		}

		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", origin)
		h.Set("Access-Control-Allow-Credentials", "true")
		h.Add("Vary", "Origin")

		if preflight {
			h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Content-Type")
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

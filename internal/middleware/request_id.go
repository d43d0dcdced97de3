package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ai-scheduler/pkg/log"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags the request context with an id the logger prints. An
// incoming X-Request-ID is kept.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}

		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), log.RequestIDKey{}, id))
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

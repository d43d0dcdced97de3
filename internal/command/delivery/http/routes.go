package http

import (
	"github.com/gin-gonic/gin"

	"ai-scheduler/internal/middleware"
)

// RegisterRoutes maps the scheduling API under rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/parse", h.Parse)
	rg.POST("/parse/ics", h.ParseICS)
	rg.POST("/schedule", mw.Auth(), h.Schedule)
	rg.GET("/history", mw.OptionalAuth(), h.History)
}

package http

import (
	"github.com/gin-gonic/gin"

	"ai-scheduler/internal/middleware"
)

// RegisterRoutes maps the OAuth web flow under rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/start", h.Start)
	rg.GET("/callback", h.Callback)
	rg.GET("/me", mw.OptionalAuth(), h.Me)
	rg.POST("/logout", h.Logout)
}

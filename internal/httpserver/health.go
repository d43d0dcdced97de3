package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ai-scheduler/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "AI Scheduler is running"
	HealthVersion = "1.0.0"
	ServiceName   = "ai-scheduler"

	readyTimeout = 2 * time.Second
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports ready once the database (when configured) answers a ping.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "Database unreachable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.postgresDB != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
		defer cancel()
		if err := srv.postgresDB.Ping(ctx); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck: postgres ping: %v", err)
			c.JSON(http.StatusServiceUnavailable, response.Resp{
				ErrorCode: http.StatusServiceUnavailable,
				Message:   "database unavailable",
				Data:      gin.H{"status": "not_ready", "service": ServiceName},
			})
			return
		}
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

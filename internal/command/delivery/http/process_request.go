package http

import "github.com/gin-gonic/gin"

// processParseReq binds the parse request body.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

// processScheduleReq binds the schedule request body.
func (h *handler) processScheduleReq(c *gin.Context) (scheduleReq, error) {
	var req scheduleReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

// processHistoryReq binds the history query parameters.
func (h *handler) processHistoryReq(c *gin.Context) (historyReq, error) {
	var req historyReq
	err := c.ShouldBindQuery(&req)
	return req, err
}

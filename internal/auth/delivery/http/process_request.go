package http

import "github.com/gin-gonic/gin"

// processCallbackReq binds the query Google appends to the redirect URI.
func (h *handler) processCallbackReq(c *gin.Context) (callbackReq, error) {
	var req callbackReq
	err := c.ShouldBindQuery(&req)
	return req, err
}

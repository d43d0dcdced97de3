package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-scheduler/internal/auth"
	"ai-scheduler/internal/model"
	"ai-scheduler/pkg/response"
)

// Start godoc
// @Summary     Begin Google sign-in
// @Description Returns the Google consent page URL carrying a single-use state.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} startResp
// @Router      /auth/start [GET]
func (h *handler) Start(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Start(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Start: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStartResp(output))
}

// Callback godoc
// @Summary     Google OAuth redirect target
// @Description Exchanges the code, stores the user and sets the session cookie.
// @Tags        Auth
// @Param       code  query string true "Authorization code"
// @Param       state query string true "State issued by /auth/start"
// @Success     302
// @Failure     400 {object} response.Resp "Missing code or invalid state"
// @Failure     502 {object} response.Resp "Google rejected the exchange"
// @Router      /auth/callback [GET]
func (h *handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCallbackReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Callback(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Callback: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	if err := h.mw.SetSession(c, output.User.ID); err != nil {
		h.l.Errorf(ctx, "mw.SetSession: %v", err)
		response.InternalError(c, err)
		return
	}

	c.Redirect(http.StatusFound, h.baseURL)
}

// Me godoc
// @Summary     Current account
// @Tags        Auth
// @Produce     json
// @Success     200 {object} meResp
// @Failure     401 {object} response.Resp
// @Router      /auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()
	sc := model.GetScopeFromContext(ctx)

	output, err := h.uc.Me(ctx, sc)
	if errors.Is(err, auth.ErrNotAuthenticated) {
		response.Unauthorized(c, meResp{Authenticated: false})
		return
	}
	if err != nil {
		h.l.Errorf(ctx, "uc.Me: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMeResp(output))
}

// Logout godoc
// @Summary     Sign out
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	h.mw.ClearSession(c)
	response.OK(c, nil)
}

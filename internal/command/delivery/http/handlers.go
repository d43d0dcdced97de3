package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-scheduler/internal/model"
	"ai-scheduler/pkg/response"
)

const icsContentType = "text/calendar; charset=utf-8"

// Parse godoc
// @Summary     Parse a scheduling command
// @Description Extracts title, start/end, timezone and attendees from free text.
// @Tags        Command
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Command"
// @Success     200 {object} response.Resp{data=nlp.ParseResult}
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Parse(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Parse: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, output.Result)
}

// ParseICS godoc
// @Summary     Parse a command into an iCalendar event
// @Tags        Command
// @Accept      json
// @Produce     text/calendar
// @Param       body body parseReq true "Command"
// @Success     200 {string} string "VCALENDAR document"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/parse/ics [POST]
func (h *handler) ParseICS(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ParseICS(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.ParseICS: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="event.ics"`)
	c.Data(http.StatusOK, icsContentType, output.Data)
}

// Schedule godoc
// @Summary     Schedule a command in Google Calendar
// @Description Parses the command and creates the event with a Meet link in the signed-in user's calendar.
// @Tags        Command
// @Accept      json
// @Produce     json
// @Param       body body scheduleReq true "Command"
// @Success     200 {object} response.Resp{data=scheduleResp}
// @Failure     401 {object} response.Resp "Not authenticated"
// @Failure     502 {object} response.Resp "Google Calendar error"
// @Router      /api/schedule [POST]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()
	sc := model.GetScopeFromContext(ctx)

	req, err := h.processScheduleReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Schedule(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Schedule: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newScheduleResp(output))
}

// History godoc
// @Summary     Recently scheduled events
// @Tags        Command
// @Produce     json
// @Param       limit query int false "Number of events (default 10, max 50)"
// @Success     200 {object} response.Resp{data=historyResp}
// @Router      /api/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()
	sc := model.GetScopeFromContext(ctx)

	req, err := h.processHistoryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.History(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newHistoryResp(output))
}

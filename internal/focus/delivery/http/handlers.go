package http

import (
	"github.com/gin-gonic/gin"

	"personal-task-management/internal/middleware"
	"personal-task-management/pkg/response"
)

// Start godoc
// @Summary     Start a focus session
// @Description Begins a timed focus session, optionally linked to a task.
// @Tags        Focus
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body startReq false "Session data"
// @Success     200 {object} startResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/focus/sessions [POST]
func (h *handler) Start(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processStartReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Start(ctx, middleware.ScopeFromContext(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Start: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStartResp(output))
}

// End godoc
// @Summary     End a focus session
// @Description Closes a running session and credits its minutes to today's focus total.
// @Tags        Focus
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Session ID"
// @Success     200 {object} endResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Already Ended"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/focus/sessions/{id}/end [POST]
func (h *handler) End(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	output, err := h.uc.End(ctx, middleware.ScopeFromContext(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.End: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newEndResp(output))
}

// Interrupt godoc
// @Summary     Record an interruption
// @Description Increments the interruption counter of a running session.
// @Tags        Focus
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Session ID"
// @Success     200 {object} interruptResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Already Ended"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/focus/sessions/{id}/interrupt [POST]
func (h *handler) Interrupt(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	output, err := h.uc.Interrupt(ctx, middleware.ScopeFromContext(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Interrupt: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newInterruptResp(output))
}

// List godoc
// @Summary     List focus sessions
// @Description Returns the user's sessions, newest first.
// @Tags        Focus
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       task_id query string false "Filter by task"
// @Param       limit   query int    false "Page size (default: 20, max: 100)"
// @Param       offset  query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/focus/sessions [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, middleware.ScopeFromContext(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

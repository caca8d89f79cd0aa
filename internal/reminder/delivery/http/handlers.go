package http

import (
	"github.com/gin-gonic/gin"

	"personal-task-management/internal/middleware"
	"personal-task-management/pkg/response"
)

// Create godoc
// @Summary     Create a reminder
// @Description Schedules a notification for one of the user's tasks.
// @Tags        Reminder
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Reminder data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Task Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/reminders [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, middleware.ScopeFromContext(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List reminders
// @Description Returns the user's reminders, soonest first.
// @Tags        Reminder
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       task_id query string false "Filter by task"
// @Param       sent    query bool   false "Filter by sent state"
// @Param       limit   query int    false "Page size (default: 20, max: 100)"
// @Param       offset  query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/reminders [GET]
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

// Delete godoc
// @Summary     Delete a reminder
// @Description Permanently removes a reminder by ID.
// @Tags        Reminder
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Reminder ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/reminders/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	if err := h.uc.Delete(ctx, middleware.ScopeFromContext(c), id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// CollectDue godoc
// @Summary     Collect due reminders
// @Description Returns due unsent reminders and marks them sent. Driven by
// @Description client polling; each reminder is delivered at most once.
// @Tags        Reminder
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} dueResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/reminders/due [POST]
func (h *handler) CollectDue(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.CollectDue(ctx, middleware.ScopeFromContext(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.CollectDue: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDueResp(output))
}

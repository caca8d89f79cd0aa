package http

import (
	"github.com/gin-gonic/gin"

	"personal-task-management/internal/middleware"
	"personal-task-management/pkg/response"
)

// Metrics godoc
// @Summary     Productivity metrics
// @Description Aggregates the user's trailing daily stats into percentage rates.
// @Tags        Insight
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       days query int false "Trailing window in days (default: 14, max: 90)"
// @Success     200 {object} metricsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/insights/metrics [GET]
func (h *handler) Metrics(c *gin.Context) {
	ctx := c.Request.Context()

	var req metricsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Metrics(ctx, middleware.ScopeFromContext(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Metrics: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMetricsResp(output))
}

// Suggestions godoc
// @Summary     Personalized suggestions
// @Description Derives suggestions from the user's recent tasks. Computed fresh per request.
// @Tags        Insight
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} suggestionsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/insights/suggestions [GET]
func (h *handler) Suggestions(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Suggestions(ctx, middleware.ScopeFromContext(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Suggestions: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSuggestionsResp(output))
}

// Tips godoc
// @Summary     Productivity tips
// @Description Returns the day's rotation of the static tip catalog.
// @Tags        Insight
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} tipsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/insights/tips [GET]
func (h *handler) Tips(c *gin.Context) {
	output := h.uc.Tips(c.Request.Context())
	response.OK(c, h.newTipsResp(output))
}

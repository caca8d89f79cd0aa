package http

import (
	"github.com/gin-gonic/gin"

	"personal-task-management/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes are protected by the Auth middleware.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	insights := rg.Group("/insights")
	{
		insights.GET("/metrics", mw.Auth(), h.Metrics)
		insights.GET("/suggestions", mw.Auth(), h.Suggestions)
		insights.GET("/tips", mw.Auth(), h.Tips)
	}
}

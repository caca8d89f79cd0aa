package http

import (
	"github.com/gin-gonic/gin"

	"personal-task-management/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes are protected by the Auth middleware.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	reminders := rg.Group("/reminders")
	{
		reminders.POST("", mw.Auth(), h.Create)
		reminders.GET("", mw.Auth(), h.List)
		reminders.DELETE("/:id", mw.Auth(), h.Delete)
		reminders.POST("/due", mw.Auth(), h.CollectDue)
	}
}

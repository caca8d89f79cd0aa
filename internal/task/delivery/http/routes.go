package http

import (
	"github.com/gin-gonic/gin"

	"personal-task-management/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes are protected by the Auth middleware.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", mw.Auth(), h.Create)
		tasks.POST("/voice", mw.Auth(), h.CreateFromVoice)
		tasks.POST("/parse", mw.Auth(), h.Parse)
		tasks.GET("", mw.Auth(), h.List)
		tasks.GET("/:id", mw.Auth(), h.Detail)
		tasks.PUT("/:id", mw.Auth(), h.Update)
		tasks.DELETE("/:id", mw.Auth(), h.Delete)
		tasks.POST("/:id/toggle", mw.Auth(), h.ToggleCompletion)
		tasks.PATCH("/:id/status", mw.Auth(), h.UpdateStatus)
	}
}

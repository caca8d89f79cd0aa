package http

import (
	"github.com/gin-gonic/gin"

	"personal-task-management/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes are protected by the Auth middleware.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sessions := rg.Group("/focus/sessions")
	{
		sessions.POST("", mw.Auth(), h.Start)
		sessions.GET("", mw.Auth(), h.List)
		sessions.POST("/:id/end", mw.Auth(), h.End)
		sessions.POST("/:id/interrupt", mw.Auth(), h.Interrupt)
	}
}

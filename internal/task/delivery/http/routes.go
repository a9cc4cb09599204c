package http

import (
	"github.com/gin-gonic/gin"

	"enrollment-assistant/internal/middleware"
)

// RegisterRoutes maps task endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.Scope())
	{
		tasks.POST("/email", h.SubmitEmail)
		tasks.POST("/bulk-email", h.SubmitBulkEmail)
		tasks.POST("/clear", h.ClearCompleted)
		tasks.GET("/events", h.Events)
		tasks.GET("", h.List)
		tasks.GET("/:id", h.Detail)
		tasks.DELETE("/:id", h.Cancel)
	}
}

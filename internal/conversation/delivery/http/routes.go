package http

import (
	"github.com/gin-gonic/gin"

	"enrollment-assistant/internal/middleware"
)

// RegisterRoutes maps conversation endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	conversations := rg.Group("/conversations", mw.Scope())
	{
		conversations.GET("/:surface", h.Detail)
		conversations.DELETE("/:surface", h.Clear)
	}
}

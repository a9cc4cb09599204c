package http

import (
	"github.com/gin-gonic/gin"

	"enrollment-assistant/internal/middleware"
)

// RegisterRoutes maps chat endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/chat/:surface", mw.Scope(), h.Send)
}

package http

import (
	"github.com/gin-gonic/gin"

	"enrollment-assistant/internal/conversation"
)

type surfaceReq struct {
	Surface string `uri:"surface" binding:"required"`
}

func (r surfaceReq) validate() error {
	if !conversation.Surface(r.Surface).Valid() {
		return conversation.ErrUnknownSurface
	}
	return nil
}

func (h *handler) processSurfaceReq(c *gin.Context) (conversation.Surface, error) {
	var req surfaceReq
	if err := c.ShouldBindUri(&req); err != nil {
		return "", err
	}
	if err := req.validate(); err != nil {
		return "", h.mapError(err)
	}
	return conversation.Surface(req.Surface), nil
}

package http

import (
	"github.com/gin-gonic/gin"

	"enrollment-assistant/pkg/response"
)

// Detail godoc
// @Summary     Get conversation
// @Description Returns the persisted history and session of a chat surface.
// @Tags        Conversation
// @Produce     json
// @Param       surface path string true "Surface (general, email)"
// @Success     200 {object} conversationResp
// @Failure     404 {object} response.Resp "Unknown surface"
// @Router      /api/v1/conversations/{surface} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	surface, err := h.processSurfaceReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	conv, err := h.store.Load(ctx, surface)
	if err != nil {
		h.l.Errorf(ctx, "store.Load: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newConversationResp(surface, conv))
}

// Clear godoc
// @Summary     Clear conversation
// @Description Resets a surface to its welcome message and asks the backend to drop its history.
// @Tags        Conversation
// @Produce     json
// @Param       surface path string true "Surface (general, email)"
// @Success     200 {object} conversationResp
// @Failure     404 {object} response.Resp "Unknown surface"
// @Router      /api/v1/conversations/{surface} [DELETE]
func (h *handler) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	surface, err := h.processSurfaceReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	conv, err := h.store.Clear(ctx, surface)
	if err != nil {
		h.l.Errorf(ctx, "store.Clear: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newConversationResp(surface, conv))
}

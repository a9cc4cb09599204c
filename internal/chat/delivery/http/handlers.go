package http

import (
	"github.com/gin-gonic/gin"

	"enrollment-assistant/internal/model"
	"enrollment-assistant/pkg/response"
)

// Send godoc
// @Summary     Send a chat message
// @Description Answers from the response cache when the surface has no prior turns, otherwise asks the backend.
// @Description A backend failure still returns 200 with an apology reply and failed=true.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       surface   path   string  true  "Surface (general, email)"
// @Param       X-User-ID header string  false "Caller identity"
// @Param       body      body   sendReq true  "Message"
// @Success     200 {object} sendResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Unknown surface"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/{surface} [POST]
func (h *handler) Send(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	sc := model.GetScopeFromContext(ctx)
	output, err := h.uc.Send(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Send: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSendResp(output))
}

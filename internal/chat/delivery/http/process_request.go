package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processSendReq(c *gin.Context) (sendReq, error) {
	var req sendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.Surface = c.Param("surface")
	return req, req.validate()
}

package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processSubmitEmailReq(c *gin.Context) (submitEmailReq, error) {
	var req submitEmailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	return req, req.validate()
}

func (h *handler) processSubmitBulkReq(c *gin.Context) (submitBulkReq, error) {
	var req submitBulkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	return req, req.validate()
}

func (h *handler) processIDReq(c *gin.Context) (string, error) {
	var req idReq
	if err := c.ShouldBindUri(&req); err != nil {
		return "", errMissingID
	}
	return req.ID, nil
}

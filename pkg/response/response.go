package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "enrollment-assistant/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Accepted sends 202 JSON with data, used when work continues in the background.
func Accepted(c *gin.Context, data any) {
	c.JSON(http.StatusAccepted, NewOKResp(data))
}

// Error sends an error response. HTTPErrors keep their status code and message,
// anything else is a 400 with the raw error text.
func Error(c *gin.Context, err error) {
	code := pkgErrors.StatusCode(err)
	if code >= http.StatusInternalServerError {
		InternalError(c, err)
		return
	}

	c.JSON(code, Resp{
		ErrorCode: code,
		Message:   err.Error(),
	})
}

// InternalError sends 500 internal server error. The cause is never echoed.
func InternalError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// BadGateway sends 502 when the job backend rejected a forwarded call.
func BadGateway(c *gin.Context, message string) {
	c.JSON(http.StatusBadGateway, Resp{
		ErrorCode: http.StatusBadGateway,
		Message:   message,
	})
}

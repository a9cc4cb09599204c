package errors

import (
	"errors"
	"net/http"
)

// HTTPError is a domain error already translated to a transport status code.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

var ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")

// StatusCode returns the status carried by err, or 400 for plain errors.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	return http.StatusBadRequest
}

package http

import (
	"errors"
	"net/http"

	"enrollment-assistant/internal/conversation"
	pkgErrors "enrollment-assistant/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, conversation.ErrUnknownSurface):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

package http

import (
	"errors"
	"net/http"

	"enrollment-assistant/internal/chat"
	pkgErrors "enrollment-assistant/pkg/errors"
)

var errEmptyMessage = pkgErrors.NewHTTPError(http.StatusBadRequest, chat.ErrEmptyMessage.Error())

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		return errEmptyMessage
	case errors.Is(err, chat.ErrUnknownSurface):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

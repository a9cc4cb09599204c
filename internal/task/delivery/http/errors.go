package http

import (
	"errors"
	"net/http"

	"enrollment-assistant/internal/task"
	pkgErrors "enrollment-assistant/pkg/errors"
)

var (
	errInvalidBody   = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	errMissingID     = pkgErrors.NewHTTPError(http.StatusBadRequest, "task id is required")
	errInvalidTarget = pkgErrors.NewHTTPError(http.StatusBadRequest, task.ErrInvalidTarget.Error())
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrInvalidTarget):
		return errInvalidTarget
	case errors.Is(err, task.ErrInvalidCount), errors.Is(err, task.ErrInvalidKind):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, task.ErrRateLimited):
		return pkgErrors.NewHTTPError(http.StatusTooManyRequests, err.Error())
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, task.ErrTaskFinished):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, task.ErrClosed):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

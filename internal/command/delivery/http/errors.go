package http

import (
	"errors"
	"net/http"

	"ai-scheduler/internal/command"
	pkgErrors "ai-scheduler/pkg/errors"
)

// mapError translates command use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, command.ErrEmptyCommand):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, command.ErrEmptyCommand.Error())
	case errors.Is(err, command.ErrInvalidTimezone):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, command.ErrNotAuthenticated):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	case errors.Is(err, command.ErrCredentialsInvalid):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, command.ErrCredentialsInvalid.Error())
	case errors.Is(err, command.ErrCalendarFailed):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, err.Error())
	case errors.Is(err, command.ErrSchedulingUnavailable):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, command.ErrSchedulingUnavailable.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

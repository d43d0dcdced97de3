package http

import (
	"errors"
	"net/http"

	"ai-scheduler/internal/auth"
	pkgErrors "ai-scheduler/pkg/errors"
)

// mapError translates auth use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrMissingCode):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "missing authorization code")
	case errors.Is(err, auth.ErrInvalidState):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, auth.ErrInvalidState.Error())
	case errors.Is(err, auth.ErrExchangeFailed), errors.Is(err, auth.ErrUserInfoFailed):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, err.Error())
	case errors.Is(err, auth.ErrNotAuthenticated):
		return pkgErrors.ErrUnauthorized
	default:
		return pkgErrors.ErrInternalServerError
	}
}

package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is an error that carries the HTTP status it should be rendered with.
type HTTPError struct {
	StatusCode int
	Message    string
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "bad request")
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "unauthorized")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "not found")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
)

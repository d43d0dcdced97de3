package auth

import "errors"

// Domain-specific errors for the auth package.
var (
	ErrMissingCode      = errors.New("authorization code is missing")
	ErrInvalidState     = errors.New("oauth state is invalid or expired")
	ErrExchangeFailed   = errors.New("failed to exchange authorization code")
	ErrUserInfoFailed   = errors.New("failed to read google account")
	ErrNotAuthenticated = errors.New("not authenticated")
)

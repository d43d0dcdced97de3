package command

import "errors"

// Domain-specific errors for the command package.
var (
	ErrEmptyCommand          = errors.New("command is required")
	ErrInvalidTimezone       = errors.New("unknown time zone")
	ErrNotAuthenticated      = errors.New("not authenticated")
	ErrCredentialsInvalid    = errors.New("stored google credentials are unusable, sign in again")
	ErrCalendarFailed        = errors.New("google calendar rejected the event")
	ErrSchedulingUnavailable = errors.New("scheduling is not configured")
)

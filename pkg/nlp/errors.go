package nlp

import "errors"

var (
	ErrInvalidTimezone = errors.New("invalid timezone")
	ErrInvalidConfig   = errors.New("invalid parser config")
)

package http

import (
	"ai-scheduler/internal/command"
	"ai-scheduler/pkg/log"
)

type handler struct {
	l  log.Logger
	uc command.UseCase
}

// New creates a new HTTP handler for the command domain.
func New(l log.Logger, uc command.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

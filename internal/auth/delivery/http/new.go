package http

import (
	"ai-scheduler/internal/auth"
	"ai-scheduler/internal/middleware"
	"ai-scheduler/pkg/log"
)

type handler struct {
	l       log.Logger
	uc      auth.UseCase
	mw      middleware.Middleware
	baseURL string
}

// New creates a new HTTP handler for the auth domain. Successful sign-ins
// are redirected to baseURL.
func New(l log.Logger, uc auth.UseCase, mw middleware.Middleware, baseURL string) *handler {
	return &handler{
		l:       l,
		uc:      uc,
		mw:      mw,
		baseURL: baseURL,
	}
}

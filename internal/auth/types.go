package auth

import "ai-scheduler/internal/model"

type StartOutput struct {
	URL   string
	State string
}

type CallbackInput struct {
	Code  string
	State string
}

type CallbackOutput struct {
	User model.User
}

type MeOutput struct {
	Email string
}

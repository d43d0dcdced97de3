package command

import (
	"ai-scheduler/internal/model"
	"ai-scheduler/pkg/nlp"
)

const (
	DefaultHistoryLimit = 10
	MaxHistoryLimit     = 50
)

type ParseInput struct {
	Command  string
	TimeZone string
}

type ParseOutput struct {
	Result nlp.ParseResult
}

type ICSOutput struct {
	Result nlp.ParseResult
	Data   []byte
}

type ScheduleInput struct {
	Command string
}

type ScheduleOutput struct {
	Event     model.ScheduledEvent
	Attendees []string
}

type HistoryInput struct {
	Limit int
}

type HistoryOutput struct {
	Events []model.ScheduledEvent
}

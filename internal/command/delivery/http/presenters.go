package http

import (
	"time"

	"ai-scheduler/internal/command"
	"ai-scheduler/internal/model"
)

// --- Request DTOs ---

type parseReq struct {
	Command  string `json:"command"`
	TimeZone string `json:"time_zone"`
}

func (r parseReq) toInput() command.ParseInput {
	return command.ParseInput{Command: r.Command, TimeZone: r.TimeZone}
}

type scheduleReq struct {
	Command string `json:"command"`
}

func (r scheduleReq) toInput() command.ScheduleInput {
	return command.ScheduleInput{Command: r.Command}
}

type historyReq struct {
	Limit int `form:"limit"`
}

func (r historyReq) toInput() command.HistoryInput {
	return command.HistoryInput{Limit: r.Limit}
}

// --- Response DTOs ---

type scheduleResp struct {
	EventID   string    `json:"event_id"`
	HtmlLink  string    `json:"html_link"`
	MeetLink  string    `json:"meet_link"`
	Summary   string    `json:"summary"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Attendees []string  `json:"attendees"`
}

type eventResp struct {
	ID              string    `json:"id"`
	GoogleEventID   string    `json:"google_event_id"`
	Summary         string    `json:"summary"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	TimeZone        string    `json:"time_zone"`
	MeetLink        string    `json:"meet_link"`
	HtmlLink        string    `json:"html_link"`
	AttendeesCount  int       `json:"attendees_count"`
	OriginalCommand string    `json:"original_command"`
	CreatedAt       time.Time `json:"created_at"`
}

type historyResp struct {
	Events []eventResp `json:"events"`
}

func (h *handler) newScheduleResp(o command.ScheduleOutput) scheduleResp {
	attendees := o.Attendees
	if attendees == nil {
		attendees = []string{}
	}
	return scheduleResp{
		EventID:   o.Event.GoogleEventID,
		HtmlLink:  o.Event.HtmlLink,
		MeetLink:  o.Event.MeetLink,
		Summary:   o.Event.Summary,
		Start:     o.Event.StartTime,
		End:       o.Event.EndTime,
		Attendees: attendees,
	}
}

func (h *handler) newHistoryResp(o command.HistoryOutput) historyResp {
	events := make([]eventResp, 0, len(o.Events))
	for _, e := range o.Events {
		events = append(events, toEventResp(e))
	}
	return historyResp{Events: events}
}

func toEventResp(e model.ScheduledEvent) eventResp {
	return eventResp{
		ID:              e.ID,
		GoogleEventID:   e.GoogleEventID,
		Summary:         e.Summary,
		StartTime:       e.StartTime,
		EndTime:         e.EndTime,
		TimeZone:        e.TimeZone,
		MeetLink:        e.MeetLink,
		HtmlLink:        e.HtmlLink,
		AttendeesCount:  e.AttendeesCount,
		OriginalCommand: e.OriginalCommand,
		CreatedAt:       e.CreatedAt,
	}
}

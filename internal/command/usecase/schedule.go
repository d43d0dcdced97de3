package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/oauth2"

	authrepo "ai-scheduler/internal/auth/repository"
	"ai-scheduler/internal/command"
	"ai-scheduler/internal/command/repository"
	"ai-scheduler/internal/model"
	"ai-scheduler/pkg/gauth"
	"ai-scheduler/pkg/gcalendar"
	"ai-scheduler/pkg/nlp"
)

func (uc *implUseCase) Schedule(ctx context.Context, sc model.Scope, input command.ScheduleInput) (command.ScheduleOutput, error) {
	if !uc.canSchedule() {
		return command.ScheduleOutput{}, command.ErrSchedulingUnavailable
	}
	if !sc.Authenticated() {
		return command.ScheduleOutput{}, command.ErrNotAuthenticated
	}
	if strings.TrimSpace(input.Command) == "" {
		return command.ScheduleOutput{}, command.ErrEmptyCommand
	}

	tok, err := uc.userToken(ctx, sc)
	if err != nil {
		return command.ScheduleOutput{}, err
	}

	result, err := uc.parse(ctx, input.Command, "")
	if err != nil {
		return command.ScheduleOutput{}, err
	}

	creator, err := uc.calendar.Calendar(ctx, tok)
	if err != nil {
		uc.l.Errorf(ctx, "command.usecase.Schedule: calendar client: %v", err)
		return command.ScheduleOutput{}, fmt.Errorf("%w: %v", command.ErrCalendarFailed, err)
	}

	ev, err := creator.CreateEvent(ctx, uc.buildEventRequest(result))
	if err != nil {
		uc.l.Errorf(ctx, "command.usecase.Schedule: create event: %v", err)
		return command.ScheduleOutput{}, fmt.Errorf("%w: %v", command.ErrCalendarFailed, err)
	}

	opt := repository.CreateEventOptions{
		UserID:          sc.UserID,
		GoogleEventID:   ev.ID,
		Summary:         ev.Summary,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		TimeZone:        result.TimeZone,
		MeetLink:        ev.MeetLink,
		HtmlLink:        ev.HtmlLink,
		AttendeesCount:  len(result.Attendees),
		OriginalCommand: result.OriginalCommand,
	}
	if opt.Summary == "" {
		opt.Summary = result.Summary
	}

	rec, err := uc.repo.CreateEvent(ctx, opt)
	if err != nil {
		// The event already exists in the calendar.
		uc.l.Errorf(ctx, "command.usecase.Schedule: record event %s: %v", ev.ID, err)
		rec = model.ScheduledEvent{
			UserID:          opt.UserID,
			GoogleEventID:   opt.GoogleEventID,
			Summary:         opt.Summary,
			StartTime:       opt.StartTime,
			EndTime:         opt.EndTime,
			TimeZone:        opt.TimeZone,
			MeetLink:        opt.MeetLink,
			HtmlLink:        opt.HtmlLink,
			AttendeesCount:  opt.AttendeesCount,
			OriginalCommand: opt.OriginalCommand,
		}
	}

	uc.l.Infof(ctx, "command.usecase.Schedule: created event %s for user %s", ev.ID, sc.UserID)
	return command.ScheduleOutput{Event: rec, Attendees: result.Attendees}, nil
}

// userToken loads and decrypts the OAuth token stored for the scope's user.
func (uc *implUseCase) userToken(ctx context.Context, sc model.Scope) (*oauth2.Token, error) {
	user, err := uc.users.GetUser(ctx, authrepo.GetUserOptions{ID: sc.UserID})
	if err != nil {
		return nil, err
	}
	if user.ID == "" || !user.IsActive {
		return nil, command.ErrNotAuthenticated
	}

	raw, err := uc.encrypter.DecryptString(user.RefreshTokenEncrypted)
	if err != nil {
		uc.l.Warnf(ctx, "command.usecase.userToken: decrypt token of user %s: %v", user.ID, err)
		return nil, command.ErrCredentialsInvalid
	}
	tok, err := gauth.UnmarshalToken(raw)
	if err != nil {
		uc.l.Warnf(ctx, "command.usecase.userToken: %v", err)
		return nil, command.ErrCredentialsInvalid
	}
	return tok, nil
}

func (uc *implUseCase) buildEventRequest(result nlp.ParseResult) gcalendar.CreateEventRequest {
	return gcalendar.CreateEventRequest{
		CalendarID:      uc.calOpts.CalendarID,
		Summary:         result.Summary,
		Description:     result.OriginalCommand,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		Timezone:        result.TimeZone,
		Attendees:       result.Attendees,
		CreateMeet:      uc.calOpts.CreateMeet,
		ReminderMinutes: uc.calOpts.ReminderMinutes,
		SendUpdates:     uc.calOpts.SendUpdates,
	}
}

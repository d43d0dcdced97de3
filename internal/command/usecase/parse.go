package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"ai-scheduler/internal/command"
	"ai-scheduler/pkg/ics"
	"ai-scheduler/pkg/nlp"
)

func (uc *implUseCase) Parse(ctx context.Context, input command.ParseInput) (command.ParseOutput, error) {
	result, err := uc.parse(ctx, input.Command, input.TimeZone)
	if err != nil {
		return command.ParseOutput{}, err
	}
	return command.ParseOutput{Result: result}, nil
}

func (uc *implUseCase) ParseICS(ctx context.Context, input command.ParseInput) (command.ICSOutput, error) {
	result, err := uc.parse(ctx, input.Command, input.TimeZone)
	if err != nil {
		return command.ICSOutput{}, err
	}

	var buf bytes.Buffer
	err = ics.Encode(&buf, uc.clock.Now(), ics.Event{
		Summary:     result.Summary,
		Description: result.OriginalCommand,
		Start:       result.StartTime,
		End:         result.EndTime,
		Attendees:   result.Attendees,
	})
	if err != nil {
		uc.l.Errorf(ctx, "command.usecase.ParseICS: %v", err)
		return command.ICSOutput{}, err
	}
	return command.ICSOutput{Result: result, Data: buf.Bytes()}, nil
}

func (uc *implUseCase) parse(ctx context.Context, cmd, timezone string) (nlp.ParseResult, error) {
	result, err := uc.parser.ParseIn(cmd, timezone)
	if errors.Is(err, nlp.ErrInvalidTimezone) {
		return nlp.ParseResult{}, fmt.Errorf("%w: %q", command.ErrInvalidTimezone, timezone)
	}
	if err != nil {
		uc.l.Errorf(ctx, "command.usecase.parse: %v", err)
		return nlp.ParseResult{}, err
	}
	return result, nil
}

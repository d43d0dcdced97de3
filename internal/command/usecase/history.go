package usecase

import (
	"context"

	"ai-scheduler/internal/command"
	"ai-scheduler/internal/command/repository"
	"ai-scheduler/internal/model"
)

func (uc *implUseCase) History(ctx context.Context, sc model.Scope, input command.HistoryInput) (command.HistoryOutput, error) {
	if uc.repo == nil {
		return command.HistoryOutput{}, command.ErrSchedulingUnavailable
	}

	limit := input.Limit
	if limit <= 0 {
		limit = command.DefaultHistoryLimit
	}
	if limit > command.MaxHistoryLimit {
		limit = command.MaxHistoryLimit
	}

	events, err := uc.repo.ListEvents(ctx, repository.ListEventsOptions{
		UserID: sc.UserID,
		Limit:  limit,
	})
	if err != nil {
		return command.HistoryOutput{}, err
	}
	if events == nil {
		events = []model.ScheduledEvent{}
	}
	return command.HistoryOutput{Events: events}, nil
}

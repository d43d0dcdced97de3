package usecase

import (
	"context"
	"fmt"

	"ai-scheduler/internal/auth"
	"ai-scheduler/internal/auth/repository"
	"ai-scheduler/internal/model"
	"ai-scheduler/pkg/gauth"
)

func (uc *implUseCase) Start(ctx context.Context) (auth.StartOutput, error) {
	state := uc.newState()
	uc.states.Add(state, struct{}{})
	return auth.StartOutput{URL: uc.provider.AuthCodeURL(state), State: state}, nil
}

func (uc *implUseCase) Callback(ctx context.Context, input auth.CallbackInput) (auth.CallbackOutput, error) {
	if input.Code == "" {
		return auth.CallbackOutput{}, auth.ErrMissingCode
	}
	if !uc.consumeState(input.State) {
		return auth.CallbackOutput{}, auth.ErrInvalidState
	}

	tok, err := uc.provider.Exchange(ctx, input.Code)
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.Callback: exchange: %v", err)
		return auth.CallbackOutput{}, fmt.Errorf("%w: %v", auth.ErrExchangeFailed, err)
	}

	email, err := uc.provider.UserEmail(ctx, tok)
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.Callback: userinfo: %v", err)
		return auth.CallbackOutput{}, fmt.Errorf("%w: %v", auth.ErrUserInfoFailed, err)
	}

	raw, err := gauth.MarshalToken(tok)
	if err != nil {
		return auth.CallbackOutput{}, fmt.Errorf("auth.usecase.Callback: %w", err)
	}
	sealed, err := uc.encrypter.EncryptString(raw)
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.Callback: encrypt token: %v", err)
		return auth.CallbackOutput{}, fmt.Errorf("auth.usecase.Callback: %w", err)
	}

	user, err := uc.repo.UpsertUser(ctx, repository.UpsertUserOptions{
		Email:                 email,
		RefreshTokenEncrypted: sealed,
	})
	if err != nil {
		return auth.CallbackOutput{}, err
	}

	uc.l.Infof(ctx, "auth.usecase.Callback: signed in user %s", user.ID)
	return auth.CallbackOutput{User: user}, nil
}

func (uc *implUseCase) Me(ctx context.Context, sc model.Scope) (auth.MeOutput, error) {
	if !sc.Authenticated() {
		return auth.MeOutput{}, auth.ErrNotAuthenticated
	}
	user, err := uc.repo.GetUser(ctx, repository.GetUserOptions{ID: sc.UserID})
	if err != nil {
		return auth.MeOutput{}, err
	}
	if user.ID == "" || !user.IsActive {
		return auth.MeOutput{}, auth.ErrNotAuthenticated
	}
	return auth.MeOutput{Email: user.Email}, nil
}

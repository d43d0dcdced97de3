package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/oauth2"

	"ai-scheduler/internal/auth/repository"
	"ai-scheduler/pkg/encrypter"
	"ai-scheduler/pkg/log"
)

const (
	DefaultStateTTL  = 10 * time.Minute
	maxPendingStates = 10000
)

// OAuthProvider is the subset of gauth.Provider the sign-in flow needs.
type OAuthProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	UserEmail(ctx context.Context, tok *oauth2.Token) (string, error)
}

// implUseCase is the private implementation of auth.UseCase.
type implUseCase struct {
	l         log.Logger
	provider  OAuthProvider
	encrypter encrypter.Encrypter
	repo      repository.Repository
	states    *expirable.LRU[string, struct{}]
	newState  func() string
}

// New creates a new auth UseCase. A stateTTL <= 0 uses DefaultStateTTL.
func New(l log.Logger, provider OAuthProvider, enc encrypter.Encrypter, repo repository.Repository, stateTTL time.Duration) *implUseCase {
	if stateTTL <= 0 {
		stateTTL = DefaultStateTTL
	}
	return &implUseCase{
		l:         l,
		provider:  provider,
		encrypter: enc,
		repo:      repo,
		states:    expirable.NewLRU[string, struct{}](maxPendingStates, nil, stateTTL),
		newState:  uuid.NewString,
	}
}

// consumeState removes the state and reports whether it was pending and unexpired.
func (uc *implUseCase) consumeState(state string) bool {
	if state == "" {
		return false
	}
	if _, ok := uc.states.Peek(state); !ok {
		return false
	}
	return uc.states.Remove(state)
}

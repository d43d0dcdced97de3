package usecase

import (
	"context"

	"golang.org/x/oauth2"

	authrepo "ai-scheduler/internal/auth/repository"
	"ai-scheduler/internal/command/repository"
	"ai-scheduler/internal/model"
	"ai-scheduler/pkg/clock"
	"ai-scheduler/pkg/encrypter"
	"ai-scheduler/pkg/gcalendar"
	pkgLog "ai-scheduler/pkg/log"
	"ai-scheduler/pkg/nlp"
)

// Parser is the command parser. *nlp.Parser implements it.
type Parser interface {
	ParseIn(command, timezone string) (nlp.ParseResult, error)
}

// UserStore loads the account whose token signs calendar requests.
type UserStore interface {
	GetUser(ctx context.Context, opt authrepo.GetUserOptions) (model.User, error)
}

// CalendarProvider builds a calendar client acting for a user. *gauth.Provider implements it.
type CalendarProvider interface {
	Calendar(ctx context.Context, tok *oauth2.Token) (gcalendar.EventCreator, error)
}

// CalendarOptions are the event settings applied to every scheduled command.
type CalendarOptions struct {
	CalendarID      string
	ReminderMinutes int
	SendUpdates     string
	CreateMeet      bool
}

type implUseCase struct {
	l         pkgLog.Logger
	parser    Parser
	clock     clock.Clock
	repo      repository.Repository
	users     UserStore
	calendar  CalendarProvider
	encrypter encrypter.Encrypter
	calOpts   CalendarOptions
}

// New creates a new command UseCase instance. repo, users, calendar and enc
// may be nil, in which case Schedule and History report
// command.ErrSchedulingUnavailable while parsing keeps working.
func New(
	l pkgLog.Logger,
	parser Parser,
	clk clock.Clock,
	repo repository.Repository,
	users UserStore,
	calendar CalendarProvider,
	enc encrypter.Encrypter,
	calOpts CalendarOptions,
) *implUseCase {
	if clk == nil {
		clk = clock.NewSystem()
	}
	if calOpts.CalendarID == "" {
		calOpts.CalendarID = gcalendar.DefaultCalendarID
	}
	return &implUseCase{
		l:         l,
		parser:    parser,
		clock:     clk,
		repo:      repo,
		users:     users,
		calendar:  calendar,
		encrypter: enc,
		calOpts:   calOpts,
	}
}

func (uc *implUseCase) canSchedule() bool {
	return uc.repo != nil && uc.users != nil && uc.calendar != nil && uc.encrypter != nil
}

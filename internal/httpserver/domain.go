package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	authHTTP "ai-scheduler/internal/auth/delivery/http"
	authRepo "ai-scheduler/internal/auth/repository/postgre"
	authUC "ai-scheduler/internal/auth/usecase"
	cmdHTTP "ai-scheduler/internal/command/delivery/http"
	cmdRepo "ai-scheduler/internal/command/repository"
	cmdPostgre "ai-scheduler/internal/command/repository/postgre"
	cmdUC "ai-scheduler/internal/command/usecase"
)

// setupCommandDomain wires parse, schedule and history under /api. Without
// Postgres or Google sign-in only parsing is functional.
func (srv HTTPServer) setupCommandDomain(ctx context.Context, api *gin.RouterGroup) error {
	var (
		repo     cmdRepo.Repository
		users    cmdUC.UserStore
		calendar cmdUC.CalendarProvider
	)
	if srv.postgresDB != nil {
		repo = cmdPostgre.New(srv.postgresDB, srv.l)
		users = authRepo.New(srv.postgresDB, srv.l)
	}
	if srv.oauth != nil {
		calendar = srv.oauth
	}

	uc := cmdUC.New(srv.l, srv.parser, nil, repo, users, calendar, srv.encrypter, cmdUC.CalendarOptions{
		CalendarID:      srv.calendar.CalendarID,
		ReminderMinutes: srv.calendar.ReminderMinutes,
		SendUpdates:     srv.calendar.SendUpdates,
		CreateMeet:      srv.calendar.CreateMeet,
	})

	h := cmdHTTP.New(srv.l, uc)
	cmdHTTP.RegisterRoutes(api, h, srv.mw)

	if repo == nil || calendar == nil {
		srv.l.Warn(ctx, "Command domain registered with parsing only: postgres or google_oauth is not configured")
	} else {
		srv.l.Info(ctx, "Command domain registered")
	}
	return nil
}

// setupAuthDomain wires the Google OAuth web flow under /auth.
func (srv HTTPServer) setupAuthDomain(ctx context.Context, rg *gin.RouterGroup) error {
	repo := authRepo.New(srv.postgresDB, srv.l)
	uc := authUC.New(srv.l, srv.oauth, srv.encrypter, repo, authUC.DefaultStateTTL)
	h := authHTTP.New(srv.l, uc, srv.mw, srv.baseURL)
	authHTTP.RegisterRoutes(rg, h, srv.mw)

	srv.l.Info(ctx, "Auth domain registered")
	return nil
}

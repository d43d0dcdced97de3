package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"ai-scheduler/config"
	"ai-scheduler/internal/middleware"
	"ai-scheduler/pkg/encrypter"
	"ai-scheduler/pkg/gauth"
	"ai-scheduler/pkg/log"
	"ai-scheduler/pkg/nlp"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared
	mw        middleware.Middleware
	baseURL   string
	parser    *nlp.Parser
	encrypter encrypter.Encrypter

	// Optional: storage and Google sign-in
	postgresDB *pgxpool.Pool
	oauth      *gauth.Provider
	calendar   config.GoogleCalendarConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	App       config.AppConfig
	Cookie    config.CookieConfig
	RateLimit config.RateLimitConfig
	Calendar  config.GoogleCalendarConfig

	Parser    *nlp.Parser
	Encrypter encrypter.Encrypter

	// PostgresDB and OAuth may be nil; scheduling and sign-in are then unavailable.
	PostgresDB *pgxpool.Pool
	OAuth      *gauth.Provider
}

// New creates a new HTTPServer instance with all routes registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		mw:          middleware.New(logger, cfg.Cookie, cfg.Encrypter, cfg.App.AllowedOrigins, cfg.RateLimit.RequestsPerMin),
		baseURL:     cfg.App.BaseURL,
		parser:      cfg.Parser,
		encrypter:   cfg.Encrypter,
		postgresDB:  cfg.PostgresDB,
		oauth:       cfg.OAuth,
		calendar:    cfg.Calendar,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.parser == nil {
		return errors.New("parser is required")
	}
	return nil
}

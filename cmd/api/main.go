package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"ai-scheduler/config"
	_ "ai-scheduler/docs" // Swagger docs
	"ai-scheduler/internal/httpserver"
	"ai-scheduler/migrations"
	"ai-scheduler/pkg/datemath"
	"ai-scheduler/pkg/encrypter"
	"ai-scheduler/pkg/gauth"
	"ai-scheduler/pkg/log"
	"ai-scheduler/pkg/nlp"
)

// @title       AI Scheduler API
// @description Natural-language meeting scheduling with Google Calendar and Meet.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting AI Scheduler...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Parser
	engine, err := datemath.NewEngine(cfg.Scheduler.DateEngine)
	if err != nil {
		logger.Error(ctx, "Invalid date engine: ", err)
		return
	}
	parser, err := nlp.New(nlp.Config{
		DefaultTimezone:        cfg.Scheduler.DefaultTimezone,
		DefaultDurationMinutes: cfg.Scheduler.DefaultDurationMinutes,
		FallbackHour:           cfg.Scheduler.FallbackHour,
		Engine:                 engine,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize parser: ", err)
		return
	}
	logger.Infof(ctx, "Parser ready (engine=%s, timezone=%s)", cfg.Scheduler.DateEngine, parser.DefaultLocation())

	// 4. Session encryption (optional)
	var enc encrypter.Encrypter
	if cfg.Security.EncryptionKey != "" {
		enc, err = encrypter.New(cfg.Security.EncryptionKey)
		if err != nil {
			logger.Error(ctx, "Invalid security.encryption_key: ", err)
			return
		}
	} else {
		logger.Warn(ctx, "security.encryption_key is empty: sessions and stored tokens are disabled")
	}

	// 5. PostgreSQL (optional)
	var pool *pgxpool.Pool
	if cfg.Postgres.DSN != "" {
		pool, err = connectPostgres(ctx, cfg.Postgres)
		if err != nil {
			logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
			return
		}
		defer pool.Close()

		if err := migrations.Apply(ctx, pool); err != nil {
			logger.Error(ctx, "Failed to apply migrations: ", err)
			return
		}
		logger.Info(ctx, "PostgreSQL connected, migrations applied")
	} else {
		logger.Warn(ctx, "postgres.dsn is empty: scheduling history is disabled")
	}

	// 6. Google OAuth (optional)
	var oauth *gauth.Provider
	if cfg.GoogleOAuth.ClientID != "" && cfg.GoogleOAuth.ClientSecret != "" {
		oauth = gauth.New(gauth.Config{
			ClientID:     cfg.GoogleOAuth.ClientID,
			ClientSecret: cfg.GoogleOAuth.ClientSecret,
			RedirectURL:  cfg.GoogleOAuth.RedirectURI,
		})
		logger.Info(ctx, "Google OAuth configured")
	} else {
		logger.Warn(ctx, "google_oauth.client_id or client_secret is empty: sign-in and scheduling are disabled")
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		App:         cfg.App,
		Cookie:      cfg.Cookie,
		RateLimit:   cfg.RateLimit,
		Calendar:    cfg.GoogleCalendar,
		Parser:      parser,
		Encrypter:   enc,
		PostgresDB:  pool,
		OAuth:       oauth,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func connectPostgres(ctx context.Context, cfg config.PostgresConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = int32(cfg.MaxConns)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return pool, nil
}

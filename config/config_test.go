package config

import (
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.HTTPServer.Port != 8080 || cfg.HTTPServer.Mode != "debug" {
		t.Errorf("unexpected server config: %+v", cfg.HTTPServer)
	}
	if cfg.Scheduler.DefaultTimezone != "America/Los_Angeles" || cfg.Scheduler.DefaultDurationMinutes != 30 ||
		cfg.Scheduler.FallbackHour != 9 || cfg.Scheduler.DateEngine != DateEngineWhen {
		t.Errorf("unexpected scheduler config: %+v", cfg.Scheduler)
	}
	if cfg.GoogleCalendar.CalendarID != "primary" || cfg.GoogleCalendar.ReminderMinutes != 5 ||
		cfg.GoogleCalendar.SendUpdates != "all" || !cfg.GoogleCalendar.CreateMeet {
		t.Errorf("unexpected calendar config: %+v", cfg.GoogleCalendar)
	}
	if cfg.Cookie.Name != "user_id" || cfg.RateLimit.RequestsPerMin != 60 {
		t.Errorf("unexpected cookie/rate limit config: %+v %+v", cfg.Cookie, cfg.RateLimit)
	}
	if !reflect.DeepEqual(cfg.App.AllowedOrigins, []string{"http://localhost:3000"}) {
		t.Errorf("expected origins to default to base url, got %v", cfg.App.AllowedOrigins)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SCHEDULER_DEFAULT_TIMEZONE", "Europe/Paris")
	t.Setenv("SCHEDULER_DATE_ENGINE", "basic")
	t.Setenv("HTTP_SERVER_PORT", "9090")
	t.Setenv("APP_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("GOOGLE_CLIENT_ID", "legacy-id")
	t.Setenv("GOOGLE_CLIENT_SECRET", "legacy-secret")
	t.Setenv("GOOGLE_REDIRECT_URI", "https://api.test/auth/callback")
	t.Setenv("APP_ENCRYPTION_KEY", "legacy-key")
	t.Setenv("DATABASE_URL", "postgres://u:p@db/sched")
	t.Setenv("APP_BASE_URL", "https://app.test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Scheduler.DefaultTimezone != "Europe/Paris" || cfg.Scheduler.DateEngine != DateEngineBasic {
		t.Errorf("unexpected scheduler config: %+v", cfg.Scheduler)
	}
	if cfg.HTTPServer.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.HTTPServer.Port)
	}
	if !reflect.DeepEqual(cfg.App.AllowedOrigins, []string{"http://a.test", "http://b.test"}) {
		t.Errorf("unexpected origins: %v", cfg.App.AllowedOrigins)
	}
	if cfg.GoogleOAuth.ClientID != "legacy-id" || cfg.GoogleOAuth.ClientSecret != "legacy-secret" ||
		cfg.GoogleOAuth.RedirectURI != "https://api.test/auth/callback" {
		t.Errorf("unexpected oauth config: %+v", cfg.GoogleOAuth)
	}
	if cfg.Security.EncryptionKey != "legacy-key" || cfg.Postgres.DSN != "postgres://u:p@db/sched" {
		t.Errorf("unexpected security/postgres config: %+v %+v", cfg.Security, cfg.Postgres)
	}
	if cfg.App.BaseURL != "https://app.test" {
		t.Errorf("unexpected base url: %s", cfg.App.BaseURL)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "engine", env: map[string]string{"SCHEDULER_DATE_ENGINE": "gpt"}, want: "date_engine"},
		{name: "duration", env: map[string]string{"SCHEDULER_DEFAULT_DURATION_MINUTES": "0"}, want: "default_duration_minutes"},
		{name: "hour", env: map[string]string{"SCHEDULER_FALLBACK_HOUR": "24"}, want: "fallback_hour"},
		{name: "same site", env: map[string]string{"COOKIE_SAME_SITE": "sometimes"}, want: "same_site"},
		{name: "max conns negative", env: map[string]string{"POSTGRES_MAX_CONNS": "-1"}, want: "max_conns"},
		{name: "max conns overflow", env: map[string]string{"POSTGRES_MAX_CONNS": "2147483648"}, want: "max_conns"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load() error = %v, want mention of %s", err, tt.want)
			}
		})
	}
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("MY_SECRET", "s3cr3t")

	v := newTestViper()
	if got := expandEnvVar(v, "${MY_SECRET}"); got != "s3cr3t" {
		t.Errorf("expandEnvVar() = %q", got)
	}
	if got := expandEnvVar(v, "plain"); got != "plain" {
		t.Errorf("expandEnvVar() = %q", got)
	}
	if got := expandEnvVar(v, "${MISSING_VAR_X}"); got != "${MISSING_VAR_X}" {
		t.Errorf("expandEnvVar() = %q", got)
	}
}

func newTestViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	return v
}

package config

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/spf13/viper"

	"ai-scheduler/pkg/datemath"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	App        AppConfig

	// Scheduling
	Scheduler      SchedulerConfig
	GoogleOAuth    GoogleOAuthConfig
	GoogleCalendar GoogleCalendarConfig

	// Security
	Security  SecurityConfig
	Cookie    CookieConfig
	RateLimit RateLimitConfig

	// Storage
	Postgres PostgresConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type AppConfig struct {
	Name           string
	BaseURL        string // frontend URL the OAuth callback redirects to
	AllowedOrigins []string
}

type SchedulerConfig struct {
	DefaultTimezone        string
	DefaultDurationMinutes int
	FallbackHour           int
	DateEngine             string // "when" or "basic"
}

type GoogleOAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

type GoogleCalendarConfig struct {
	CalendarID      string
	ReminderMinutes int
	SendUpdates     string
	CreateMeet      bool
}

type SecurityConfig struct {
	EncryptionKey string
}

type CookieConfig struct {
	Name     string
	Domain   string
	Secure   bool
	MaxAge   int // seconds
	SameSite string
}

type RateLimitConfig struct {
	RequestsPerMin int
}

type PostgresConfig struct {
	DSN      string
	MaxConns int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/ai-scheduler/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/ai-scheduler/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	cfg.App.Name = v.GetString("app.name")
	cfg.App.BaseURL = v.GetString("app.base_url")
	if baseURL := v.GetString("app_base_url"); baseURL != "" {
		cfg.App.BaseURL = baseURL
	}
	cfg.App.AllowedOrigins = stringList(v, "app.allowed_origins")
	if len(cfg.App.AllowedOrigins) == 0 && cfg.App.BaseURL != "" {
		cfg.App.AllowedOrigins = []string{cfg.App.BaseURL}
	}

	// Scheduling
	cfg.Scheduler.DefaultTimezone = v.GetString("scheduler.default_timezone")
	cfg.Scheduler.DefaultDurationMinutes = v.GetInt("scheduler.default_duration_minutes")
	cfg.Scheduler.FallbackHour = v.GetInt("scheduler.fallback_hour")
	cfg.Scheduler.DateEngine = v.GetString("scheduler.date_engine")

	cfg.GoogleOAuth.ClientID = expandEnvVar(v, v.GetString("google_oauth.client_id"))
	cfg.GoogleOAuth.ClientSecret = expandEnvVar(v, v.GetString("google_oauth.client_secret"))
	cfg.GoogleOAuth.RedirectURI = v.GetString("google_oauth.redirect_uri")
	if clientID := v.GetString("google_client_id"); clientID != "" {
		cfg.GoogleOAuth.ClientID = clientID
	}
	if clientSecret := v.GetString("google_client_secret"); clientSecret != "" {
		cfg.GoogleOAuth.ClientSecret = clientSecret
	}
	if redirectURI := v.GetString("google_redirect_uri"); redirectURI != "" {
		cfg.GoogleOAuth.RedirectURI = redirectURI
	}

	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.ReminderMinutes = v.GetInt("google_calendar.reminder_minutes")
	cfg.GoogleCalendar.SendUpdates = v.GetString("google_calendar.send_updates")
	cfg.GoogleCalendar.CreateMeet = v.GetBool("google_calendar.create_meet")

	// Security
	cfg.Security.EncryptionKey = expandEnvVar(v, v.GetString("security.encryption_key"))
	if key := v.GetString("app_encryption_key"); key != "" {
		cfg.Security.EncryptionKey = key
	}

	cfg.Cookie.Name = v.GetString("cookie.name")
	cfg.Cookie.Domain = v.GetString("cookie.domain")
	cfg.Cookie.Secure = v.GetBool("cookie.secure")
	cfg.Cookie.MaxAge = v.GetInt("cookie.max_age")
	cfg.Cookie.SameSite = v.GetString("cookie.same_site")

	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	// Storage
	cfg.Postgres.DSN = expandEnvVar(v, v.GetString("postgres.dsn"))
	if dsn := v.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}
	cfg.Postgres.MaxConns = v.GetInt("postgres.max_conns")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("app.name", "AI Scheduler")
	v.SetDefault("app.base_url", "http://localhost:3000")

	v.SetDefault("scheduler.default_timezone", "America/Los_Angeles")
	v.SetDefault("scheduler.default_duration_minutes", 30)
	v.SetDefault("scheduler.fallback_hour", 9)
	v.SetDefault("scheduler.date_engine", DateEngineWhen)

	v.SetDefault("google_oauth.redirect_uri", "http://localhost:8080/auth/callback")

	v.SetDefault("google_calendar.calendar_id", "primary")
	v.SetDefault("google_calendar.reminder_minutes", 5)
	v.SetDefault("google_calendar.send_updates", "all")
	v.SetDefault("google_calendar.create_meet", true)

	v.SetDefault("cookie.name", "user_id")
	v.SetDefault("cookie.max_age", 30*24*60*60)
	v.SetDefault("cookie.same_site", "lax")

	v.SetDefault("rate_limit.requests_per_min", 60)
	v.SetDefault("postgres.max_conns", 10)
}

const (
	DateEngineWhen  = datemath.EngineWhen
	DateEngineBasic = datemath.EngineBasic
)

func (cfg *Config) validate() error {
	switch cfg.Scheduler.DateEngine {
	case DateEngineWhen, DateEngineBasic:
	default:
		return fmt.Errorf("scheduler.date_engine must be %q or %q, got %q", DateEngineWhen, DateEngineBasic, cfg.Scheduler.DateEngine)
	}
	if cfg.Scheduler.DefaultDurationMinutes <= 0 {
		return fmt.Errorf("scheduler.default_duration_minutes must be positive")
	}
	if cfg.Scheduler.FallbackHour < 0 || cfg.Scheduler.FallbackHour > 23 {
		return fmt.Errorf("scheduler.fallback_hour must be within 0..23")
	}
	switch strings.ToLower(cfg.Cookie.SameSite) {
	case "lax", "strict", "none":
	default:
		return fmt.Errorf("cookie.same_site must be lax, strict or none")
	}
	if cfg.Postgres.MaxConns < 0 || cfg.Postgres.MaxConns > math.MaxInt32 {
		return fmt.Errorf("postgres.max_conns must be within 0..%d", math.MaxInt32)
	}
	return nil
}

// stringList reads a YAML list or a comma separated env value; viper does
// not split env values on commas.
func stringList(v *viper.Viper, key string) []string {
	var out []string
	for _, raw := range v.GetStringSlice(key) {
		for _, item := range strings.Split(raw, ",") {
			item = strings.TrimSpace(item)
			if item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (business hours, timeouts, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Auth       AuthConfig
	Scheduling SchedulingConfig
	Calendar   CalendarConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Seoul"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Schedule-Token"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Seoul"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type JWTConfig struct {
	Secret          string `envconfig:"JWT_SECRET" required:"true"`
	SessionDuration string `envconfig:"JWT_SESSION_DURATION" default:"24h"`
	// Candidate-facing schedule links stay valid until the scheduling window
	// closes; this bounds them in case a window is far in the future.
	PublicLinkDuration string `envconfig:"JWT_PUBLIC_LINK_DURATION" default:"336h"`
}

// AuthConfig carries the explicit development bypass. It is evaluated once at
// startup when the middleware is constructed, never per request handler.
type AuthConfig struct {
	DevBypass      bool   `envconfig:"AUTH_DEV_BYPASS" default:"false"`
	DevBypassEmail string `envconfig:"AUTH_DEV_BYPASS_EMAIL" default:"dev@localhost"`
}

type SchedulingConfig struct {
	MaxOptions   int    `envconfig:"SCHED_MAX_OPTIONS" default:"5"`
	DayStartHour int    `envconfig:"SCHED_DAY_START_HOUR" default:"9"`
	DayEndHour   int    `envconfig:"SCHED_DAY_END_HOUR" default:"18"`
	TimeZone     string `envconfig:"SCHED_TIMEZONE" default:"Asia/Seoul"`
}

type CalendarConfig struct {
	// JSON-encoded oauth2 token for the shared recruiting calendar account.
	// Empty disables calendar lookups entirely.
	Token      string `envconfig:"CALENDAR_OAUTH_TOKEN" default:""`
	CalendarID string `envconfig:"CALENDAR_ID" default:"primary"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Seoul",
		},
		Log: LogConfig{
			Level:          "error",
			TimeZone:       "Asia/Seoul",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		Scheduling: SchedulingConfig{
			MaxOptions:   5,
			DayStartHour: 9,
			DayEndHour:   18,
			TimeZone:     "UTC",
		},
	}
}

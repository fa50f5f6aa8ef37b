package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, collaborator URLs)
// - default: Values common across all environments (timeouts, log format)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Oracle  OracleConfig
	Lending LendingConfig
	Session SessionConfig
	CORS    CORSConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// OracleConfig points at the external availability oracle. No request
// timeout is enforced beyond the client-level one; the oracle is never
// retried.
type OracleConfig struct {
	BaseURL       string        `envconfig:"ORACLE_BASE_URL" required:"true"`
	ClientTimeout time.Duration `envconfig:"ORACLE_CLIENT_TIMEOUT" default:"30s"`
}

// LendingConfig points at the lending backend that owns inventory,
// loan policy, and persisted bookings.
type LendingConfig struct {
	BaseURL       string        `envconfig:"LENDING_BASE_URL" required:"true"`
	ClientTimeout time.Duration `envconfig:"LENDING_CLIENT_TIMEOUT" default:"30s"`
}

type SessionConfig struct {
	DraftTTL      time.Duration `envconfig:"SESSION_DRAFT_TTL" default:"2h"`
	SweepInterval time.Duration `envconfig:"SESSION_SWEEP_INTERVAL" default:"10m"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

func LoadConfig() (Config, error) {
	// Local development convenience; a missing .env is not an error.
	_ = godotenv.Load()

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
			Port: "8889", // Test port
		},
		Oracle: OracleConfig{
			BaseURL:       "http://localhost:18080",
			ClientTimeout: 5 * time.Second,
		},
		Lending: LendingConfig{
			BaseURL:       "http://localhost:18081",
			ClientTimeout: 5 * time.Second,
		},
		Session: SessionConfig{
			DraftTTL:      time.Hour,
			SweepInterval: time.Minute,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
	}
}

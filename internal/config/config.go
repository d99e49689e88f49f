package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	// DefaultJWTSecret is a placeholder. Commands refuse to sign or accept
	// tokens with it.
	DefaultJWTSecret = "change_me_jwt_secret"
)

type (
	Config struct {
		HTTP
		Database
		Auth
		Events
		RateLimit
	}

	HTTP struct {
		Port            string
		ShutdownTimeout time.Duration
	}
	Database struct {
		Driver string // "sqlite" or "postgres"
		DSN    string
	}
	Auth struct {
		JWTSecret string
		TokenTTL  time.Duration
	}
	Events struct {
		RabbitMQURL string // Empty disables event publication
		Exchange    string
		Queue       string
	}
	RateLimit struct {
		RPS   float64
		Burst int
	}
)

// NewConfig reads configuration from the environment, falling back to
// defaults suitable for a local SQLite run.
func NewConfig() *Config {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("SHUTDOWN_TIMEOUT", 5*time.Second)
	v.SetDefault("DATABASE_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_DSN", "bookstore.db")
	v.SetDefault("JWT_SECRET", DefaultJWTSecret)
	v.SetDefault("TOKEN_TTL", 24*time.Hour)
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("EVENTS_EXCHANGE", "bookstore.events")
	v.SetDefault("EVENTS_QUEUE", "bookstore.audit")
	v.SetDefault("RATE_LIMIT_RPS", 10.0)
	v.SetDefault("RATE_LIMIT_BURST", 20)
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		HTTP: HTTP{
			Port:            v.GetString("APP_PORT"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		Database: Database{
			Driver: v.GetString("DATABASE_DRIVER"),
			DSN:    v.GetString("DATABASE_DSN"),
		},
		Auth: Auth{
			JWTSecret: v.GetString("JWT_SECRET"),
			TokenTTL:  v.GetDuration("TOKEN_TTL"),
		},
		Events: Events{
			RabbitMQURL: v.GetString("RABBITMQ_URL"),
			Exchange:    v.GetString("EVENTS_EXCHANGE"),
			Queue:       v.GetString("EVENTS_QUEUE"),
		},
		RateLimit: RateLimit{
			RPS:   v.GetFloat64("RATE_LIMIT_RPS"),
			Burst: v.GetInt("RATE_LIMIT_BURST"),
		},
	}
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return fmt.Errorf("DATABASE_DSN is required")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", c.Auth.TokenTTL)
	}
	if c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	return nil
}

// UsesDefaultJWTSecret reports whether JWT_SECRET was left at its
// placeholder value.
func (c *Config) UsesDefaultJWTSecret() bool {
	return c.Auth.JWTSecret == DefaultJWTSecret
}

// EventsEnabled reports whether a RabbitMQ broker is configured.
func (c *Config) EventsEnabled() bool {
	return c.Events.RabbitMQURL != ""
}

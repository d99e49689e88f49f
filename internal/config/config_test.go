package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, ":8080", cfg.HTTP.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "bookstore.events", cfg.Events.Exchange)
	assert.False(t, cfg.EventsEnabled())
	assert.True(t, cfg.UsesDefaultJWTSecret())
	require.NoError(t, cfg.Validate())
}

func TestNewConfig_Environment(t *testing.T) {
	t.Setenv("APP_PORT", ":9090")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_DSN", "host=db user=app dbname=books")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("RABBITMQ_URL", "amqp://guest:guest@mq:5672/")
	t.Setenv("RATE_LIMIT_BURST", "5")
	t.Setenv("JWT_SECRET", "s3cret-signing-key")

	cfg := NewConfig()

	assert.Equal(t, ":9090", cfg.HTTP.Port)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "host=db user=app dbname=books", cfg.Database.DSN)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	assert.True(t, cfg.EventsEnabled())
	assert.Equal(t, 5, cfg.RateLimit.Burst)
	assert.Equal(t, "s3cret-signing-key", cfg.Auth.JWTSecret)
	assert.False(t, cfg.UsesDefaultJWTSecret())
	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }, "unsupported DATABASE_DRIVER"},
		{"empty dsn", func(c *Config) { c.Database.DSN = "" }, "DATABASE_DSN"},
		{"empty secret", func(c *Config) { c.Auth.JWTSecret = "" }, "JWT_SECRET"},
		{"zero ttl", func(c *Config) { c.Auth.TokenTTL = 0 }, "TOKEN_TTL"},
		{"zero burst", func(c *Config) { c.RateLimit.Burst = 0 }, "RATE_LIMIT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

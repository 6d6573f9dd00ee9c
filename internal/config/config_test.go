package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_NAME", "APP_ENV", "APP_HOST", "APP_PORT", "APP_VERSION", "STATIC_DIR",
		"HTTP_REQUEST_TIMEOUT_SECONDS", "POSTGRES_DSN", "POSTGRES_MAX_CONNS",
		"POSTGRES_MIN_CONNS", "POSTGRES_RUN_MIGRATIONS", "LOG_LEVEL",
		"AUTH_SESSION_SECRET", "AUTH_USERNAME", "AUTH_PASSWORD",
		"AUTH_PASSWORD_HASH", "AUTH_SESSION_TTL_DAYS",
		"NOTIFY_EMAIL_FROM", "NOTIFY_WEBHOOK_URL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "interaction-service", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.False(t, cfg.App.IsProduction())
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.True(t, cfg.Postgres.RunMigrations)
	assert.Equal(t, int32(10), cfg.Postgres.MaxConns)

	// Historical credential defaults, preserved deliberately.
	assert.Equal(t, "tanishq", cfg.Auth.Username)
	assert.Equal(t, "tanishq2024", cfg.Auth.Password)
	assert.Empty(t, cfg.Auth.PasswordHash)
	assert.Equal(t, 7, cfg.Auth.SessionTTLDays)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("AUTH_USERNAME", "store-admin")
	t.Setenv("AUTH_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuv")
	t.Setenv("AUTH_SESSION_TTL_DAYS", "14")
	t.Setenv("POSTGRES_MAX_CONNS", "25")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.App.IsProduction())
	assert.Equal(t, "0.0.0.0:9090", cfg.App.Addr())
	assert.Equal(t, "store-admin", cfg.Auth.Username)
	assert.Equal(t, "$2a$10$abcdefghijklmnopqrstuv", cfg.Auth.PasswordHash)
	assert.Equal(t, 14, cfg.Auth.SessionTTLDays)
	assert.Equal(t, int32(25), cfg.Postgres.MaxConns)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	clearEnv(t)
	t.Setenv("POSTGRES_MAX_CONNS", "lots")
	t.Setenv("AUTH_SESSION_TTL_DAYS", "a week")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int32(10), cfg.Postgres.MaxConns)
	assert.Equal(t, 7, cfg.Auth.SessionTTLDays)
}

func TestRequestTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "5s", cfg.App.RequestTimeout().String())

	cfg.App.RequestTimeoutSeconds = 0
	assert.Zero(t, cfg.App.RequestTimeout())
}

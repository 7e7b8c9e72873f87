package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"PGSQL_URL", "PORT", "IS_PRODUCTION", "JWT_SECRET", "MIGRATIONS_PATH",
		"MATCH_POOL_LIMIT", "AUTO_ACCEPT_MAX_PRIORITY", "DISCREPANCY_WINDOW",
		"IMPORT_RATE_LIMIT", "CORS_ALLOWED_ORIGINS", "POSTHOG_API_KEY", "POSTHOG_ENDPOINT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.IsProduction)
	assert.Equal(t, defaultJWTSecret, cfg.JWTSecret)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
	assert.Equal(t, 100, cfg.MatchPoolLimit)
	assert.Equal(t, 2, cfg.AutoAcceptMaxPriority)
	assert.Equal(t, 720*time.Hour, cfg.DiscrepancyWindow)
	assert.Equal(t, "30-M", cfg.ImportRateLimit)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PGSQL_URL", "postgres://recon@localhost/recon")
	t.Setenv("PORT", "9090")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("MIGRATIONS_PATH", "file:///srv/migrations")
	t.Setenv("MATCH_POOL_LIMIT", "0")
	t.Setenv("AUTO_ACCEPT_MAX_PRIORITY", "1")
	t.Setenv("DISCREPANCY_WINDOW", "168h")
	t.Setenv("IMPORT_RATE_LIMIT", "5-S")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("POSTHOG_API_KEY", "phc_test")
	t.Setenv("POSTHOG_ENDPOINT", "https://us.i.posthog.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://recon@localhost/recon", cfg.DatabaseURL)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, "file:///srv/migrations", cfg.MigrationsPath)
	assert.Equal(t, 0, cfg.MatchPoolLimit)
	assert.Equal(t, 1, cfg.AutoAcceptMaxPriority)
	assert.Equal(t, 168*time.Hour, cfg.DiscrepancyWindow)
	assert.Equal(t, "5-S", cfg.ImportRateLimit)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "phc_test", cfg.PosthogAPIKey)
	assert.Equal(t, "https://us.i.posthog.com", cfg.PosthogEndpoint)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("MATCH_POOL_LIMIT", "-3")
	t.Setenv("AUTO_ACCEPT_MAX_PRIORITY", "9")
	t.Setenv("DISCREPANCY_WINDOW", "a month")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, defaultMatchPoolLimit, cfg.MatchPoolLimit)
	assert.Equal(t, defaultAutoAcceptPriority, cfg.AutoAcceptMaxPriority)
	assert.Equal(t, defaultDiscrepancyWindow, cfg.DiscrepancyWindow)
}

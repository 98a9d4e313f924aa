package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	// Set test environment variables
	os.Setenv("DB_HOST", "db.internal")
	os.Setenv("DB_PORT", "5433")
	os.Setenv("DB_USER", "dietwise")
	os.Setenv("DB_PASSWORD", "secret")
	os.Setenv("DB_NAME", "dietwise")
	os.Setenv("DB_SSL_MODE", "require")
	os.Setenv("REDIS_URL", "redis://localhost:6379")
	os.Setenv("PLAN_TTL_HOURS", "48")
	os.Setenv("ALLOWED_ORIGINS", "https://app.dietwise.dev, https://staging.dietwise.dev")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "5433", cfg.DBPort)
	assert.Equal(t, "dietwise", cfg.DBUser)
	assert.Equal(t, "secret", cfg.DBPassword)
	assert.Equal(t, "dietwise", cfg.DBName)
	assert.Equal(t, "require", cfg.DBSSLMode)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
	assert.Equal(t, 48*time.Hour, cfg.PlanTTL)
	assert.Equal(t, []string{"https://app.dietwise.dev", "https://staging.dietwise.dev"}, cfg.AllowedOrigins)
}

func TestLoadConfigWithDefaults(t *testing.T) {
	// Clear environment variables to test defaults
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("DB_HOST")
	os.Unsetenv("DB_PORT")
	os.Unsetenv("DB_USER")
	os.Unsetenv("DB_PASSWORD")
	os.Unsetenv("DB_NAME")
	os.Unsetenv("DB_SSL_MODE")
	os.Unsetenv("REDIS_URL")
	os.Unsetenv("PLAN_TTL_HOURS")
	os.Unsetenv("ALLOWED_ORIGINS")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "postgres", cfg.DBUser)
	assert.Equal(t, "dietwise", cfg.DBName)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, 24*time.Hour, cfg.PlanTTL)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
}

func TestLoadConfigRejectsBadPlanTTL(t *testing.T) {
	os.Setenv("PLAN_TTL_HOURS", "soon")
	defer os.Unsetenv("PLAN_TTL_HOURS")

	cfg, err := LoadConfig()
	assert.Error(t, err)
	assert.Nil(t, cfg)

	os.Setenv("PLAN_TTL_HOURS", "0")
	cfg, err = LoadConfig()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

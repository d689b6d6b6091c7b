package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaultsAndEnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "4000")
	t.Setenv("DB_NAME", "uynm_test")
	t.Setenv("NOTIFICATION_EMAIL", "admin@example.org")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://uynm.org, https://www.uynm.org")

	cfg, err := LoadConfig("nonexistent.yaml")
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Server.Port)
	assert.Equal(t, "uynm_test", cfg.Database.DBName)
	assert.Equal(t, "test-secret", cfg.JWT.Secret)
	assert.Equal(t, "admin@example.org", cfg.Notify.Recipient)

	// Defaults survive where no override is set.
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "1h", cfg.JWT.AccessTokenExpiration)

	assert.Equal(t, []string{"https://uynm.org", "https://www.uynm.org"}, cfg.AllowedOriginList())
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig("nonexistent.yaml")
	assert.Error(t, err)
}

func TestGetPostgresConnectionString(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "svc")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "uynm")
	t.Setenv("DB_SSLMODE", "require")

	cfg, err := LoadConfig("nonexistent.yaml")
	require.NoError(t, err)

	assert.Equal(t,
		"postgres://svc:pw@db.internal:5433/uynm?sslmode=require",
		cfg.GetPostgresConnectionString())
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVER_PORT", "LOG_LEVEL", "DATABASE_URL", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD",
		"DB_NAME", "DB_SSLMODE", "DB_AUTO_MIGRATE", "JWT_SECRET", "JWT_TTL", "BCRYPT_COST",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.ServerPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.AutoMigrate)
	assert.Equal(t, "", cfg.DB.URL)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "rentpay", cfg.DB.DBName)
	assert.Equal(t, "disable", cfg.DB.SSLMode)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
}

func TestLoadConfig_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/x?sslmode=disable")
	t.Setenv("JWT_TTL", "90m")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("DB_AUTO_MIGRATE", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.ServerPort)
	assert.Equal(t, "postgres://u:p@db:5432/x?sslmode=disable", cfg.DB.URL)
	assert.Equal(t, 90*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.False(t, cfg.AutoMigrate)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("MissingSecret", func(t *testing.T) {
		clearEnv(t)
		_, err := LoadConfig()
		assert.ErrorIs(t, err, ErrMissingJWTSecret)
	})

	t.Run("BadPort", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("JWT_SECRET", "x")
		t.Setenv("DB_PORT", "abc")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "invalid DB_PORT")
	})

	t.Run("NonPositiveTTL", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("JWT_SECRET", "x")
		t.Setenv("JWT_TTL", "-1h")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "invalid JWT_TTL")
	})
}

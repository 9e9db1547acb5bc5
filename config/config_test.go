package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		DBHost:    "localhost",
		DBUser:    "calendara",
		DBName:    "calendara",
		JWTSecret: "secret",
		RedisHost: "localhost",
	}
}

func TestValidateConfig(t *testing.T) {
	require.NoError(t, ValidateConfig(testConfig()))
}

func TestValidateConfigMissingFields(t *testing.T) {
	cfg := testConfig()
	cfg.DBHost = ""
	cfg.JWTSecret = ""
	err := ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db_host")
	assert.Contains(t, err.Error(), "jwt_secret")
}

func TestValidateConfigRedisURLSubstitutesHost(t *testing.T) {
	cfg := testConfig()
	cfg.RedisHost = ""
	cfg.RedisURL = "redis://localhost:6379/0"
	assert.NoError(t, ValidateConfig(cfg))
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "calendara")
	t.Setenv("DB_NAME", "calendara")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("REDIS_HOST", "cache")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "db", cfg.DBHost)
	assert.Equal(t, "8080", cfg.ServerPort, "default port")
	assert.Equal(t, "disable", cfg.DBSSLMode, "default ssl mode")
}

package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"miles-advisor/config"
)

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "LOG_LEVEL", "REDIS_ADDR", "CACHE_TTL",
		"RATE_LIMIT", "RATE_WINDOW", "PROFILE_PATH", "VERSION",
	} {
		os.Unsetenv(key)
		os.Unsetenv("MILES_" + key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "", cfg.RedisAddr)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 60, cfg.RateLimit)
	assert.Equal(t, time.Minute, cfg.RateWindow)
	assert.Equal(t, "", cfg.ProfilePath)
	assert.Equal(t, "dev", cfg.Version)
}

func TestLoad_EnvVarOverrides(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		assertFn func(t *testing.T, cfg *config.Config)
	}{
		{
			name:    "custom port",
			envVars: map[string]string{"MILES_PORT": "3000"},
			assertFn: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, 3000, cfg.Port)
			},
		},
		{
			name:    "redis and cache ttl",
			envVars: map[string]string{"MILES_REDIS_ADDR": "localhost:6379", "MILES_CACHE_TTL": "30s"},
			assertFn: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "localhost:6379", cfg.RedisAddr)
				assert.Equal(t, 30*time.Second, cfg.CacheTTL)
			},
		},
		{
			name:    "rate limit",
			envVars: map[string]string{"MILES_RATE_LIMIT": "5", "MILES_RATE_WINDOW": "10s"},
			assertFn: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, 5, cfg.RateLimit)
				assert.Equal(t, 10*time.Second, cfg.RateWindow)
			},
		},
		{
			name:    "unprefixed fallback",
			envVars: map[string]string{"LOG_LEVEL": "debug"},
			assertFn: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "debug", cfg.LogLevel)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := config.Load()

			require.NoError(t, err)
			tt.assertFn(t, cfg)
		})
	}
}

func TestLoad_InvalidValue(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("MILES_CACHE_TTL", "soon")

	_, err := config.Load()

	assert.Error(t, err)
}

package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds process configuration loaded from MILES_* environment variables.
type Config struct {
	Port        int           `envconfig:"PORT" default:"8080"`
	LogLevel    string        `envconfig:"LOG_LEVEL" default:"info"`
	RedisAddr   string        `envconfig:"REDIS_ADDR" default:""`
	CacheTTL    time.Duration `envconfig:"CACHE_TTL" default:"10m"`
	RateLimit   int           `envconfig:"RATE_LIMIT" default:"60"`
	RateWindow  time.Duration `envconfig:"RATE_WINDOW" default:"1m"`
	ProfilePath string        `envconfig:"PROFILE_PATH" default:""`
	Version     string        `envconfig:"VERSION" default:"dev"`
}

// Load reads configuration from environment variables into a Config struct.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("MILES", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

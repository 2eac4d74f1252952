package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config carries all service configuration, loaded from the environment.
type Config struct {
	Addr   string `env:"WORKOUT_ADDR" envDefault:":8000"`
	DBPath string `env:"WORKOUT_DB_PATH" envDefault:"workout.db"`
	Env    string `env:"WORKOUT_ENV" envDefault:"development"`

	// MaxPageLimit caps the limit query parameter on list endpoints;
	// larger requests are clamped, not rejected.
	MaxPageLimit int `env:"WORKOUT_MAX_PAGE_LIMIT" envDefault:"100"`

	RateLimitPerSecond float64 `env:"WORKOUT_RATE_LIMIT_RPS" envDefault:"10"`
	RateLimitBurst     int     `env:"WORKOUT_RATE_LIMIT_BURST" envDefault:"20"`
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first if present (development convenience);
// real environment variables win over it.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config from environment: %w", err)
	}
	if cfg.MaxPageLimit < 1 {
		return Config{}, fmt.Errorf("WORKOUT_MAX_PAGE_LIMIT must be positive, got %d", cfg.MaxPageLimit)
	}
	if cfg.RateLimitPerSecond <= 0 {
		return Config{}, fmt.Errorf("WORKOUT_RATE_LIMIT_RPS must be positive, got %v", cfg.RateLimitPerSecond)
	}
	if cfg.RateLimitBurst < 1 {
		return Config{}, fmt.Errorf("WORKOUT_RATE_LIMIT_BURST must be positive, got %d", cfg.RateLimitBurst)
	}
	return cfg, nil
}

package config

import (
	"fmt"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	// Formatting
	ImageSize   int    `env:"SAILFMT_IMAGE_SIZE"   envDefault:"300"`
	InputFormat string `env:"SAILFMT_INPUT_FORMAT" envDefault:"json"`
	PageSize    int    `env:"SAILFMT_PAGE_SIZE"    envDefault:"10"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	return Parse()
}

// Parse reads configuration from the current environment only
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if cfg.ImageSize <= 0 {
		return nil, fmt.Errorf("SAILFMT_IMAGE_SIZE must be positive, got %d", cfg.ImageSize)
	}
	if cfg.PageSize <= 0 {
		return nil, fmt.Errorf("SAILFMT_PAGE_SIZE must be positive, got %d", cfg.PageSize)
	}

	return &cfg, nil
}

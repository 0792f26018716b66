package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// envConfig mirrors Config for environment parsing. Every variable is
// optional; an unset variable leaves the current value in place.
type envConfig struct {
	BaseURL        string        `env:"BLOGCTL_BASE_URL"`
	PageSize       int           `env:"BLOGCTL_PAGE_SIZE"`
	DatabasePath   string        `env:"BLOGCTL_DB_PATH"`
	RequestTimeout time.Duration `env:"BLOGCTL_REQUEST_TIMEOUT"`
}

// parseEnv overlays cfg with values from the process environment.
// A .env file in the working directory is loaded first when present;
// a missing file is not an error.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.BaseURL != "" {
		cfg.BaseURL = ec.BaseURL
	}
	if ec.PageSize > 0 {
		cfg.PageSize = ec.PageSize
	}
	if ec.DatabasePath != "" {
		cfg.DatabasePath = ec.DatabasePath
	}
	if ec.RequestTimeout > 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
}

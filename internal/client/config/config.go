// Package config assembles runtime settings for the blogctl CLI.
package config

import "time"

// Config holds runtime settings for the blogctl CLI.
//
// Fields:
//   - BaseURL: origin of the blog platform REST API.
//   - PageSize: number of articles per list page.
//   - DatabasePath: path of the local state SQLite database.
//   - RequestTimeout: per-request HTTP timeout (a single attempt, no retries).
type Config struct {
	BaseURL        string
	PageSize       int
	DatabasePath   string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://blog-platform.kata.academy/api"
	c.PageSize = 5
	c.DatabasePath = "blogctl.db"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a .env file), a JSON file (if present)
// and command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

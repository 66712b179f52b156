package config

import "time"

// Config holds runtime settings for the terminal client.
//
// Fields:
//   - RuntimeEnvFile: JSON document written by genenv (API_BASE_URL, APP_ENV).
//   - StorageFile: SQLite database backing the persistent key-value store.
//   - RequestTimeout: upper bound for a single live API request.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	RuntimeEnvFile string
	StorageFile    string
	RequestTimeout time.Duration
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.RuntimeEnvFile = "public/env.json"
	c.StorageFile = "storage.db"
	c.RequestTimeout = 15 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

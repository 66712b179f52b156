// Package config handles configuration for the dev server, including
// defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the dev server.
//
// Fields:
//   - ListenAddr: bind address of the HTTP listener.
//   - RuntimeEnvFile: runtime env document served as /env.json and /env.js.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ListenAddr     string
	RuntimeEnvFile string
	LogLevel       string
}

func (c *Config) LoadDefaults() {
	c.ListenAddr = ":8080"
	c.RuntimeEnvFile = "public/env.json"
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

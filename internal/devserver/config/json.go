package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/starterkit/internal/flagx"
)

type JsonConfig struct {
	ListenAddr     string `json:"listen_addr"`
	RuntimeEnvFile string `json:"runtime_env_file"`
	LogLevel       string `json:"log_level"`
}

// parseJson overlays non-empty values from the JSON file named by -c or
// -config. It panics if the file cannot be read or parsed.
func parseJson(config *Config) {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	if c.ListenAddr != "" {
		config.ListenAddr = c.ListenAddr
	}
	if c.RuntimeEnvFile != "" {
		config.RuntimeEnvFile = c.RuntimeEnvFile
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
}

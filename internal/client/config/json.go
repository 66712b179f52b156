package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/starterkit/internal/flagx"
	"github.com/dmitrijs2005/starterkit/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer fields
// tell an absent key from an explicit zero value.
type JsonConfig struct {
	RuntimeEnvFile *string         `json:"runtime_env_file"`
	StorageFile    *string         `json:"storage_file"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	LogLevel       *string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without such a flag nothing happens. Read or unmarshal
// errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.RuntimeEnvFile != nil {
		cfg.RuntimeEnvFile = *jc.RuntimeEnvFile
	}
	if jc.StorageFile != nil {
		cfg.StorageFile = *jc.StorageFile
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}

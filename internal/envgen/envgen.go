// Package envgen is the bootstrap step that injects runtime configuration:
// it reads a dotenv file and writes the document the client's env reader
// consumes (JSON), plus the browser-style env.js form of the same values.
package envgen

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/starterkit/internal/client/env"
	"github.com/joho/godotenv"
)

// Options selects the input and the outputs. Empty output paths are skipped.
type Options struct {
	DotEnvPath string
	JSONPath   string
	JSPath     string
}

// ReadDotEnv loads API_BASE_URL and APP_ENV from path. A missing file yields
// the defaults; empty values fall back individually.
func ReadDotEnv(path string) (env.RuntimeConfig, error) {
	values := map[string]string{}
	if path != "" {
		parsed, err := godotenv.Read(path)
		switch {
		case err == nil:
			values = parsed
		case errors.Is(err, fs.ErrNotExist):
		default:
			return env.RuntimeConfig{}, fmt.Errorf("read %s: %w", path, err)
		}
	}

	return env.RuntimeConfig{
		APIBaseURL: valueOr(values["API_BASE_URL"], env.DefaultAPIBaseURL),
		AppEnv:     valueOr(values["APP_ENV"], env.DefaultAppEnv),
	}, nil
}

func valueOr(v, fallback string) string {
	if trimmed := strings.TrimSpace(v); trimmed != "" {
		return trimmed
	}
	return fallback
}

// RenderJSON renders the document read by env.FileSource.
func RenderJSON(cfg env.RuntimeConfig) ([]byte, error) {
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// RenderJS renders the page-global form: window.__ENV__ = {...};
func RenderJS(cfg env.RuntimeConfig) ([]byte, error) {
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, err
	}
	return []byte("window.__ENV__ = " + string(b) + ";\n"), nil
}

// Generate reads opts.DotEnvPath and writes every requested output.
func Generate(opts Options) (env.RuntimeConfig, error) {
	cfg, err := ReadDotEnv(opts.DotEnvPath)
	if err != nil {
		return cfg, err
	}

	if opts.JSONPath != "" {
		b, err := RenderJSON(cfg)
		if err != nil {
			return cfg, err
		}
		if err := writeFile(opts.JSONPath, b); err != nil {
			return cfg, err
		}
	}

	if opts.JSPath != "" {
		b, err := RenderJS(cfg)
		if err != nil {
			return cfg, err
		}
		if err := writeFile(opts.JSPath, b); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

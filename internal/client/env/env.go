// Package env reads the runtime configuration injected before the client
// starts. The same binary can talk to different backends by rewriting the
// injected document (see cmd/genenv) instead of rebuilding.
package env

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"regexp"
	"strings"
)

const (
	// MockSentinel as API base URL routes every request to the mock responder.
	MockSentinel = "__MOCK__"

	DefaultAPIBaseURL = MockSentinel
	DefaultAppEnv     = "development"
)

// unresolved shell-style placeholders such as $API_BASE_URL
var placeholderPattern = regexp.MustCompile(`^\$[A-Z0-9_]+$`)

// RuntimeConfig is the normalized runtime configuration.
type RuntimeConfig struct {
	APIBaseURL string `json:"API_BASE_URL"`
	AppEnv     string `json:"APP_ENV"`
}

// Defaults returns the compiled-in configuration.
func Defaults() RuntimeConfig {
	return RuntimeConfig{APIBaseURL: DefaultAPIBaseURL, AppEnv: DefaultAppEnv}
}

// UsesMock reports whether requests must go to the mock responder.
func (c RuntimeConfig) UsesMock() bool {
	return c.APIBaseURL == "" || c.APIBaseURL == MockSentinel
}

// Injected is the raw document as written by the bootstrap step. Both fields
// are optional.
type Injected struct {
	APIBaseURL *string `json:"API_BASE_URL,omitempty"`
	AppEnv     *string `json:"APP_ENV,omitempty"`
}

// Source yields the injected document. ok=false means nothing was injected.
type Source interface {
	Load() (doc Injected, ok bool)
}

// StaticSource is an in-process injection.
type StaticSource struct {
	Doc       Injected
	Available bool
}

func (s StaticSource) Load() (Injected, bool) {
	return s.Doc, s.Available
}

// Inject builds an available StaticSource from plain strings.
func Inject(apiBaseURL, appEnv string) StaticSource {
	return StaticSource{Doc: Injected{APIBaseURL: &apiBaseURL, AppEnv: &appEnv}, Available: true}
}

// FileSource reads the JSON document at Path on every Load. A missing or
// unreadable file counts as "not injected".
type FileSource struct {
	Path string
}

func (f FileSource) Load() (Injected, bool) {
	doc, err := ReadFile(f.Path)
	if err != nil {
		return Injected{}, false
	}
	return doc, true
}

// ReadFile parses the injected document at path.
func ReadFile(path string) (Injected, error) {
	var doc Injected
	if path == "" {
		return doc, fs.ErrNotExist
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return doc, err
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, errors.Join(errors.New("malformed runtime env document"), err)
	}
	return doc, nil
}

// Reader resolves the RuntimeConfig from a Source.
type Reader struct {
	source Source
}

// NewReader returns a Reader over source. A nil source always yields Defaults.
func NewReader(source Source) *Reader {
	return &Reader{source: source}
}

// Config re-reads the source and normalizes each field independently.
func (r *Reader) Config() RuntimeConfig {
	if r == nil || r.source == nil {
		return Defaults()
	}
	doc, ok := r.source.Load()
	if !ok {
		return Defaults()
	}
	return RuntimeConfig{
		APIBaseURL: normalizeValue(doc.APIBaseURL, DefaultAPIBaseURL),
		AppEnv:     normalizeValue(doc.AppEnv, DefaultAppEnv),
	}
}

func normalizeValue(value *string, fallback string) string {
	if value == nil {
		return fallback
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" || placeholderPattern.MatchString(trimmed) {
		return fallback
	}
	return trimmed
}

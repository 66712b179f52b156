package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Known endpoints.
const (
	LoginEndpoint    = "/api/v1/common/auth/login"
	RegisterEndpoint = "/api/v1/common/auth/register"
	HealthEndpoint   = "/health"
)

const (
	// DefaultMockDelay is the simulated network latency.
	DefaultMockDelay = 500 * time.Millisecond

	// FailingEmail always gets a 401 from the mock login.
	FailingEmail = "fail@example.com"

	MockAccessToken  = "mock-access-token"
	MockRefreshToken = "mock-refresh-token"
	mockUserID       = "550e8400-e29b-41d4-a716-446655440000"
	mockExpiresIn    = 28800

	invalidCredentialsMessage = "Invalid credentials. Use any valid email except fail@example.com."
)

// JavaScript's Date.toISOString layout, always UTC.
const isoTimestampLayout = "2006-01-02T15:04:05.000Z"

// Mock answers the known endpoints with canned payloads after a fixed delay.
type Mock struct {
	Delay time.Duration
	Now   func() time.Time
}

func NewMock() *Mock {
	return &Mock{Delay: DefaultMockDelay, Now: time.Now}
}

func (m *Mock) timestamp() string {
	now := time.Now
	if m.Now != nil {
		now = m.Now
	}
	return now().UTC().Format(isoTimestampLayout)
}

// Respond waits for the configured delay, then answers like Handle. A
// cancelled ctx ends the wait with a status 0 error.
func (m *Mock) Respond(ctx context.Context, path string, opts RequestOptions) (any, error) {
	if m.Delay > 0 {
		timer := time.NewTimer(m.Delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, &APIError{Status: StatusNetwork, Message: requestCancelledMessage, Err: ctx.Err()}
		}
	}
	return m.Handle(opts.method(), path, opts.Body)
}

// Handle matches method and path against the known endpoints without any
// delay. Unknown combinations fail with 404.
func (m *Mock) Handle(method, path string, body any) (any, error) {
	path = normalizePath(path)

	switch {
	case method == http.MethodPost && path == LoginEndpoint:
		return m.login(parseMockBody(body))

	case method == http.MethodPost && path == RegisterEndpoint:
		return map[string]any{
			"success": true,
			"message": "Mock registration successful.",
		}, nil

	case method == http.MethodGet && path == HealthEndpoint:
		return map[string]any{
			"status":    "ok",
			"message":   "Mock health check passed.",
			"timestamp": m.timestamp(),
		}, nil
	}

	return nil, NewAPIError(http.StatusNotFound, fmt.Sprintf("Mock endpoint not found: %s %s", method, path))
}

func (m *Mock) login(body map[string]any) (any, error) {
	email, _ := body["email"].(string)
	password, _ := body["password"].(string)

	if email == "" || password == "" || email == FailingEmail {
		return nil, NewAPIError(http.StatusUnauthorized, invalidCredentialsMessage)
	}

	return map[string]any{
		"success":    true,
		"statusCode": float64(http.StatusOK),
		"data": map[string]any{
			"accessToken":  MockAccessToken,
			"refreshToken": MockRefreshToken,
			"expiresIn":    float64(mockExpiresIn),
			"user": map[string]any{
				"id":            mockUserID,
				"email":         email,
				"emailVerified": true,
				"smsNumber":     "+905551234567",
				"smsVerified":   false,
				"firstName":     "John",
				"lastName":      "Doe",
			},
		},
		"message":      "Success",
		"timestamp":    m.timestamp(),
		"path":         LoginEndpoint,
		"responseTime": float64(m.Delay.Milliseconds()),
	}, nil
}

// parseMockBody turns any request body into an object. Strings and byte
// slices are JSON-decoded, structs are round-tripped through JSON; anything
// that does not decode to an object yields an empty map.
func parseMockBody(body any) map[string]any {
	var raw []byte
	switch b := body.(type) {
	case nil:
		return map[string]any{}
	case map[string]any:
		return b
	case string:
		raw = []byte(b)
	case []byte:
		raw = b
	case json.RawMessage:
		raw = b
	default:
		encoded, err := json.Marshal(b)
		if err != nil {
			return map[string]any{}
		}
		raw = encoded
	}

	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return map[string]any{}
	}
	return obj
}

// normalizePath reduces an absolute URL to its path and makes sure relative
// paths start with a slash.
func normalizePath(path string) string {
	if absoluteURLPattern.MatchString(path) {
		u, err := url.Parse(path)
		if err != nil || u.Path == "" {
			return "/"
		}
		return u.Path
	}
	if strings.HasPrefix(path, "/") {
		return path
	}
	return "/" + path
}

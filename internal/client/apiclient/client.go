package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/dmitrijs2005/starterkit/internal/client/env"
	"github.com/dmitrijs2005/starterkit/internal/common"
	"github.com/dmitrijs2005/starterkit/internal/logging"
	"github.com/google/uuid"
)

var absoluteURLPattern = regexp.MustCompile(`(?i)^https?://`)

// ConfigReader yields the runtime configuration; *env.Reader satisfies it.
type ConfigReader interface {
	Config() env.RuntimeConfig
}

// TokenStore is the part of the auth accessor the request layer needs;
// *auth.Tokens satisfies it.
type TokenStore interface {
	AccessToken(ctx context.Context) (string, bool)
	ClearAuthData(ctx context.Context)
}

// RequestOptions describes one call. The zero value is an authenticated GET
// without a body.
type RequestOptions struct {
	// Method defaults to GET.
	Method string
	Headers http.Header
	// Body is sent verbatim when it is a string or []byte, JSON-encoded
	// otherwise. nil means no body.
	Body any
	// SkipAuth suppresses the Authorization header.
	SkipAuth bool
}

func (o RequestOptions) method() string {
	if o.Method == "" {
		return http.MethodGet
	}
	return o.Method
}

type Client struct {
	env          ConfigReader
	tokens       TokenStore
	httpClient   *http.Client
	mock         *Mock
	log          logging.Logger
	newRequestID func() string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient = &http.Client{Timeout: d} }
}

func WithMock(m *Mock) Option {
	return func(c *Client) { c.mock = m }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New builds a Client. tokens may be nil, in which case no bearer token is
// ever sent and 401 responses clear nothing.
func New(envReader ConfigReader, tokens TokenStore, opts ...Option) *Client {
	c := &Client{
		env:          envReader,
		tokens:       tokens,
		httpClient:   &http.Client{Timeout: 15 * time.Second},
		mock:         NewMock(),
		log:          logging.Nop(),
		newRequestID: func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) config() env.RuntimeConfig {
	if c.env == nil {
		return env.Defaults()
	}
	return c.env.Config()
}

// Do performs one request and returns the decoded payload: the JSON value for
// JSON responses, {"message": text} for non-empty text, nil for 204 or an
// empty body. Mock and live responses have the same shape.
func (c *Client) Do(ctx context.Context, path string, opts RequestOptions) (any, error) {
	cfg := c.config()

	if cfg.UsesMock() {
		c.log.Debug(ctx, "dispatching to mock responder", "method", opts.method(), "path", path)
		return c.mock.Respond(ctx, path, opts)
	}
	return c.doLive(ctx, cfg, path, opts)
}

func (c *Client) doLive(ctx context.Context, cfg env.RuntimeConfig, path string, opts RequestOptions) (any, error) {
	req, err := c.newRequest(ctx, cfg, path, opts)
	if err != nil {
		return nil, err
	}

	log := c.log.With("method", req.Method, "url", req.URL.String(), "request_id", req.Header.Get(common.RequestIDHeaderName))
	log.Debug(ctx, "sending request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return nil, transportError(ctx, err)
	}
	defer resp.Body.Close()

	log.Debug(ctx, "response received", "status", resp.StatusCode)

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	payload, parseErr := parseResponseBody(resp)
	var readErr *bodyReadError
	if errors.As(parseErr, &readErr) {
		log.Warn(ctx, "reading response body failed", "error", parseErr)
		return nil, transportError(ctx, readErr.err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusUnauthorized && c.tokens != nil {
			log.Warn(ctx, "unauthorized response, clearing auth data")
			c.tokens.ClearAuthData(ctx)
		}
		return nil, &APIError{Status: resp.StatusCode, Message: errorMessage(resp.StatusCode, payload), Err: parseErr}
	}

	if parseErr != nil {
		log.Warn(ctx, "malformed response body", "error", parseErr)
		return nil, &APIError{Status: http.StatusInternalServerError, Message: unreadableBodyMessage, Err: parseErr}
	}
	return payload, nil
}

func transportError(ctx context.Context, err error) *APIError {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return &APIError{Status: StatusNetwork, Message: requestCancelledMessage, Err: ctxErr}
	}
	return &APIError{Status: StatusNetwork, Message: networkFailedMessage, Err: err}
}

func (c *Client) newRequest(ctx context.Context, cfg env.RuntimeConfig, path string, opts RequestOptions) (*http.Request, error) {
	headers := http.Header{}
	for k, v := range opts.Headers {
		headers[http.CanonicalHeaderKey(k)] = append([]string(nil), v...)
	}

	if !opts.SkipAuth && c.tokens != nil {
		if token, ok := c.tokens.AccessToken(ctx); ok && token != "" {
			headers.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
		}
	}

	var body io.Reader
	if opts.Body != nil {
		if headers.Get(common.ContentTypeHeaderName) == "" {
			headers.Set(common.ContentTypeHeaderName, common.JSONContentType)
		}
		encoded, err := encodeBody(opts.Body)
		if err != nil {
			return nil, &APIError{Status: StatusNetwork, Message: "Request body could not be encoded.", Err: err}
		}
		body = bytes.NewReader(encoded)
	}

	if headers.Get(common.RequestIDHeaderName) == "" {
		headers.Set(common.RequestIDHeaderName, c.newRequestID())
	}

	req, err := http.NewRequestWithContext(ctx, opts.method(), resolveURL(cfg.APIBaseURL, path), body)
	if err != nil {
		return nil, &APIError{Status: StatusNetwork, Message: networkFailedMessage, Err: err}
	}
	req.Header = headers
	return req, nil
}

func encodeBody(body any) ([]byte, error) {
	switch b := body.(type) {
	case string:
		return []byte(b), nil
	case []byte:
		return b, nil
	case json.RawMessage:
		return b, nil
	default:
		return json.Marshal(b)
	}
}

// resolveURL passes absolute http(s) URLs through and joins relative paths to
// the base, dropping one trailing slash from the base.
func resolveURL(base, path string) string {
	if absoluteURLPattern.MatchString(path) {
		return path
	}
	return strings.TrimSuffix(base, "/") + normalizePath(path)
}

// bodyReadError means the connection failed while the body was being read.
type bodyReadError struct {
	err error
}

func (e *bodyReadError) Error() string { return "read response body: " + e.err.Error() }
func (e *bodyReadError) Unwrap() error { return e.err }

func parseResponseBody(resp *http.Response) (any, error) {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &bodyReadError{err: err}
	}

	if strings.Contains(resp.Header.Get(common.ContentTypeHeaderName), common.JSONContentType) {
		var payload any
		if err := json.Unmarshal(data, &payload); err != nil {
			return nil, err
		}
		return payload, nil
	}

	if len(data) == 0 {
		return nil, nil
	}
	return map[string]any{"message": string(data)}, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

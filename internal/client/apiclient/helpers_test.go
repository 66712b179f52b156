package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/starterkit/internal/client/auth"
	"github.com/dmitrijs2005/starterkit/internal/client/env"
	"github.com/dmitrijs2005/starterkit/internal/client/storage"
)

var fixedNow = time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)

func instantMock() *Mock {
	return &Mock{Delay: 0, Now: func() time.Time { return fixedNow }}
}

func newTokens() *auth.Tokens {
	return auth.NewTokens(storage.NewSafeStore(storage.NewMemoryBackend(), nil))
}

// newMockClient returns a client whose runtime config selects the mock.
func newMockClient(t *testing.T, baseURL string) (*Client, *auth.Tokens) {
	t.Helper()
	tokens := newTokens()
	c := New(env.NewReader(env.Inject(baseURL, "test")), tokens, WithMock(instantMock()))
	return c, tokens
}

// newLiveClient starts an httptest server with h and points the client at it.
func newLiveClient(t *testing.T, h http.HandlerFunc) (*Client, *auth.Tokens, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	tokens := newTokens()
	c := New(env.NewReader(env.Inject(srv.URL, "test")), tokens, WithMock(instantMock()), WithHTTPClient(srv.Client()))
	return c, tokens, srv
}

func seedAuth(tokens *auth.Tokens) {
	ctx := context.Background()
	tokens.SetTokens(ctx, auth.AuthTokens{AccessToken: "acc-1", RefreshToken: "ref-1"})
	tokens.SetUserEmail(ctx, "a@b.com")
}

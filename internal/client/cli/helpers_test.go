package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/starterkit/internal/client/apiclient"
	"github.com/dmitrijs2005/starterkit/internal/client/auth"
	"github.com/dmitrijs2005/starterkit/internal/client/env"
	"github.com/dmitrijs2005/starterkit/internal/client/state"
	"github.com/dmitrijs2005/starterkit/internal/client/storage"
)

type fakeAPI struct {
	loginPayload apiclient.LoginPayload
	loginResp    *apiclient.LoginResponse
	loginErr     error
	loginCalls   int

	regPayload apiclient.RegisterPayload
	regResp    *apiclient.RegisterResponse
	regErr     error
	regCalls   int

	healthResp  *apiclient.HealthResponse
	healthErr   error
	healthCalls int
}

func (f *fakeAPI) Login(_ context.Context, p apiclient.LoginPayload) (*apiclient.LoginResponse, error) {
	f.loginCalls++
	f.loginPayload = p
	return f.loginResp, f.loginErr
}

func (f *fakeAPI) Register(_ context.Context, p apiclient.RegisterPayload) (*apiclient.RegisterResponse, error) {
	f.regCalls++
	f.regPayload = p
	return f.regResp, f.regErr
}

func (f *fakeAPI) Health(context.Context) (*apiclient.HealthResponse, error) {
	f.healthCalls++
	return f.healthResp, f.healthErr
}

type testApp struct {
	*App
	out    *bytes.Buffer
	tokens *auth.Tokens
	kv     *storage.SafeStore
}

func newTestApp(t *testing.T, api APIService) *testApp {
	t.Helper()
	ctx := context.Background()

	kv := storage.NewSafeStore(storage.NewMemoryBackend(), nil)
	tokens := auth.NewTokens(kv)
	out := &bytes.Buffer{}

	app := NewApp(Deps{
		API:       api,
		Creds:     tokens,
		Env:       env.NewReader(env.Inject("", "")),
		AuthStore: state.NewAuthStore(ctx, tokens),
		Theme:     state.NewThemeStore(ctx, kv),
	})
	app.out = out
	app.reader = bufio.NewReader(strings.NewReader(""))
	app.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	return &testApp{App: app, out: out, tokens: tokens, kv: kv}
}

// stubInputs answers the text prompt with text and every password prompt
// with the next entry of passwords.
func stubInputs(t *testing.T, text string, passwords ...string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return text, nil }
	getPassword = func(_ string, _ io.Writer) ([]byte, error) {
		if len(passwords) == 0 {
			return nil, io.EOF
		}
		pw := passwords[0]
		passwords = passwords[1:]
		return []byte(pw), nil
	}
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func strPtr(s string) *string { return &s }

package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/starterkit/internal/client/apiclient"
	"github.com/dmitrijs2005/starterkit/internal/client/auth"
	"github.com/dmitrijs2005/starterkit/internal/client/env"
	"github.com/dmitrijs2005/starterkit/internal/client/state"
	"github.com/dmitrijs2005/starterkit/internal/logging"
)

// APIService is the part of the request layer the client calls.
type APIService interface {
	Login(ctx context.Context, payload apiclient.LoginPayload) (*apiclient.LoginResponse, error)
	Register(ctx context.Context, payload apiclient.RegisterPayload) (*apiclient.RegisterResponse, error)
	Health(ctx context.Context) (*apiclient.HealthResponse, error)
}

// Credentials is the session storage the client reads and writes.
type Credentials interface {
	state.CredentialReader
	AccessToken(ctx context.Context) (string, bool)
	SetTokens(ctx context.Context, tokens auth.AuthTokens)
	SetUserEmail(ctx context.Context, email string)
	ClearAuthData(ctx context.Context)
}

type EnvReader interface {
	Config() env.RuntimeConfig
}

type App struct {
	api       APIService
	creds     Credentials
	env       EnvReader
	authStore *state.AuthStore
	theme     *state.ThemeStore
	log       logging.Logger

	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time

	// lastRequest is re-run by the retry command.
	lastRequest func(ctx context.Context) error
}

type Deps struct {
	API       APIService
	Creds     Credentials
	Env       EnvReader
	AuthStore *state.AuthStore
	Theme     *state.ThemeStore
	Log       logging.Logger
}

func NewApp(d Deps) *App {
	log := d.Log
	if log == nil {
		log = logging.Nop()
	}
	return &App{
		api:       d.API,
		creds:     d.Creds,
		env:       d.Env,
		authStore: d.AuthStore,
		theme:     d.Theme,
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
		now:       time.Now,
	}
}

// Run prints a welcome line and blocks in the REPL until exit or EOF.
func (a *App) Run(ctx context.Context) {
	unsubscribe := a.theme.Subscribe(func(t state.Theme) {
		a.log.Debug(ctx, "theme changed", "theme", string(t))
	})
	defer unsubscribe()

	fmt.Fprintln(a.out, "Welcome to the starter kit client (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isAuthenticated() bool {
	return a.authStore.Snapshot().IsAuthenticated
}

func (a *App) getStatus() string {
	s := "guest"
	if snap := a.authStore.Snapshot(); snap.IsAuthenticated {
		s = snap.UserEmail
		if s == "" {
			s = "signed in"
		}
	}
	return fmt.Sprintf("(%s, %s)", s, a.theme.Theme())
}

// syncAfter re-reads the credentials when a request was rejected with 401,
// since the request layer clears them on its own.
func (a *App) syncAfter(ctx context.Context, err error) {
	if apiclient.IsUnauthorized(err) {
		a.authStore.SyncFromStorage(ctx)
	}
}

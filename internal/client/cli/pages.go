package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/starterkit/internal/client/auth"
	"github.com/dmitrijs2005/starterkit/internal/client/state"
)

// Status prints the session snapshot. For JWT access tokens the subject and
// expiry are shown as well; opaque tokens are skipped silently.
func (a *App) Status(ctx context.Context) error {
	snap := a.authStore.Snapshot()
	if !snap.IsAuthenticated {
		fmt.Fprintln(a.out, "Not signed in")
		return nil
	}

	fmt.Fprintf(a.out, "Signed in as %s\n", snap.UserEmail)

	token, ok := a.creds.AccessToken(ctx)
	if !ok {
		return nil
	}
	info, err := auth.Inspect(token)
	if err != nil {
		a.log.Debug(ctx, "access token is not a readable JWT", "error", err)
		return nil
	}
	if info.Subject != "" {
		fmt.Fprintf(a.out, "Subject: %s\n", info.Subject)
	}
	if info.ExpiresAt != nil {
		validity := "valid"
		if info.Expired(a.now()) {
			validity = "expired"
		}
		fmt.Fprintf(a.out, "Token expires: %s (%s)\n", info.ExpiresAt.UTC().Format(time.RFC3339), validity)
	}
	return nil
}

// Protected is only reachable with a stored access token.
func (a *App) Protected(ctx context.Context) error {
	if !a.creds.HasAccessToken(ctx) {
		fmt.Fprintln(a.out, "This area requires authentication. Use 'login' first.")
		return nil
	}

	email, _ := a.creds.UserEmail(ctx)
	fmt.Fprintf(a.out, "Welcome to the protected area, %s\n", email)
	return nil
}

// Theme shows the current theme, or sets it with light, dark or toggle.
func (a *App) Theme(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintf(a.out, "Theme: %s\n", a.theme.Theme())
		return nil
	}

	var next state.Theme
	if args[0] == "toggle" {
		next = a.theme.Toggle(ctx)
	} else {
		t, err := state.ParseTheme(args[0])
		if err != nil {
			return err
		}
		if err := a.theme.SetTheme(ctx, t); err != nil {
			return err
		}
		next = t
	}

	fmt.Fprintf(a.out, "Theme: %s\n", next)
	return nil
}

// Env prints the effective runtime configuration.
func (a *App) Env(_ context.Context) error {
	cfg := a.env.Config()

	mode := "live"
	if cfg.UsesMock() {
		mode = "mock"
	}
	fmt.Fprintf(a.out, "API_BASE_URL: %s\n", cfg.APIBaseURL)
	fmt.Fprintf(a.out, "APP_ENV: %s\n", cfg.AppEnv)
	fmt.Fprintf(a.out, "Requests: %s\n", mode)
	return nil
}

package cli

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/dmitrijs2005/starterkit/internal/client/apiclient"
	"github.com/dmitrijs2005/starterkit/internal/client/auth"
	"github.com/dmitrijs2005/starterkit/internal/common"
)

// Login prompts for credentials, calls the login endpoint and stores the
// returned tokens and email. The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	if email == "" {
		return common.ErrEmptyInput
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	resp, err := a.api.Login(ctx, apiclient.LoginPayload{Email: email, Password: string(password)})
	if err != nil {
		a.syncAfter(ctx, err)
		return err
	}

	a.creds.SetTokens(ctx, auth.AuthTokens{AccessToken: resp.AccessToken, RefreshToken: resp.RefreshToken})

	userEmail := email
	if resp.User != nil && resp.User.Email != nil {
		userEmail = *resp.User.Email
	}
	a.creds.SetUserEmail(ctx, userEmail)
	a.authStore.SetAuthenticated(userEmail)

	a.log.Info(ctx, "logged in", "email", userEmail)
	fmt.Fprintf(a.out, "Logged in as %s\n", userEmail)
	return nil
}

// Register prompts for email, password and its confirmation. Mismatching
// passwords are refused before any request is made.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	if email == "" {
		return common.ErrEmptyInput
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if subtle.ConstantTimeCompare(password, confirm) != 1 {
		return common.ErrPasswordMismatch
	}

	resp, err := a.api.Register(ctx, apiclient.RegisterPayload{
		Email:           email,
		Password:        string(password),
		ConfirmPassword: string(confirm),
	})
	if err != nil {
		return err
	}

	msg := resp.Message
	if msg == "" {
		msg = "Registration completed."
	}
	fmt.Fprintln(a.out, msg)
	return nil
}

// Logout clears the stored credentials and the session snapshot.
func (a *App) Logout(ctx context.Context) error {
	a.creds.ClearAuthData(ctx)
	a.authStore.ClearAuthentication()

	a.log.Info(ctx, "logged out")
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// Package auth stores the session credentials in the key-value store and
// answers the one authorization question the client asks: is there an
// access token?
package auth

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/starterkit/internal/client/storage"
)

// Storage keys.
const (
	AccessTokenKey  = "accessToken"
	RefreshTokenKey = "refreshToken"
	UserEmailKey    = "authUserEmail"
)

// AuthTokens is the pair issued on login.
type AuthTokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Tokens is a typed view over three slots of a storage.Store.
// Multi-slot writes and clears are serialized so readers never observe a
// half-written pair from another goroutine using the same Tokens.
type Tokens struct {
	mu    sync.RWMutex
	store storage.Store
}

func NewTokens(store storage.Store) *Tokens {
	return &Tokens{store: store}
}

func (t *Tokens) AccessToken(ctx context.Context) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.store.Get(ctx, AccessTokenKey)
}

func (t *Tokens) RefreshToken(ctx context.Context) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.store.Get(ctx, RefreshTokenKey)
}

func (t *Tokens) SetTokens(ctx context.Context, tokens AuthTokens) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.store.Set(ctx, AccessTokenKey, tokens.AccessToken)
	t.store.Set(ctx, RefreshTokenKey, tokens.RefreshToken)
}

func (t *Tokens) ClearTokens(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.clearTokens(ctx)
}

func (t *Tokens) clearTokens(ctx context.Context) {
	t.store.Remove(ctx, AccessTokenKey)
	t.store.Remove(ctx, RefreshTokenKey)
}

// HasAccessToken is a presence check. It does not look at signature or
// expiry; an empty stored string counts as absent.
func (t *Tokens) HasAccessToken(ctx context.Context) bool {
	token, ok := t.AccessToken(ctx)
	return ok && token != ""
}

func (t *Tokens) SetUserEmail(ctx context.Context, email string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.store.Set(ctx, UserEmailKey, email)
}

func (t *Tokens) UserEmail(ctx context.Context) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.store.Get(ctx, UserEmailKey)
}

func (t *Tokens) ClearUserEmail(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.store.Remove(ctx, UserEmailKey)
}

// ClearAuthData removes both tokens and the user email.
func (t *Tokens) ClearAuthData(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.clearTokens(ctx)
	t.store.Remove(ctx, UserEmailKey)
}

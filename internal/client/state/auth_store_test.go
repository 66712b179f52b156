package state

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/starterkit/internal/client/auth"
	"github.com/dmitrijs2005/starterkit/internal/client/storage"
	"github.com/stretchr/testify/assert"
)

func newTokens() *auth.Tokens {
	return auth.NewTokens(storage.NewSafeStore(storage.NewMemoryBackend(), nil))
}

func TestAuthStore_InitialSnapshotFromStorage(t *testing.T) {
	ctx := context.Background()
	tokens := newTokens()
	tokens.SetTokens(ctx, auth.AuthTokens{AccessToken: "a", RefreshToken: "r"})
	tokens.SetUserEmail(ctx, "a@b.com")

	s := NewAuthStore(ctx, tokens)

	assert.Equal(t, AuthSnapshot{IsAuthenticated: true, UserEmail: "a@b.com"}, s.Snapshot())
}

func TestAuthStore_NilCredentials(t *testing.T) {
	s := NewAuthStore(context.Background(), nil)
	assert.Equal(t, AuthSnapshot{}, s.Snapshot())
}

func TestAuthStore_TransitionsNotifyObservers(t *testing.T) {
	ctx := context.Background()
	tokens := newTokens()
	s := NewAuthStore(ctx, tokens)

	var seen []AuthSnapshot
	unsubscribe := s.Subscribe(func(v AuthSnapshot) { seen = append(seen, v) })

	s.SetAuthenticated("a@b.com")
	s.ClearAuthentication()

	tokens.SetTokens(ctx, auth.AuthTokens{AccessToken: "a", RefreshToken: "r"})
	s.SyncFromStorage(ctx)

	unsubscribe()
	s.ClearAuthentication()

	assert.Equal(t, []AuthSnapshot{
		{IsAuthenticated: true, UserEmail: "a@b.com"},
		{},
		{IsAuthenticated: true},
	}, seen)
	assert.Equal(t, AuthSnapshot{}, s.Snapshot())
}

func TestAuthStore_SyncAfterExternalClear(t *testing.T) {
	ctx := context.Background()
	tokens := newTokens()
	s := NewAuthStore(ctx, tokens)
	tokens.SetTokens(ctx, auth.AuthTokens{AccessToken: "a", RefreshToken: "r"})
	s.SetAuthenticated("a@b.com")

	tokens.ClearAuthData(ctx)
	s.SyncFromStorage(ctx)

	assert.False(t, s.Snapshot().IsAuthenticated)
	assert.Empty(t, s.Snapshot().UserEmail)
}

func TestObservers_OrderAndUnsubscribe(t *testing.T) {
	var o observers[int]
	var calls []string

	o.add(func(int) { calls = append(calls, "first") })
	remove := o.add(func(int) { calls = append(calls, "second") })
	o.add(func(int) { calls = append(calls, "third") })

	o.notify(1)
	remove()
	remove()
	o.notify(2)

	assert.Equal(t, []string{"first", "second", "third", "first", "third"}, calls)
}

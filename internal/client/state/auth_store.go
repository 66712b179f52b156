package state

import (
	"context"
	"sync"
)

// AuthSnapshot is what the UI knows about the session.
type AuthSnapshot struct {
	IsAuthenticated bool
	UserEmail       string
}

// CredentialReader is the part of auth.Tokens the store reads from.
type CredentialReader interface {
	HasAccessToken(ctx context.Context) bool
	UserEmail(ctx context.Context) (string, bool)
}

// AuthStore mirrors the persisted credentials for the UI.
type AuthStore struct {
	mu        sync.RWMutex
	snapshot  AuthSnapshot
	creds     CredentialReader
	observers observers[AuthSnapshot]
}

// NewAuthStore creates the store and loads the initial snapshot from creds.
func NewAuthStore(ctx context.Context, creds CredentialReader) *AuthStore {
	s := &AuthStore{creds: creds}
	s.snapshot = s.read(ctx)
	return s
}

func (s *AuthStore) read(ctx context.Context) AuthSnapshot {
	if s.creds == nil {
		return AuthSnapshot{}
	}
	email, _ := s.creds.UserEmail(ctx)
	return AuthSnapshot{IsAuthenticated: s.creds.HasAccessToken(ctx), UserEmail: email}
}

func (s *AuthStore) Snapshot() AuthSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Subscribe registers fn for every change; the returned func unsubscribes.
func (s *AuthStore) Subscribe(fn func(AuthSnapshot)) func() {
	return s.observers.add(fn)
}

func (s *AuthStore) set(next AuthSnapshot) {
	s.mu.Lock()
	s.snapshot = next
	s.mu.Unlock()
	s.observers.notify(next)
}

// SyncFromStorage re-reads the persisted credentials, e.g. after a request
// layer 401 cleared them behind the store's back.
func (s *AuthStore) SyncFromStorage(ctx context.Context) {
	s.set(s.read(ctx))
}

func (s *AuthStore) SetAuthenticated(email string) {
	s.set(AuthSnapshot{IsAuthenticated: true, UserEmail: email})
}

func (s *AuthStore) ClearAuthentication() {
	s.set(AuthSnapshot{})
}

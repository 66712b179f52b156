package state

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/starterkit/internal/client/storage"
	"github.com/dmitrijs2005/starterkit/internal/common"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ThemeStorageKey is the persisted key of the theme preference.
const ThemeStorageKey = "ui-theme"

func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), nil
	default:
		return "", fmt.Errorf("%w: %q", common.ErrUnknownTheme, s)
	}
}

// persistedTheme is the stored document: {"state":{"theme":"dark"},"version":0}.
type persistedTheme struct {
	State struct {
		Theme Theme `json:"theme"`
	} `json:"state"`
	Version int `json:"version"`
}

// ThemeStore holds the UI theme and persists every change.
type ThemeStore struct {
	mu        sync.RWMutex
	theme     Theme
	store     storage.Store
	observers observers[Theme]
}

// NewThemeStore restores the persisted theme; anything missing or unreadable
// yields light.
func NewThemeStore(ctx context.Context, store storage.Store) *ThemeStore {
	s := &ThemeStore{theme: ThemeLight, store: store}
	if raw, ok := store.Get(ctx, ThemeStorageKey); ok {
		var doc persistedTheme
		if err := json.Unmarshal([]byte(raw), &doc); err == nil {
			if t, err := ParseTheme(string(doc.State.Theme)); err == nil {
				s.theme = t
			}
		}
	}
	return s
}

func (s *ThemeStore) Theme() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

func (s *ThemeStore) Subscribe(fn func(Theme)) func() {
	return s.observers.add(fn)
}

func (s *ThemeStore) SetTheme(ctx context.Context, t Theme) error {
	if _, err := ParseTheme(string(t)); err != nil {
		return err
	}

	s.mu.Lock()
	s.theme = t
	s.persist(ctx, t)
	s.mu.Unlock()

	s.observers.notify(t)
	return nil
}

func (s *ThemeStore) Toggle(ctx context.Context) Theme {
	s.mu.Lock()
	next := ThemeDark
	if s.theme == ThemeDark {
		next = ThemeLight
	}
	s.theme = next
	s.persist(ctx, next)
	s.mu.Unlock()

	s.observers.notify(next)
	return next
}

func (s *ThemeStore) persist(ctx context.Context, t Theme) {
	var doc persistedTheme
	doc.State.Theme = t
	b, err := json.Marshal(doc)
	if err != nil {
		return
	}
	s.store.Set(ctx, ThemeStorageKey, string(b))
}

package storage

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/starterkit/internal/logging"
)

const probeKey = "__storage_probe__"

// Store is the key-value contract the rest of the client depends on.
type Store interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
	Remove(ctx context.Context, key string)
}

// SafeStore passes operations through to a Backend while it is writable and
// degrades to process memory when it is not.
//
// Values written to memory while the backend was down stay readable after it
// recovers, unless the backend holds its own value for the key.
type SafeStore struct {
	mu      sync.Mutex
	backend Backend
	memory  map[string]string
	log     logging.Logger
}

// NewSafeStore wraps backend. A nil backend means no persistent storage at
// all, so every operation is served from memory.
func NewSafeStore(backend Backend, log logging.Logger) *SafeStore {
	if log == nil {
		log = logging.Nop()
	}
	return &SafeStore{backend: backend, memory: make(map[string]string), log: log}
}

// Available reports whether the backend currently passes the probe.
func (s *SafeStore) Available(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.probe(ctx)
}

func (s *SafeStore) probe(ctx context.Context) bool {
	if s.backend == nil {
		return false
	}

	var err error
	if p, ok := s.backend.(Prober); ok {
		err = p.Probe(ctx)
	} else {
		err = s.backend.Set(ctx, probeKey, "1")
		if err == nil {
			err = s.backend.Delete(ctx, probeKey)
		}
	}
	if err != nil {
		s.log.Debug(ctx, "persistent storage probe failed", "error", err)
		return false
	}
	return true
}

func (s *SafeStore) Get(ctx context.Context, key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.probe(ctx) {
		v, ok, err := s.backend.Get(ctx, key)
		if err != nil {
			s.log.Warn(ctx, "persistent read failed, using memory", "key", key, "error", err)
		} else if ok {
			return v, true
		}
	}

	v, ok := s.memory[key]
	return v, ok
}

func (s *SafeStore) Set(ctx context.Context, key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.probe(ctx) {
		err := s.backend.Set(ctx, key, value)
		if err == nil {
			delete(s.memory, key)
			return
		}
		s.log.Warn(ctx, "persistent write failed, using memory", "key", key, "error", err)
	}

	s.memory[key] = value
}

func (s *SafeStore) Remove(ctx context.Context, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.memory, key)

	if s.probe(ctx) {
		if err := s.backend.Delete(ctx, key); err != nil {
			s.log.Warn(ctx, "persistent delete failed", "key", key, "error", err)
		}
	}
}

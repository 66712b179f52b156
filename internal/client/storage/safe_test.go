package storage

import (
	"context"
	"sync"
	"testing"

	"github.com/dmitrijs2005/starterkit/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyBackend wraps a MemoryBackend and can be told to reject writes
// (quota exceeded) or all operations (storage disabled).
type flakyBackend struct {
	*MemoryBackend
	mu          sync.Mutex
	rejectWrite bool
	failReads   bool
	probeCalls  int
}

func newFlaky() *flakyBackend {
	return &flakyBackend{MemoryBackend: NewMemoryBackend()}
}

func (f *flakyBackend) setRejectWrite(v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rejectWrite = v
}

func (f *flakyBackend) Get(ctx context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	fail := f.failReads
	f.mu.Unlock()
	if fail {
		return "", false, common.ErrStorageUnavailable
	}
	return f.MemoryBackend.Get(ctx, key)
}

func (f *flakyBackend) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	reject := f.rejectWrite
	if key == probeKey {
		f.probeCalls++
	}
	f.mu.Unlock()
	if reject {
		return common.ErrStorageUnavailable
	}
	return f.MemoryBackend.Set(ctx, key, value)
}

// writeOnlyProbe passes the probe but rejects the real write.
type writeOnlyProbe struct {
	*MemoryBackend
}

func (w writeOnlyProbe) Probe(context.Context) error { return nil }

func (w writeOnlyProbe) Set(context.Context, string, string) error {
	return common.ErrStorageUnavailable
}

func TestSafeStore_PassThroughWhenWritable(t *testing.T) {
	ctx := context.Background()
	backend := newFlaky()
	s := NewSafeStore(backend, nil)

	s.Set(ctx, "accessToken", "a1")

	v, ok, err := backend.MemoryBackend.Get(ctx, "accessToken")
	require.NoError(t, err)
	assert.True(t, ok, "value must reach the backend")
	assert.Equal(t, "a1", v)

	got, ok := s.Get(ctx, "accessToken")
	assert.True(t, ok)
	assert.Equal(t, "a1", got)

	s.Remove(ctx, "accessToken")
	_, ok = s.Get(ctx, "accessToken")
	assert.False(t, ok)

	_, ok, _ = backend.MemoryBackend.Get(ctx, probeKey)
	assert.False(t, ok, "probe key must not linger")
}

func TestSafeStore_ProbesBeforeEveryOperation(t *testing.T) {
	ctx := context.Background()
	backend := newFlaky()
	s := NewSafeStore(backend, nil)

	s.Set(ctx, "k", "v")
	s.Get(ctx, "k")
	s.Remove(ctx, "k")

	assert.Equal(t, 3, backend.probeCalls)
}

func TestSafeStore_DegradesWhenWritesRejected(t *testing.T) {
	ctx := context.Background()
	backend := newFlaky()
	backend.setRejectWrite(true)
	s := NewSafeStore(backend, nil)

	require.False(t, s.Available(ctx))

	s.Set(ctx, "k", "v")
	got, ok := s.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "v", got)

	_, ok, _ = backend.MemoryBackend.Get(ctx, "k")
	assert.False(t, ok, "nothing may reach the rejecting backend")

	s.Remove(ctx, "k")
	_, ok = s.Get(ctx, "k")
	assert.False(t, ok)
}

func TestSafeStore_NilBackendUsesMemory(t *testing.T) {
	ctx := context.Background()
	s := NewSafeStore(nil, nil)

	assert.False(t, s.Available(ctx))

	s.Set(ctx, "ui-theme", "dark")
	got, ok := s.Get(ctx, "ui-theme")
	assert.True(t, ok)
	assert.Equal(t, "dark", got)

	s.Remove(ctx, "ui-theme")
	_, ok = s.Get(ctx, "ui-theme")
	assert.False(t, ok)
}

func TestSafeStore_WriteFailureAfterProbeFallsBackToMemory(t *testing.T) {
	ctx := context.Background()
	s := NewSafeStore(writeOnlyProbe{NewMemoryBackend()}, nil)

	s.Set(ctx, "k", "v")

	got, ok := s.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "v", got)
}

func TestSafeStore_ReadFailureAfterProbeFallsBackToMemory(t *testing.T) {
	ctx := context.Background()
	backend := newFlaky()
	s := NewSafeStore(backend, nil)

	backend.setRejectWrite(true)
	s.Set(ctx, "k", "mem")
	backend.setRejectWrite(false)
	backend.failReads = true

	got, ok := s.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "mem", got)
}

func TestSafeStore_MemoryValueSurvivesRecovery(t *testing.T) {
	ctx := context.Background()
	backend := newFlaky()
	s := NewSafeStore(backend, nil)

	backend.setRejectWrite(true)
	s.Set(ctx, "k", "written-while-down")
	backend.setRejectWrite(false)

	got, ok := s.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "written-while-down", got)

	s.Set(ctx, "k", "durable")
	got, _ = s.Get(ctx, "k")
	assert.Equal(t, "durable", got)
}

func TestSafeStore_SQLiteClosedDegrades(t *testing.T) {
	ctx := context.Background()
	b, err := OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	s := NewSafeStore(b, nil)
	require.True(t, s.Available(ctx))

	require.NoError(t, b.Close())

	s.Set(ctx, "k", "v")
	got, ok := s.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "v", got)
}

func TestSafeStore_ConcurrentUse(t *testing.T) {
	ctx := context.Background()
	s := NewSafeStore(NewMemoryBackend(), nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Set(ctx, "k", "v")
			s.Get(ctx, "k")
			s.Remove(ctx, "k")
		}()
	}
	wg.Wait()

	_, ok := s.Get(ctx, "k")
	assert.False(t, ok)
}

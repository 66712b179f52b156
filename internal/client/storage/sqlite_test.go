package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestSQLite(t *testing.T) *SQLiteBackend {
	t.Helper()
	b, err := OpenSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func TestSQLite_SetAndGet(t *testing.T) {
	b := openTestSQLite(t)
	ctx := context.Background()

	require.NoError(t, b.Set(ctx, "k1", "v1"))

	v, ok, err := b.Get(ctx, "k1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v1", v)
}

func TestSQLite_GetMissing(t *testing.T) {
	b := openTestSQLite(t)

	v, ok, err := b.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestSQLite_SetOverwrites(t *testing.T) {
	b := openTestSQLite(t)
	ctx := context.Background()

	require.NoError(t, b.Set(ctx, "k", "old"))
	require.NoError(t, b.Set(ctx, "k", "new"))

	v, _, err := b.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "new", v)
}

func TestSQLite_DeleteIsIdempotent(t *testing.T) {
	b := openTestSQLite(t)
	ctx := context.Background()

	require.NoError(t, b.Set(ctx, "x", "1"))
	require.NoError(t, b.Delete(ctx, "x"))
	require.NoError(t, b.Delete(ctx, "x"))

	_, ok, err := b.Get(ctx, "x")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLite_ProbeLeavesNoKey(t *testing.T) {
	b := openTestSQLite(t)
	ctx := context.Background()

	require.NoError(t, b.Probe(ctx))

	_, ok, err := b.Get(ctx, probeKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLite_ErrorsAfterClose(t *testing.T) {
	b := openTestSQLite(t)
	ctx := context.Background()
	require.NoError(t, b.Close())

	_, _, err := b.Get(ctx, "k")
	require.ErrorContains(t, err, "failed to get kv[k]")

	err = b.Set(ctx, "k", "v")
	require.ErrorContains(t, err, "failed to set kv[k]")

	err = b.Delete(ctx, "k")
	require.ErrorContains(t, err, "failed to delete kv[k]")

	require.Error(t, b.Probe(ctx))
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "app.db")

	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(ctx, db))
	require.NoError(t, RunMigrations(ctx, db))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='kv'`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestOpenSQLite_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "app.db")

	b, err := OpenSQLite(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, b.Set(ctx, "theme", "dark"))
	require.NoError(t, b.Close())

	b2, err := OpenSQLite(ctx, dsn)
	require.NoError(t, err)
	defer b2.Close()

	v, ok, err := b2.Get(ctx, "theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)
}

func TestWithTx_RollbackOnPanic(t *testing.T) {
	b := openTestSQLite(t)
	ctx := context.Background()

	func() {
		defer func() {
			require.NotNil(t, recover(), "expected panic to propagate")
		}()
		_ = withTx(ctx, b.db, func(ctx context.Context, tx execer) error {
			require.NoError(t, upsert(ctx, tx, "p", "1"))
			panic("kaput")
		})
	}()

	_, ok, err := b.Get(ctx, "p")
	require.NoError(t, err)
	assert.False(t, ok, "must rollback on panic")
}

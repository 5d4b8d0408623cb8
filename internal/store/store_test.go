package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DaanHessen/smallheath/internal/util"
)

func openTemp(t *testing.T) *DB {
	t.Helper()
	dsn := "sqlite3://" + filepath.Join(t.TempDir(), "data", "ledger.db")
	mig, err := NewMigrator(dsn)
	require.NoError(t, err)
	require.NoError(t, mig.Up(context.Background()))
	db, err := Open(context.Background(), util.Config{DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestKVRepoRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := NewKVRepo(openTemp(t))

	_, ok, err := kv.Get(ctx, "shelby-character")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, "shelby-character", "luca"))
	require.NoError(t, kv.Set(ctx, "shelby-character", "thomas"))
	v, ok, err := kv.Get(ctx, "shelby-character")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "thomas", v)

	require.NoError(t, kv.Set(ctx, "shelby-stealth", "true"))
	keys, err := kv.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"shelby-character", "shelby-stealth"}, keys)

	require.NoError(t, kv.Delete(ctx, "shelby-character"))
	require.NoError(t, kv.Delete(ctx, "missing"))
	_, ok, err = kv.Get(ctx, "shelby-character")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMigratorUpTwiceReportsNoChange(t *testing.T) {
	dsn := "sqlite3://" + filepath.Join(t.TempDir(), "ledger.db")
	mig, err := NewMigrator(dsn)
	require.NoError(t, err)
	require.NoError(t, mig.Up(context.Background()))
	assert.ErrorIs(t, mig.Up(context.Background()), ErrNoChange)
	require.NoError(t, mig.Down(context.Background()))
}

func TestNewMigratorRejectsUnknownScheme(t *testing.T) {
	_, err := NewMigrator("mysql://root@localhost/x")
	assert.Error(t, err)
}

func TestMemKV(t *testing.T) {
	ctx := context.Background()
	var kv KeyValue = NewMemKV()
	require.NoError(t, kv.Set(ctx, "a", "1"))
	v, ok, _ := kv.Get(ctx, "a")
	assert.True(t, ok)
	assert.Equal(t, "1", v)
	require.NoError(t, kv.Delete(ctx, "a"))
	_, ok, _ = kv.Get(ctx, "a")
	assert.False(t, ok)
}

package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arand/kharcha/internal/storage"
)

func openTestKV(t *testing.T) *storage.SQLiteKV {
	t.Helper()

	kv, err := storage.Open(filepath.Join(t.TempDir(), "kharcha.db"))
	require.NoError(t, err)

	t.Cleanup(func() { kv.Close() })

	return kv
}

func TestSQLiteKV_GetAbsentKey(t *testing.T) {
	kv := openTestKV(t)

	value, err := kv.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestSQLiteKV_SetGetRoundTrip(t *testing.T) {
	kv := openTestKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "appState", []byte(`{"income":100}`)))

	value, err := kv.Get(ctx, "appState")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"income":100}`), value)
}

func TestSQLiteKV_SetOverwrites(t *testing.T) {
	kv := openTestKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", []byte("old")))
	require.NoError(t, kv.Set(ctx, "k", []byte("new")))

	value, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), value)
}

func TestSQLiteKV_Clear(t *testing.T) {
	kv := openTestKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", []byte("v")))
	require.NoError(t, kv.Clear(ctx, "k"))

	value, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, value)

	// Clearing again is still fine.
	require.NoError(t, kv.Clear(ctx, "k"))
}

func TestSQLiteKV_KeysAreIndependent(t *testing.T) {
	kv := openTestKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "appState", []byte("a")))
	require.NoError(t, kv.Set(ctx, "goalCalculator", []byte("b")))
	require.NoError(t, kv.Clear(ctx, "appState"))

	value, err := kv.Get(ctx, "goalCalculator")
	require.NoError(t, err)
	assert.Equal(t, []byte("b"), value)
}

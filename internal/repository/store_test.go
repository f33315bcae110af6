package repository

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestSQLite creates a named shared in-memory SQLite store for one test.
func setupTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&%s", url.PathEscape(t.Name()), sqlitePragmas)
	store, err := openSQLite(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func backends(t *testing.T) map[string]KeyValueStore {
	t.Helper()

	fileStore, err := NewFileStore(filepath.Join(t.TempDir(), "store"))
	require.NoError(t, err)

	return map[string]KeyValueStore{
		DriverMemory: NewMemoryStore(),
		DriverFile:   fileStore,
		DriverSQLite: setupTestSQLite(t),
	}
}

func TestKeyValueStore_GetMissing(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			val, found, err := store.Get(context.Background(), "nothing-here")
			require.NoError(t, err)
			assert.False(t, found)
			assert.Equal(t, "", val)
		})
	}
}

func TestKeyValueStore_SetAndGet(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, store.Set(ctx, "greeting", `["héllo", "wörld"]`))

			val, found, err := store.Get(ctx, "greeting")
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, `["héllo", "wörld"]`, val)
		})
	}
}

func TestKeyValueStore_SetOverwrites(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, store.Set(ctx, "k", "old-value"))
			require.NoError(t, store.Set(ctx, "k", "new-value"))

			val, found, err := store.Get(ctx, "k")
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, "new-value", val)
		})
	}
}

func TestKeyValueStore_EmptyValueIsPresent(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, store.Set(ctx, "blank", ""))

			val, found, err := store.Get(ctx, "blank")
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, "", val)
		})
	}
}

func TestKeyValueStore_KeysAreIndependent(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, store.Set(ctx, "a", "1"))
			require.NoError(t, store.Set(ctx, "b", "2"))

			a, _, err := store.Get(ctx, "a")
			require.NoError(t, err)
			b, _, err := store.Get(ctx, "b")
			require.NoError(t, err)
			assert.Equal(t, "1", a)
			assert.Equal(t, "2", b)
		})
	}
}

func TestFileStore_RejectsPathKeys(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	for _, key := range []string{"", ".", "..", "../escape", `a\b`, "nested/key"} {
		err := store.Set(ctx, key, "x")
		assert.ErrorIs(t, err, ErrInvalidKey, "key %q", key)

		_, _, err = store.Get(ctx, key)
		assert.ErrorIs(t, err, ErrInvalidKey, "key %q", key)
	}
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, SavedPasswordsKey, "[]"))

	second, err := NewFileStore(dir)
	require.NoError(t, err)
	val, found, err := second.Get(ctx, SavedPasswordsKey)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "[]", val)

	matches, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches, "temporary files should be cleaned up")
}

func TestNewFileStore_RequiresDirectory(t *testing.T) {
	_, err := NewFileStore("")
	assert.Error(t, err)
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passgen.db")
	ctx := context.Background()

	first, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "k", "v"))
	require.NoError(t, first.Close())

	second, err := NewSQLiteStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	val, found, err := second.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", val)
}

func TestEscapeSQLitePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"passgen.db", "passgen.db"},
		{"/var/lib/passgen/passgen.db", "/var/lib/passgen/passgen.db"},
		{"data/what?.db", "data/what%3F.db"},
		{"data/#1.db", "data/%231.db"},
		{"100%.db", "100%25.db"},
		{"my passwords.db", "my%20passwords.db"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, escapeSQLitePath(tt.path), "path %q", tt.path)
	}
}

func TestNewSQLiteStore_PathWithURIDelimiters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "odd?name#1.db")
	ctx := context.Background()

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Set(ctx, "k", "v"))
	val, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", val)

	_, err = os.Stat(path)
	assert.NoError(t, err, "database should be created at the literal path")
}

func TestNewSQLiteStore_RequiresPath(t *testing.T) {
	_, err := NewSQLiteStore("")
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	mem, err := Open(ctx, StoreConfig{Driver: DriverMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, mem)

	file, err := Open(ctx, StoreConfig{Driver: DriverFile, Path: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, file)

	sqlite, err := Open(ctx, StoreConfig{Driver: DriverSQLite, Path: filepath.Join(t.TempDir(), "x.db")})
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, sqlite)
	require.NoError(t, sqlite.Close())
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), StoreConfig{Driver: "localstorage"})
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

package storage

import (
	"os"
	"path/filepath"
	"portfolio/internal/structures"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]Backend {
	t.Helper()
	dir := t.TempDir()

	file, err := NewFileBackend(filepath.Join(dir, "files"))
	require.NoError(t, err)
	sqlite, err := NewSQLiteBackend(filepath.Join(dir, "kv.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close() })

	return map[string]Backend{"file": file, "sqlite": sqlite}
}

func TestBackends_PutGetDelete(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := b.Get("projects")
			assert.ErrorIs(t, err, ErrKeyNotFound)

			require.NoError(t, b.Put("projects", []byte(`[]`)))
			require.NoError(t, b.Put("projects", []byte(`[{"id":1}]`)))

			got, err := b.Get("projects")
			require.NoError(t, err)
			assert.Equal(t, `[{"id":1}]`, string(got))

			require.NoError(t, b.Delete("projects"))
			require.NoError(t, b.Delete("projects"))
			_, err = b.Get("projects")
			assert.ErrorIs(t, err, ErrKeyNotFound)
		})
	}
}

func TestBackends_KeysAndClear(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, b.Put("blogPosts", []byte(`[]`)))
			require.NoError(t, b.Put("analytics", []byte(`{}`)))

			keys, err := b.Keys()
			require.NoError(t, err)
			assert.ElementsMatch(t, []string{"analytics", "blogPosts"}, keys)

			require.NoError(t, b.Clear())
			keys, err = b.Keys()
			require.NoError(t, err)
			assert.Empty(t, keys)
		})
	}
}

func TestBackends_RejectInvalidKeys(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for _, key := range []string{"", "../escape", "a/b", "..", "with space"} {
				assert.ErrorIs(t, b.Put(key, []byte("x")), ErrInvalidKey, key)
			}
		})
	}
}

func TestFileBackend_NoTempFilesLeft(t *testing.T) {
	dir := t.TempDir()
	b, err := NewFileBackend(dir)
	require.NoError(t, err)

	require.NoError(t, b.Put("siteConfig", []byte(`{}`)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "siteConfig.json", entries[0].Name())
}

func TestSQLiteBackend_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")
	b, err := NewSQLiteBackend(path)
	require.NoError(t, err)
	require.NoError(t, b.Put("theme", []byte(`"dark"`)))
	require.NoError(t, b.Close())

	b, err = NewSQLiteBackend(path)
	require.NoError(t, err)
	defer b.Close()
	got, err := b.Get("theme")
	require.NoError(t, err)
	assert.Equal(t, `"dark"`, string(got))
}

func TestNewBackendProvider_SelectsDriver(t *testing.T) {
	dir := t.TempDir()

	conf := &structures.Config{Storage: structures.StorageConfig{Driver: "file", Dir: filepath.Join(dir, "data")}}
	b, err := NewBackendProvider(conf, &testLogger{})
	require.NoError(t, err)
	assert.IsType(t, &FileBackend{}, b)

	conf = &structures.Config{Storage: structures.StorageConfig{Driver: "sqlite", SQLitePath: filepath.Join(dir, "p.db")}}
	b, err = NewBackendProvider(conf, &testLogger{})
	require.NoError(t, err)
	defer b.Close()
	assert.IsType(t, &SQLiteBackend{}, b)
}

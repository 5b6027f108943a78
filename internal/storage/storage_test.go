package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]Backend {
	t.Helper()

	fileBackend, err := NewFileBackend(filepath.Join(t.TempDir(), "consent.json"))
	require.NoError(t, err)

	sqliteBackend, err := NewSQLiteBackend(filepath.Join(t.TempDir(), "consent.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqliteBackend.Close() })

	return map[string]Backend{
		"memory": NewMemoryBackend(),
		"file":   fileBackend,
		"sqlite": sqliteBackend,
	}
}

func TestBackendRoundtrip(t *testing.T) {
	for name, backend := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, found, err := backend.Get("cookie-consent")
			require.NoError(t, err)
			assert.False(t, found)

			require.NoError(t, backend.Set("cookie-consent", `{"version":"1.0"}`))

			value, found, err := backend.Get("cookie-consent")
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, `{"version":"1.0"}`, value)

			require.NoError(t, backend.Set("cookie-consent", `{"version":"2.0"}`))
			value, _, err = backend.Get("cookie-consent")
			require.NoError(t, err)
			assert.Equal(t, `{"version":"2.0"}`, value, "set overwrites")

			require.NoError(t, backend.Delete("cookie-consent"))
			_, found, err = backend.Get("cookie-consent")
			require.NoError(t, err)
			assert.False(t, found)
		})
	}
}

func TestBackendDeleteMissingKeyIsNoop(t *testing.T) {
	for name, backend := range backends(t) {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, backend.Delete("never-written"))
		})
	}
}

func TestFileBackendSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "consent.json")

	first, err := NewFileBackend(path)
	require.NoError(t, err)
	require.NoError(t, first.Set("cookie-consent", "persisted"))

	second, err := NewFileBackend(path)
	require.NoError(t, err)
	value, found, err := second.Get("cookie-consent")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "persisted", value)
}

func TestFileBackendCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "consent.json")

	backend, err := NewFileBackend(path)
	require.NoError(t, err)
	require.NoError(t, backend.Set("k", "v"))

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestSQLiteBackendSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "consent.db")

	first, err := NewSQLiteBackend(path)
	require.NoError(t, err)
	require.NoError(t, first.Set("cookie-consent", "persisted"))
	require.NoError(t, first.Close())

	second, err := NewSQLiteBackend(path)
	require.NoError(t, err)
	defer second.Close()

	value, found, err := second.Get("cookie-consent")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "persisted", value)
}

func TestOpenSelectsBackend(t *testing.T) {
	memory, err := Open(BackendMemory, "")
	require.NoError(t, err)
	assert.IsType(t, &MemoryBackend{}, memory)

	fallback, err := Open("", "")
	require.NoError(t, err)
	assert.IsType(t, &MemoryBackend{}, fallback)

	file, err := Open(BackendFile, filepath.Join(t.TempDir(), "c.json"))
	require.NoError(t, err)
	assert.IsType(t, &FileBackend{}, file)

	_, err = Open("redis", "")
	assert.Error(t, err)
}

func TestFileBackendRequiresPath(t *testing.T) {
	_, err := NewFileBackend("")
	assert.Error(t, err)

	_, err = NewSQLiteBackend("")
	assert.Error(t, err)
}

package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theakshaypant/hackhub/internal/core"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs", "preferences.yaml")

	s, err := NewFileStore(path)
	require.NoError(t, err)

	_, err = s.Get("theme")
	assert.ErrorIs(t, err, core.ErrNotFound)

	require.NoError(t, s.Set("theme", "dark"))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	v, err := reopened.Get("theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", v)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "theme: dark")

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFileStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: [unclosed"), 0644))

	_, err := NewFileStore(path)
	assert.Error(t, err)
}

func TestFileStoreEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	s, err := NewFileStore(path)
	require.NoError(t, err)
	_, err = s.Get("theme")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	s, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Get("theme")
	assert.ErrorIs(t, err, core.ErrNotFound)

	require.NoError(t, s.Set("theme", "light"))
	require.NoError(t, s.Set("theme", "dark"))

	v, err := s.Get("theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", v)
}

func TestSQLiteStorePersistsToDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hackhub.db")

	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("theme", "dark"))
	require.NoError(t, s.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	v, err := reopened.Get("theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", v)
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Get("theme")
	assert.ErrorIs(t, err, core.ErrNotFound)

	require.NoError(t, s.Set("theme", "dark"))
	v, err := s.Get("theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", v)
}

func TestUnavailable(t *testing.T) {
	var s core.Storage = Unavailable{}
	_, err := s.Get("theme")
	assert.ErrorIs(t, err, core.ErrUnavailable)
	assert.ErrorIs(t, s.Set("theme", "dark"), core.ErrUnavailable)
	assert.NoError(t, s.Close())
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		opts    Options
		want    any
		wantErr bool
	}{
		{name: "default is file", opts: Options{Path: filepath.Join(dir, "a.yaml")}, want: &FileStore{}},
		{name: "sqlite", opts: Options{Driver: "SQLite", Path: filepath.Join(dir, "b.db")}, want: &SQLiteStore{}},
		{name: "memory", opts: Options{Driver: DriverMemory}, want: &MemoryStore{}},
		{name: "file without path", opts: Options{Driver: DriverFile}, wantErr: true},
		{name: "unknown", opts: Options{Driver: "redis", Path: "x"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Open(tt.opts)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer s.Close()
			assert.IsType(t, tt.want, s)
		})
	}
}

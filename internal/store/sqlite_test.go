package store_test

import (
	"path/filepath"
	"testing"

	"movie-catalog/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLite(t *testing.T) (*store.SQLite, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.db")
	s, err := store.NewSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestSQLite_SetGetRemove(t *testing.T) {
	s, _ := newSQLite(t)

	_, ok := s.Get("movies")
	assert.False(t, ok)

	require.NoError(t, s.Set("movies", []byte(`[{"id":"m1"}]`)))

	value, ok := s.Get("movies")
	require.True(t, ok)
	assert.Equal(t, []byte(`[{"id":"m1"}]`), value)

	require.NoError(t, s.Remove("movies"))
	_, ok = s.Get("movies")
	assert.False(t, ok)

	assert.NoError(t, s.Remove("movies"))
}

func TestSQLite_SetReplaces(t *testing.T) {
	s, _ := newSQLite(t)

	require.NoError(t, s.Set("movies", []byte("old")))
	require.NoError(t, s.Set("movies", []byte("new")))

	value, ok := s.Get("movies")
	require.True(t, ok)
	assert.Equal(t, []byte("new"), value)
}

func TestSQLite_ValueSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	s, err := store.NewSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("movies", []byte("persisted")))
	require.NoError(t, s.Close())

	reopened, err := store.NewSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, ok := reopened.Get("movies")
	require.True(t, ok)
	assert.Equal(t, []byte("persisted"), value)
}

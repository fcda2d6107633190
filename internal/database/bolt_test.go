package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoltKVStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.data")

	_, err := NewBoltKVStore(path, "")
	require.Error(t, err)

	s, err := NewBoltKVStore(path, "bucket")
	require.NoError(t, err)

	data, err := s.Get("missing")
	require.NoError(t, err)
	assert.Nil(t, data)

	require.NoError(t, s.Put("key", []byte("value")))
	data, err = s.Get("key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), data)

	require.NoError(t, s.Delete("key"))
	require.NoError(t, s.Delete("key"))
	data, err = s.Get("key")
	require.NoError(t, err)
	assert.Nil(t, data)

	require.NoError(t, s.Put("persisted", []byte("yes")))
	require.NoError(t, s.Close())

	// Reopened database keeps previously written keys.
	s, err = NewBoltKVStore(path, "bucket")
	require.NoError(t, err)
	defer s.Close()

	data, err = s.Get("persisted")
	require.NoError(t, err)
	assert.Equal(t, []byte("yes"), data)
}

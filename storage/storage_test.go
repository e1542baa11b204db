package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageRoundTrip(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	path, err := s.Save("receipt.png", []byte("image-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "receipt.png", path)

	data, err := s.Get(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("image-bytes"), data)

	require.NoError(t, s.Delete(path))
	_, err = s.Get(path)
	assert.Error(t, err)
}

func TestLocalStorageCreatesBasePath(t *testing.T) {
	base := t.TempDir() + "/nested/receipts"

	s, err := NewLocalStorage(base)
	require.NoError(t, err)

	_, err = s.Save("a.jpg", []byte{0x1})
	assert.NoError(t, err)
}

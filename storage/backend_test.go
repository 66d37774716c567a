package storage

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetKey(t *testing.T) {
	key := GetKey(KindSnapshot, "monday")

	assert.Equal(t, KindSnapshot, GetKindFromKey(key))
	assert.Equal(t, "monday", GetNameFromKey(key))
	assert.Len(t, key, 7)
}

func testBackend(t *testing.T, backend Backend) {
	_, err := backend.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	window := []byte{0, 1, 2, 3, 4, 5}
	require.NoError(t, backend.Put("a", window))
	require.NoError(t, backend.Put("b", nil))
	require.NoError(t, backend.Put("c", []byte{9}))

	buf, err := backend.Get("a")
	require.NoError(t, err)
	assert.Equal(t, window, buf)

	require.NoError(t, backend.Put("c", []byte{7, 7}))
	buf, err = backend.Get("c")
	require.NoError(t, err)
	assert.Equal(t, []byte{7, 7}, buf)

	require.NoError(t, backend.Delete("b"))
	_, err = backend.Get("b")
	assert.ErrorIs(t, err, ErrNotFound)

	var names []string
	err = backend.IterateNames(func(name string) error {
		names = append(names, name)
		return nil
	})
	require.NoError(t, err)
	sort.Strings(names)
	assert.Equal(t, []string{"a", "c"}, names)

	assert.NoError(t, backend.Close())
}

func TestInMemoryBackend(t *testing.T) {
	testBackend(t, NewInMemoryBackend())
}

func TestInMemoryBackend_PutCopies(t *testing.T) {
	backend := NewInMemoryBackend()
	buf := []byte{1, 2, 3}
	require.NoError(t, backend.Put("a", buf))
	buf[0] = 42

	stored, err := backend.Get("a")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, stored)
}

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripstats/storage"
)

func testBackingStore(t *testing.T, store *BackingStore) {
	_, err := store.Get("monday")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, store.Put("monday", sampleTally()))
	tally, err := store.Get("monday")
	require.NoError(t, err)
	assert.Equal(t, int64(4), tally.Count("A"))

	// Read twice so a cached copy may be served.
	tally, err = store.Get("monday")
	require.NoError(t, err)
	assert.Equal(t, int64(3), tally.HourCount("A", 8))

	replacement := NewTally()
	replacement.Add("Q", 1)
	require.NoError(t, store.Put("monday", replacement))
	tally, err = store.Get("monday")
	require.NoError(t, err)
	assert.Equal(t, int64(0), tally.Count("A"))
	assert.Equal(t, int64(1), tally.Count("Q"))

	require.NoError(t, store.Put("tuesday", sampleTally()))
	names, err := store.Names()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"monday", "tuesday"}, names)

	require.NoError(t, store.Delete("monday"))
	_, err = store.Get("monday")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.NoError(t, store.Close())
}

func TestBackingStore_Cached(t *testing.T) {
	store, err := NewBackingStore(storage.NewInMemoryBackend(), true)
	require.NoError(t, err)
	testBackingStore(t, store)
}

func TestBackingStore_Uncached(t *testing.T) {
	store, err := NewBackingStore(storage.NewInMemoryBackend(), false)
	require.NoError(t, err)
	testBackingStore(t, store)
}

func TestBackingStore_Badger(t *testing.T) {
	store, err := NewBackingStore(storage.NewBadgerBackend(storage.TestBadgerDB()), true)
	require.NoError(t, err)
	testBackingStore(t, store)
}

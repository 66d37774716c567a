package core

import (
	"strconv"
	"sync"

	"github.com/dgraph-io/ristretto"
	"tripstats/storage"
)

// BackingStore persists tally snapshots through a storage.Backend and keeps
// decoded snapshots in a ristretto cache. Cached tallies are shared and must
// never be mutated.
type BackingStore struct {
	backend       storage.Backend
	cacheEnabled  bool
	snapshotCache *ristretto.Cache

	// Every Put or Delete bumps the generation of a name, so cache entries
	// written under an older generation are never read again.
	mu          sync.Mutex
	generations map[string]uint64
}

func NewBackingStore(backend storage.Backend, cacheEnabled bool) (*BackingStore, error) {
	store := &BackingStore{
		backend:      backend,
		cacheEnabled: cacheEnabled,
		generations:  make(map[string]uint64),
	}
	if !cacheEnabled {
		return store, nil
	}

	snapshotCache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e4,
		MaxCost:     1 << 28,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	store.snapshotCache = snapshotCache
	return store, nil
}

func (store *BackingStore) cacheKey(name string) string {
	store.mu.Lock()
	defer store.mu.Unlock()
	return string(storage.GetKey(storage.KindSnapshot, name)) +
		"@" + strconv.FormatUint(store.generations[name], 10)
}

func (store *BackingStore) bump(name string) string {
	store.mu.Lock()
	store.generations[name]++
	store.mu.Unlock()
	return store.cacheKey(name)
}

func (store *BackingStore) Get(name string) (*Tally, error) {
	key := store.cacheKey(name)
	if store.cacheEnabled {
		tally, found := store.snapshotCache.Get(key)
		if found {
			return tally.(*Tally), nil
		}
	}

	buf, err := store.backend.Get(name)
	if err != nil {
		return nil, err
	}
	tally, err := BytesToTally(buf)
	if err != nil {
		return nil, err
	}
	if store.cacheEnabled {
		store.snapshotCache.Set(key, tally, int64(len(buf)))
	}
	return tally, nil
}

// Put stores tally under name. The store keeps tally, so callers hand over a
// copy they no longer mutate.
func (store *BackingStore) Put(name string, tally *Tally) error {
	buf, err := TallyToBytes(tally)
	if err != nil {
		return err
	}
	if err := store.backend.Put(name, buf); err != nil {
		return err
	}
	key := store.bump(name)
	if store.cacheEnabled {
		store.snapshotCache.Set(key, tally, int64(len(buf)))
	}
	return nil
}

func (store *BackingStore) Delete(name string) error {
	store.bump(name)
	return store.backend.Delete(name)
}

func (store *BackingStore) Names() ([]string, error) {
	names := make([]string, 0)
	err := store.backend.IterateNames(func(name string) error {
		names = append(names, name)
		return nil
	})
	return names, err
}

func (store *BackingStore) Close() error {
	if store.cacheEnabled {
		store.snapshotCache.Close()
	}
	return store.backend.Close()
}

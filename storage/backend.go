package storage

import (
	"errors"
	"sync"
)

// Kinds of records in the key space. Snapshots are the only kind written today.
const (
	KindSnapshot byte = iota + 1
)

var ErrNotFound = errors.New("storage: key not found")

// GetKey lays out a key as <1 byte kind><name bytes>.
func GetKey(kind byte, name string) []byte {
	buf := make([]byte, 1+len(name))
	buf[0] = kind
	copy(buf[1:], name)
	return buf
}

func GetKindFromKey(buf []byte) byte {
	return buf[0]
}

func GetNameFromKey(buf []byte) string {
	return string(buf[1:])
}

type Backend interface {
	Get(string) ([]byte, error)
	Put(string, []byte) error
	Delete(string) error

	IterateNames(func(string) error) error

	Close() error
}

type InMemoryBackend struct {
	snapshotMap map[string][]byte
	mu          sync.Mutex
}

func NewInMemoryBackend() *InMemoryBackend {
	return &InMemoryBackend{
		snapshotMap: make(map[string][]byte),
	}
}

func (backend *InMemoryBackend) Get(name string) ([]byte, error) {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	buf, ok := backend.snapshotMap[string(GetKey(KindSnapshot, name))]
	if !ok {
		return nil, ErrNotFound
	}
	return buf, nil
}

func (backend *InMemoryBackend) Put(name string, buf []byte) error {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	backend.snapshotMap[string(GetKey(KindSnapshot, name))] = append([]byte(nil), buf...)
	return nil
}

func (backend *InMemoryBackend) Delete(name string) error {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	delete(backend.snapshotMap, string(GetKey(KindSnapshot, name)))
	return nil
}

func (backend *InMemoryBackend) IterateNames(lambda func(string) error) error {
	backend.mu.Lock()
	keys := make([]string, 0, len(backend.snapshotMap))
	for k := range backend.snapshotMap {
		keys = append(keys, k)
	}
	backend.mu.Unlock()

	for _, k := range keys {
		buf := []byte(k)
		if GetKindFromKey(buf) != KindSnapshot {
			continue
		}
		if err := lambda(GetNameFromKey(buf)); err != nil {
			return err
		}
	}
	return nil
}

func (backend *InMemoryBackend) Close() error {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	backend.snapshotMap = make(map[string][]byte)
	return nil
}

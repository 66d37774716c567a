package storage

import (
	"errors"

	"github.com/dgraph-io/badger/v2"
	"tripstats/logger"
)

// TestBadgerDB opens a throwaway in-memory badger instance.
func TestBadgerDB() *badger.DB {
	db, err := OpenBadger("", true, logger.Nop())
	if err != nil {
		panic(err)
	}
	return db
}

// OpenBadger opens badger at path, or purely in memory when inMemory is set,
// with badger's own logging routed through log.
func OpenBadger(path string, inMemory bool, log logger.Logger) (*badger.DB, error) {
	option := badger.DefaultOptions(path).WithTruncate(true)
	if inMemory {
		option = badger.DefaultOptions("").WithInMemory(true)
	}
	return badger.Open(option.WithLogger(NewBadgerLogger(log)))
}

type BadgerBackend struct {
	db *badger.DB
}

func NewBadgerBackend(db *badger.DB) *BadgerBackend {
	return &BadgerBackend{db: db}
}

func (backend *BadgerBackend) Close() error {
	return backend.db.Close()
}

func (backend *BadgerBackend) txnGet(key []byte) ([]byte, error) {
	var buf []byte
	err := backend.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		buf, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	return buf, err
}

func (backend *BadgerBackend) txnPut(key, buf []byte) error {
	return backend.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, buf)
	})
}

func (backend *BadgerBackend) txnDelete(key []byte) error {
	return backend.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

func (backend *BadgerBackend) Get(name string) ([]byte, error) {
	return backend.txnGet(GetKey(KindSnapshot, name))
}

func (backend *BadgerBackend) Put(name string, buf []byte) error {
	return backend.txnPut(GetKey(KindSnapshot, name), buf)
}

func (backend *BadgerBackend) Delete(name string) error {
	return backend.txnDelete(GetKey(KindSnapshot, name))
}

func (backend *BadgerBackend) IterateNames(lambda func(string) error) error {
	prefix := []byte{KindSnapshot}
	iterOpts := badger.DefaultIteratorOptions
	iterOpts.Prefix = prefix
	iterOpts.PrefetchValues = false

	return backend.db.View(func(txn *badger.Txn) error {
		iter := txn.NewIterator(iterOpts)
		defer iter.Close()

		for iter.Seek(prefix); iter.ValidForPrefix(prefix); iter.Next() {
			if err := lambda(GetNameFromKey(iter.Item().KeyCopy(nil))); err != nil {
				return err
			}
		}
		return nil
	})
}

package core

import (
	"context"
	"fmt"
	"sort"

	"tripstats/logger"
	"tripstats/storage"
)

// DB keeps named tally snapshots so an analysis session can be saved and
// resumed later.
type DB struct {
	store *BackingStore
	log   logger.Logger
}

// New opens the backend described by config.
func New(config *StoreConfig, log logger.Logger) (*DB, error) {
	var backend storage.Backend
	switch config.Engine {
	case EngineMemory:
		backend = storage.NewInMemoryBackend()
	case EngineBadger, "":
		badgerDb, err := storage.OpenBadger(config.Path, config.InMemory, log)
		if err != nil {
			return nil, err
		}
		backend = storage.NewBadgerBackend(badgerDb)
	default:
		return nil, fmt.Errorf("unknown storage engine %q", config.Engine)
	}
	return NewWithBackend(backend, config.CacheEnabled, log)
}

func NewWithBackend(backend storage.Backend, cacheEnabled bool, log logger.Logger) (*DB, error) {
	store, err := NewBackingStore(backend, cacheEnabled)
	if err != nil {
		return nil, err
	}
	return &DB{store: store, log: log}, nil
}

// Save stores a copy of the analyzer's tallies under name, replacing any
// previous snapshot with that name.
func (db *DB) Save(ctx context.Context, name string, analyzer *Analyzer) error {
	if name == "" {
		return ErrEmptyName
	}
	ctx = logger.WithSnapshot(logger.WithAction(ctx, "save_snapshot"), name)

	snapshot := analyzer.Snapshot()
	if err := db.store.Put(name, snapshot); err != nil {
		return logger.WrapError(ctx, fmt.Errorf("save snapshot %q: %w", name, err))
	}
	db.log.Info(ctx, "snapshot saved", "zones", snapshot.Len())
	return nil
}

// Load returns a new analyzer seeded with the snapshot stored under name.
// Ingesting into it does not change the stored snapshot.
func (db *DB) Load(ctx context.Context, name string) (*Analyzer, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	ctx = logger.WithSnapshot(logger.WithAction(ctx, "load_snapshot"), name)

	snapshot, err := db.store.Get(name)
	if err != nil {
		return nil, logger.WrapError(ctx, fmt.Errorf("load snapshot %q: %w", name, err))
	}
	analyzer := NewAnalyzer().SetLogger(db.log)
	analyzer.Merge(snapshot)
	db.log.Debug(ctx, "snapshot loaded", "zones", snapshot.Len())
	return analyzer, nil
}

func (db *DB) Delete(ctx context.Context, name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if err := db.store.Delete(name); err != nil {
		ctx = logger.WithSnapshot(logger.WithAction(ctx, "delete_snapshot"), name)
		return logger.WrapError(ctx, fmt.Errorf("delete snapshot %q: %w", name, err))
	}
	return nil
}

// Names lists stored snapshots in ascending order.
func (db *DB) Names() ([]string, error) {
	names, err := db.store.Names()
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

func (db *DB) Close() error {
	return db.store.Close()
}

package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripstats/logger"
	"tripstats/storage"
	"tripstats/utils"
)

func testDB(t *testing.T, db *DB) {
	ctx := context.Background()

	a := NewAnalyzer()
	ingestLines(t, a, "\n", sampleTrips...)
	require.NoError(t, db.Save(ctx, "jan", a))

	loaded, err := db.Load(ctx, "jan")
	require.NoError(t, err)
	assert.Equal(t, a.TopZones(DefaultTopK), loaded.TopZones(DefaultTopK))
	assert.Equal(t, a.TopBusySlots(DefaultTopK), loaded.TopBusySlots(DefaultTopK))

	// Ingesting into a loaded analyzer leaves the stored snapshot alone.
	ingestLines(t, loaded, "\n", "T9,A,2020-02-01 08:00")
	again, err := db.Load(ctx, "jan")
	require.NoError(t, err)
	assert.Equal(t, int64(3), again.ZoneCount("A"))
	assert.Equal(t, int64(4), loaded.ZoneCount("A"))

	// Ingesting into the saved analyzer does not leak either.
	ingestLines(t, a, "\n", "T10,B,2020-02-01 08:00")
	again, err = db.Load(ctx, "jan")
	require.NoError(t, err)
	assert.Equal(t, int64(2), again.ZoneCount("B"))

	require.NoError(t, db.Save(ctx, "feb", loaded))
	names, err := db.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"feb", "jan"}, names)

	require.NoError(t, db.Delete(ctx, "jan"))
	_, err = db.Load(ctx, "jan")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.ErrorIs(t, db.Save(ctx, "", a), ErrEmptyName)
	_, err = db.Load(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyName)
	assert.ErrorIs(t, db.Delete(ctx, ""), ErrEmptyName)

	assert.NoError(t, db.Close())
}

func TestDB_Memory(t *testing.T) {
	db, err := New(&StoreConfig{Engine: EngineMemory, CacheEnabled: true}, logger.Nop())
	require.NoError(t, err)
	testDB(t, db)
}

func TestDB_BadgerInMemory(t *testing.T) {
	db, err := New(&StoreConfig{Engine: EngineBadger, InMemory: true}, logger.Nop())
	require.NoError(t, err)
	testDB(t, db)
}

func TestDB_BadgerReopen(t *testing.T) {
	ctx := context.Background()
	config := &StoreConfig{Engine: EngineBadger, Path: t.TempDir(), CacheEnabled: true}

	db, err := New(config, logger.Nop())
	require.NoError(t, err)
	a := NewAnalyzer()
	ingestLines(t, a, "\n", sampleTrips...)
	require.NoError(t, db.Save(ctx, "session", a))
	require.NoError(t, db.Close())

	db, err = New(config, logger.Nop())
	require.NoError(t, err)
	defer db.Close()

	loaded, err := db.Load(ctx, "session")
	require.NoError(t, err)
	assert.Equal(t, a.TopZones(DefaultTopK), loaded.TopZones(DefaultTopK))
	profile, ok := loaded.ZoneProfile("A")
	utils.AssertTrue(t, ok)
	assert.Equal(t, 8, profile.PeakHour)
}

func TestDB_UnknownEngine(t *testing.T) {
	_, err := New(&StoreConfig{Engine: "etcd"}, logger.Nop())
	assert.Error(t, err)
}

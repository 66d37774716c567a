package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripstats/logger"
)

func TestBadgerBackend(t *testing.T) {
	testBackend(t, NewBadgerBackend(TestBadgerDB()))
}

func TestBadgerBackend_Reopen(t *testing.T) {
	dir := t.TempDir()

	db, err := OpenBadger(dir, false, logger.Nop())
	require.NoError(t, err)
	backend := NewBadgerBackend(db)
	require.NoError(t, backend.Put("week", []byte("tally")))
	require.NoError(t, backend.Close())

	db, err = OpenBadger(dir, false, logger.Nop())
	require.NoError(t, err)
	backend = NewBadgerBackend(db)
	defer backend.Close()

	buf, err := backend.Get("week")
	require.NoError(t, err)
	assert.Equal(t, []byte("tally"), buf)
}

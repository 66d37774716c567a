package core

import (
	"testing"

	cmp "github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripstats/utils"
)

func sampleTally() *Tally {
	tally := NewTally()
	addTrips(tally, "A", 8, 3)
	addTrips(tally, "A", 23, 1)
	addTrips(tally, "B", 0, 2)
	addTrips(tally, "zone with spaces", 12, 1)
	return tally
}

func TestTallySerialization(t *testing.T) {
	tally := sampleTally()

	buf, err := TallyToBytes(tally)
	require.NoError(t, err)
	newTally, err := BytesToTally(buf)
	require.NoError(t, err)

	utils.AssertTrue(t, cmp.Equal(tally, newTally, cmp.AllowUnexported(Tally{})))
}

func TestTallySerialization_Empty(t *testing.T) {
	buf, err := TallyToBytes(NewTally())
	require.NoError(t, err)
	newTally, err := BytesToTally(buf)
	require.NoError(t, err)

	assert.Equal(t, 0, newTally.Len())
	assert.Empty(t, newTally.TopBusySlots(DefaultTopK))
}

func TestTallySerialization_Deterministic(t *testing.T) {
	reversed := NewTally()
	addTrips(reversed, "zone with spaces", 12, 1)
	addTrips(reversed, "B", 0, 2)
	addTrips(reversed, "A", 23, 1)
	addTrips(reversed, "A", 8, 3)

	a, err := TallyToBytes(sampleTally())
	require.NoError(t, err)
	b, err := TallyToBytes(reversed)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBytesToTally_Corrupt(t *testing.T) {
	_, err := BytesToTally([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrCorruptSnapshot)

	_, err = BytesToTally(nil)
	assert.ErrorIs(t, err, ErrCorruptSnapshot)

	inconsistent := sampleTally()
	inconsistent.zones["A"] = 99
	buf, err := TallyToBytes(inconsistent)
	require.NoError(t, err)
	_, err = BytesToTally(buf)
	assert.ErrorIs(t, err, ErrCorruptSnapshot)
}

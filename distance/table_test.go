package distance_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsssp/distance"
	"github.com/katalvlaran/dsssp/partition"
)

func newTable(t *testing.T, workers, owner, n int) *distance.Table {
	t.Helper()
	pm, err := partition.New(workers)
	require.NoError(t, err)

	return distance.NewTable(pm, owner, n)
}

func TestSuccessor(t *testing.T) {
	require.Equal(t, int64(1), distance.Successor(0))
	require.Equal(t, int64(8), distance.Successor(7))
	require.Equal(t, distance.Infinity, distance.Successor(distance.Infinity))
}

// TestNewTable_Initial starts every slot at infinity and not finalized.
func TestNewTable_Initial(t *testing.T) {
	tbl := newTable(t, 2, 1, 5) // owns 1, 3
	require.Equal(t, 2, tbl.Slots())
	for _, v := range []int{1, 3} {
		require.Equal(t, distance.Infinity, tbl.Read(v))
		require.False(t, tbl.Finalized(v))
	}
	require.False(t, tbl.Owns(2))
	require.False(t, tbl.Owns(5))
}

// TestTryRelax only accepts strict improvements on owned, open slots.
func TestTryRelax(t *testing.T) {
	tbl := newTable(t, 2, 0, 6) // owns 0, 2, 4

	require.True(t, tbl.TryRelax(2, 5))
	require.Equal(t, int64(5), tbl.Read(2))

	require.False(t, tbl.TryRelax(2, 5), "equal distance is not an improvement")
	require.False(t, tbl.TryRelax(2, 6))
	require.True(t, tbl.TryRelax(2, 3))

	require.False(t, tbl.TryRelax(1, 0), "vertex owned elsewhere")
	require.False(t, tbl.TryRelax(4, distance.Infinity), "infinity never improves")
}

// TestFinalizeFreezesDistance checks that a finalized slot is never revised.
func TestFinalizeFreezesDistance(t *testing.T) {
	tbl := newTable(t, 3, 1, 10) // owns 1, 4, 7

	require.True(t, tbl.TryRelax(4, 9))
	require.NoError(t, tbl.Finalize(4))
	require.True(t, tbl.Finalized(4))

	for d := int64(0); d < 9; d++ {
		require.False(t, tbl.TryRelax(4, d))
	}
	require.Equal(t, int64(9), tbl.Read(4))
}

// TestFinalizeTwice reports the finalize-once violation.
func TestFinalizeTwice(t *testing.T) {
	tbl := newTable(t, 1, 0, 3)
	require.NoError(t, tbl.Finalize(1))
	require.ErrorIs(t, tbl.Finalize(1), distance.ErrAlreadyFinalized)
	require.ErrorIs(t, tbl.Finalize(7), distance.ErrNotOwned)
}

func TestSeedAndSnapshot(t *testing.T) {
	tbl := newTable(t, 2, 1, 6) // owns 1, 3, 5
	require.ErrorIs(t, tbl.Seed(2), distance.ErrNotOwned)
	require.NoError(t, tbl.Seed(3))
	require.False(t, tbl.Finalized(3))
	require.True(t, tbl.TryRelax(5, 2))

	snap := tbl.Snapshot()
	require.Equal(t, []int64{distance.Infinity, 0, 2}, snap)

	snap[0] = 42
	require.Equal(t, distance.Infinity, tbl.Read(1), "snapshot must be a copy")
}

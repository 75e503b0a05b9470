package partition_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsssp/partition"
)

func TestNew_RejectsZeroWorkers(t *testing.T) {
	_, err := partition.New(0)
	require.ErrorIs(t, err, partition.ErrNoWorkers)

	_, err = partition.New(-3)
	require.ErrorIs(t, err, partition.ErrNoWorkers)
}

// TestOwnerSlot checks the residue mapping on the four-vertex path example.
func TestOwnerSlot(t *testing.T) {
	pm, err := partition.New(2)
	require.NoError(t, err)

	owners := []int{0, 1, 0, 1}
	slots := []int{0, 0, 1, 1}
	for v := 0; v < 4; v++ {
		require.Equal(t, owners[v], pm.Owner(v), "owner of %d", v)
		require.Equal(t, slots[v], pm.Slot(v), "slot of %d", v)
	}
}

// TestVertexInvertsOwnerSlot verifies Vertex(Owner(v), Slot(v)) == v and that
// every vertex is counted exactly once across owners.
func TestVertexInvertsOwnerSlot(t *testing.T) {
	for _, p := range []int{1, 2, 3, 7, 16} {
		pm, err := partition.New(p)
		require.NoError(t, err)

		const n = 50
		total := 0
		for owner := 0; owner < p; owner++ {
			total += pm.SlotCount(owner, n)
		}
		require.Equal(t, n, total, "P=%d", p)

		for v := 0; v < n; v++ {
			o, s := pm.Owner(v), pm.Slot(v)
			require.Less(t, s, pm.SlotCount(o, n))
			require.Equal(t, v, pm.Vertex(o, s))
		}
	}
}

// TestSlotCount_MoreWorkersThanVertices leaves trailing owners empty.
func TestSlotCount_MoreWorkersThanVertices(t *testing.T) {
	pm, err := partition.New(5)
	require.NoError(t, err)

	require.Equal(t, 1, pm.SlotCount(0, 3))
	require.Equal(t, 1, pm.SlotCount(2, 3))
	require.Equal(t, 0, pm.SlotCount(3, 3))
	require.Equal(t, 0, pm.SlotCount(4, 3))
}

// Package distance holds a worker's tentative distances for the vertices it
// owns, together with the finalized flags that freeze them.
//
// A Table is owned by exactly one worker and is not safe for concurrent use;
// the protocol never shares one across goroutines.
package distance

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/dsssp/partition"
)

// Infinity marks a vertex with no known path from the source.
const Infinity int64 = math.MaxInt64

// Sentinel errors for table operations.
var (
	// ErrAlreadyFinalized is returned when Finalize is called twice for a vertex.
	ErrAlreadyFinalized = errors.New("distance: vertex already finalized")

	// ErrNotOwned is returned when a vertex owned by another worker is addressed.
	ErrNotOwned = errors.New("distance: vertex not owned by this table")
)

// Successor returns the candidate distance for a neighbor of a vertex at
// distance d. Infinity stays Infinity instead of overflowing.
func Successor(d int64) int64 {
	if d == Infinity {
		return Infinity
	}

	return d + 1
}

// Table is the local distance table of one worker.
type Table struct {
	pm        partition.Map
	owner     int
	dist      []int64
	finalized []bool
}

// NewTable allocates the slots the given owner holds out of n vertices,
// all initialized to {Infinity, false}.
func NewTable(pm partition.Map, owner, n int) *Table {
	slots := pm.SlotCount(owner, n)
	t := &Table{
		pm:        pm,
		owner:     owner,
		dist:      make([]int64, slots),
		finalized: make([]bool, slots),
	}
	for i := range t.dist {
		t.dist[i] = Infinity
	}

	return t
}

// Owner returns the rank this table belongs to.
func (t *Table) Owner() int { return t.owner }

// Slots returns the number of vertices held.
func (t *Table) Slots() int { return len(t.dist) }

// Owns reports whether v lives in this table.
func (t *Table) Owns(v int) bool {
	return v >= 0 && t.pm.Owner(v) == t.owner && t.pm.Slot(v) < len(t.dist)
}

// Seed sets the source vertex to distance 0. It does not finalize it; the
// source is finalized like every other vertex when first selected.
func (t *Table) Seed(source int) error {
	if !t.Owns(source) {
		return fmt.Errorf("%w: seed %d on worker %d", ErrNotOwned, source, t.owner)
	}
	t.dist[t.pm.Slot(source)] = 0

	return nil
}

// TryRelax lowers u's distance to d when u is not finalized and d is a strict
// improvement. It reports whether the distance changed. Vertices not owned by
// this table are never relaxed.
func (t *Table) TryRelax(u int, d int64) bool {
	if !t.Owns(u) {
		return false
	}
	s := t.pm.Slot(u)
	if t.finalized[s] || d >= t.dist[s] {
		return false
	}
	t.dist[s] = d

	return true
}

// Finalize freezes v's current distance. A second call for the same vertex
// is a protocol violation and returns ErrAlreadyFinalized.
func (t *Table) Finalize(v int) error {
	if !t.Owns(v) {
		return fmt.Errorf("%w: finalize %d on worker %d", ErrNotOwned, v, t.owner)
	}
	s := t.pm.Slot(v)
	if t.finalized[s] {
		return fmt.Errorf("%w: vertex %d", ErrAlreadyFinalized, v)
	}
	t.finalized[s] = true

	return nil
}

// Read returns v's distance, or Infinity when v is unknown or not owned.
func (t *Table) Read(v int) int64 {
	if !t.Owns(v) {
		return Infinity
	}

	return t.dist[t.pm.Slot(v)]
}

// Finalized reports whether v has been finalized.
func (t *Table) Finalized(v int) bool {
	return t.Owns(v) && t.finalized[t.pm.Slot(v)]
}

// Snapshot copies the distances in slot order.
func (t *Table) Snapshot() []int64 {
	out := make([]int64, len(t.dist))
	copy(out, t.dist)

	return out
}

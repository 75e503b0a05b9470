// Package partition maps global vertex ids onto the workers that own them.
//
// Ownership is by residue: vertex v belongs to worker v mod P and lives in
// local slot v div P of that worker's arrays. The mapping is pure, total and
// fixed for the lifetime of a run.
package partition

import (
	"errors"
	"fmt"
)

// ErrNoWorkers is returned when a Map is requested for fewer than one worker.
var ErrNoWorkers = errors.New("partition: worker count must be at least 1")

// Map is the residue partition over a fixed number of workers.
// The zero value is not usable; construct with New.
type Map struct {
	workers int
}

// New returns the partition map for the given worker count.
func New(workers int) (Map, error) {
	if workers < 1 {
		return Map{}, fmt.Errorf("%w: got %d", ErrNoWorkers, workers)
	}

	return Map{workers: workers}, nil
}

// Workers returns P.
func (m Map) Workers() int { return m.workers }

// Owner returns the rank owning v.
func (m Map) Owner(v int) int { return v % m.workers }

// Slot returns v's index inside its owner's local arrays.
func (m Map) Slot(v int) int { return v / m.workers }

// Vertex inverts (Owner, Slot) back to the global id.
func (m Map) Vertex(owner, slot int) int { return slot*m.workers + owner }

// SlotCount returns how many of the n vertices the given owner holds:
// n div P, plus one for the first n mod P owners.
func (m Map) SlotCount(owner, n int) int {
	count := n / m.workers
	if owner < n%m.workers {
		count++
	}

	return count
}

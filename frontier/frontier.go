// Package frontier implements the coordinator's priority set of candidate
// vertices awaiting finalization.
//
// The frontier is a binary min-heap keyed by distance with the "lazy
// decrease-key" strategy: a better distance for a vertex is pushed as a new
// entry and the outdated one is discarded when it surfaces. Entries with
// equal distance come out in insertion order, which keeps runs reproducible.
//
// Complexity:
//
//   - Insert:     O(log K), K = entries currently held.
//   - ExtractMin: O(log K) amortized; stale entries are popped and dropped.
//   - Space:      O(V + E) worst case under lazy decrease-key.
//
// A Frontier is not safe for concurrent use; only the coordinator touches it.
package frontier

import "container/heap"

// Item is one (vertex, distance) pair held by the frontier.
type Item struct {
	Vertex int
	Dist   int64
	seq    uint64 // insertion order, breaks distance ties
}

// Frontier is the min-priority set.
type Frontier struct {
	pq      itemPQ
	settled map[int]struct{}
	next    uint64
}

// New returns an empty frontier.
func New() *Frontier {
	return &Frontier{
		pq:      make(itemPQ, 0, 16),
		settled: make(map[int]struct{}),
	}
}

// Insert adds v with distance d. Inserting a vertex that was already
// extracted is accepted and ignored at extraction time.
func (f *Frontier) Insert(v int, d int64) {
	heap.Push(&f.pq, Item{Vertex: v, Dist: d, seq: f.next})
	f.next++
}

// ExtractMin removes and returns the entry with the smallest distance whose
// vertex has not been extracted before. ok is false when no such entry is left.
func (f *Frontier) ExtractMin() (item Item, ok bool) {
	for f.pq.Len() > 0 {
		item = heap.Pop(&f.pq).(Item)
		// 1) Stale entry: the vertex was already handed out.
		if _, done := f.settled[item.Vertex]; done {
			continue
		}
		// 2) First surfacing entry is the vertex's minimum.
		f.settled[item.Vertex] = struct{}{}

		return item, true
	}

	return Item{}, false
}

// Len returns the number of entries held, stale ones included.
func (f *Frontier) Len() int { return f.pq.Len() }

// Settled reports whether v has already been returned by ExtractMin.
func (f *Frontier) Settled(v int) bool {
	_, ok := f.settled[v]

	return ok
}

// itemPQ orders Items by Dist, then by insertion sequence.
type itemPQ []Item

func (pq itemPQ) Len() int { return len(pq) }

func (pq itemPQ) Less(i, j int) bool {
	if pq[i].Dist != pq[j].Dist {
		return pq[i].Dist < pq[j].Dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq itemPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be an Item.
func (pq *itemPQ) Push(x interface{}) { *pq = append(*pq, x.(Item)) }

// Pop is called by heap.Pop.
func (pq *itemPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

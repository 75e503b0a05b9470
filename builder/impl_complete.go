// SPDX-License-Identifier: MIT
// Package: dsssp/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Directed build: every ordered pair (i,j), i≠j, i asc then j asc.
//   - Undirected build: every unordered pair {i,j}, i<j; the sink mirrors it.
//   - No self-loops.
//
// Complexity: O(n) vertices + O(n²) edges.

package builder

import "fmt"

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}

		b := s.block(n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || (cfg.undirected && j < i) {
					continue
				}
				s.edge(b+i, b+j)
			}
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT
// Package: dsssp/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits edges i -> (i+1) mod n, i ascending, relative to the block base.
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import "fmt"

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(s *sink, _ builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}

		b := s.block(n)
		for i := 0; i < n; i++ {
			s.edge(b+i, b+(i+1)%n)
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT
// Package: dsssp/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Claims n consecutive ids b..b+n-1.
//   - Emits edges (b+i-1) -> (b+i) for i=1..n-1 in stable increasing order.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.
//   - Space: O(1) extra.

package builder

import "fmt"

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(s *sink, _ builderConfig) error {
		// Validate parameter domain early.
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}

		b := s.block(n)
		// Emit path edges from b->b+1->...->b+n-1 in stable order.
		for i := 1; i < n; i++ {
			s.edge(b+i-1, b+i)
		}

		return nil
	}
}

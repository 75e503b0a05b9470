// SPDX-License-Identifier: MIT
// Package: dsssp/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The first id of the block is the center; leaves follow.
//   - Emits center -> leaf for every leaf, leaf ids ascending.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import "fmt"

// Star returns a Constructor that builds a star with one center and n-1 leaves.
func Star(n int) Constructor {
	return func(s *sink, _ builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}

		center := s.block(n)
		for leaf := center + 1; leaf < center+n; leaf++ {
			s.edge(center, leaf)
		}

		return nil
	}
}

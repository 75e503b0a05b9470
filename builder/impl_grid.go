// SPDX-License-Identifier: MIT
// Package: dsssp/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Cell (r,c) gets id b + r*cols + c (row-major).
//   - Stable edge order: for each (r,c) emit Right then Bottom if present.
//
// Complexity: O(R*C) vertices + O(2*R*C) edges.

package builder

import "fmt"

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(s *sink, _ builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		b := s.block(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := b + r*cols + c
				if c+1 < cols {
					s.edge(id, id+1) // right
				}
				if r+1 < rows {
					s.edge(id, id+cols) // bottom
				}
			}
		}

		return nil
	}
}

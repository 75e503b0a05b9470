// SPDX-License-Identifier: MIT
// Package: dsssp/builder
//
// constants.go - method tags and parameter minima shared by constructors.

package builder

// Method tags prefix constructor errors.
const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodIsolated is the canonical name for the Isolated constructor.
	MethodIsolated = "Isolated"
)

// Parameter minima.
const (
	MinCycleNodes    = 3
	MinPathNodes     = 2
	MinStarNodes     = 2
	MinCompleteNodes = 1
	MinGridDim       = 1
	MinSparseNodes   = 1
	MinIsolatedNodes = 1
)

// Probability domain for RandomSparse.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// topologies.go — deterministic fixture constructors.
//
// Contract (every constructor):
//   • Validate sizes first and return ErrTooFewVertices before adding anything.
//   • Add vertices in ascending index order via cfg.idFn.
//   • Emit undirected edges in the documented stable order; one weightFn call per edge.

package builder

import (
	"fmt"
)

const (
	methodCycle    = "Cycle"
	methodPath     = "Path"
	methodStar     = "Star"
	methodWheel    = "Wheel"
	methodComplete = "Complete"
	methodGrid     = "Grid"

	minCycleNodes    = 3
	minPathNodes     = 2
	minStarNodes     = 2
	minWheelNodes    = 4
	minCompleteNodes = 1
	minGridDim       = 1
)

// tooFew wraps ErrTooFewVertices with method context.
func tooFew(method string, got, least int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, least, ErrTooFewVertices)
}

// Cycle builds the simple cycle C_n (n ≥ 3).
// Edge order: i—(i+1)%n for i = 0..n-1.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(s sink, cfg builderConfig) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, n, minCycleNodes)
		}
		v := addVertices(s, cfg, n)
		for i := 0; i < n; i++ {
			if err := connect(methodCycle, s, cfg, v[i], v[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Path builds the simple path P_n (n ≥ 2).
// Edge order: i—(i+1) for i = 0..n-2.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(s sink, cfg builderConfig) error {
		if n < minPathNodes {
			return tooFew(methodPath, n, minPathNodes)
		}
		v := addVertices(s, cfg, n)
		for i := 0; i+1 < n; i++ {
			if err := connect(methodPath, s, cfg, v[i], v[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds a star with hub idFn(0) and leaves idFn(1..n-1) (n ≥ 2).
// Edge order: hub—leaf[i] for i = 1..n-1.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(s sink, cfg builderConfig) error {
		if n < minStarNodes {
			return tooFew(methodStar, n, minStarNodes)
		}
		v := addVertices(s, cfg, n)
		for i := 1; i < n; i++ {
			if err := connect(methodStar, s, cfg, v[0], v[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel builds W_n: a rim cycle over idFn(1..n-1) plus hub idFn(0) (n ≥ 4).
// Edge order: rim edges as in Cycle, then spokes hub—rim[i].
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(s sink, cfg builderConfig) error {
		if n < minWheelNodes {
			return tooFew(methodWheel, n, minWheelNodes)
		}
		v := addVertices(s, cfg, n)
		rim := v[1:]
		for i := range rim {
			if err := connect(methodWheel, s, cfg, rim[i], rim[(i+1)%len(rim)]); err != nil {
				return err
			}
		}
		for _, r := range rim {
			if err := connect(methodWheel, s, cfg, v[0], r); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds K_n (n ≥ 1).
// Edge order: i—j for i asc, j > i asc.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(s sink, cfg builderConfig) error {
		if n < minCompleteNodes {
			return tooFew(methodComplete, n, minCompleteNodes)
		}
		v := addVertices(s, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := connect(methodComplete, s, cfg, v[i], v[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid builds a rows×cols 4-neighborhood grid (rows, cols ≥ 1).
// Vertices are added row-major and labeled "r,c" unless WithIDScheme is set.
// Edge order: for each cell row-major, Right then Down when present.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(s sink, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if !cfg.customIDs {
			cfg.idFn = GridIDFn(cols)
		}
		v := addVertices(s, cfg, rows*cols)
		at := func(r, c int) int { return v[r*cols+c] }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := connect(methodGrid, s, cfg, at(r, c), at(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connect(methodGrid, s, cfg, at(r, c), at(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

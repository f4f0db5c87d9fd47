// SPDX-License-Identifier: MIT
// Package: lvclique/builder
//
// impl_topology.go - deterministic topologies: Path, Cycle, Star, Complete.
//
// Determinism:
//   - Vertices 0..n-1 are added ascending, edges in a fixed (i asc, j asc) order.

package builder

import "github.com/katalvlaran/lvclique/core"

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"

	minPathVertices     = 1
	minCycleVertices    = 3
	minStarVertices     = 2
	minCompleteVertices = 1
)

// Path returns a Constructor for the chain 0–1–…–(n-1). n ≥ 1.
func Path(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minPathVertices {
			return builderErrorf(methodPath, ErrTooFewVertices, "n=%d < min=%d", n, minPathVertices)
		}
		if err := addVertices(methodPath, g, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(methodPath, g, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor for the ring 0–1–…–(n-1)–0. n ≥ 3.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleVertices {
			return builderErrorf(methodCycle, ErrTooFewVertices, "n=%d < min=%d", n, minCycleVertices)
		}
		if err := Path(n)(g, cfg); err != nil {
			return err
		}

		return addEdge(methodCycle, g, n-1, 0)
	}
}

// Star returns a Constructor with hub 0 joined to leaves 1..n-1. n ≥ 2.
func Star(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minStarVertices {
			return builderErrorf(methodStar, ErrTooFewVertices, "n=%d < min=%d", n, minStarVertices)
		}
		if err := addVertices(methodStar, g, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(methodStar, g, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor for K_n. n ≥ 1.
func Complete(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minCompleteVertices {
			return builderErrorf(methodComplete, ErrTooFewVertices, "n=%d < min=%d", n, minCompleteVertices)
		}
		if err := addVertices(methodComplete, g, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(methodComplete, g, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

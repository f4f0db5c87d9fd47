// SPDX-License-Identifier: MIT
// Package: lvclique/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each admissible edge independently with prob p.
//   - Undirected: iterate unordered pairs {i,j} with i<j.
//   - Directed: iterate ordered pairs (i,j), i≠j.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - RNG required when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Stable edge-trial order: for each i asc, j asc.

package builder

import "github.com/katalvlaran/lvclique/core"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a G(n, p) graph.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return builderErrorf(methodRandomSparse, ErrTooFewVertices,
				"n=%d < min=%d", n, minRandomSparseVertices)
		}
		if p < probMin || p > probMax {
			return builderErrorf(methodRandomSparse, ErrInvalidProbability,
				"p=%.6f not in [%.1f,%.1f]", p, probMin, probMax)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return builderErrorf(methodRandomSparse, ErrNeedRandSource, "rng is required")
		}
		if err := addVertices(methodRandomSparse, g, n); err != nil {
			return err
		}

		directed := g.Directed()
		for i := 0; i < n; i++ {
			j := i + 1
			if directed {
				j = 0
			}
			for ; j < n; j++ {
				if i == j || !trial(cfg, p) {
					continue
				}
				if err := addEdge(methodRandomSparse, g, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// trial draws one Bernoulli(p). p ∈ {0,1} never touches the RNG.
func trial(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}

// SPDX-License-Identifier: MIT
//
// Package builder assembles deterministic core.Graph fixtures: paths, cycles,
// stars, complete graphs and Erdős–Rényi random graphs over vertex IDs 0..n-1.
//
// One orchestrator, BuildGraph, creates the graph, resolves BuilderOptions and
// runs Constructors in order. Stochastic constructors draw from the RNG given
// by WithSeed or WithRand, so a fixed seed reproduces the same graph.
//
//	g, err := builder.BuildGraph(nil,
//		[]builder.BuilderOption{builder.WithSeed(42)},
//		builder.RandomSparse(50, 0.1))
//
// Errors are the sentinels in errors.go, wrapped with the constructor name.
package builder

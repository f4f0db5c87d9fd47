// SPDX-License-Identifier: MIT
// Package: lvclique/builder
//
// options.go - functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs (nil RNG);
// constructors themselves never panic.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before constructors run.
type BuilderOption func(*builderConfig)

// builderConfig is the resolved, immutable configuration passed to constructors.
type builderConfig struct {
	rng *rand.Rand
}

// newBuilderConfig applies opts in order.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

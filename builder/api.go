// SPDX-License-Identifier: MIT
// Package: lvclique/builder
//
// api.go - BuildGraph orchestrator and the Constructor type.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvclique/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters first and return sentinel
// errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with gopts, resolves bopts and applies cons
// in order. The first constructor error is returned wrapped with "BuildGraph".
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)
	for _, c := range cons {
		if err := c(g, cfg); err != nil {
			return nil, errors.Wrap(err, "BuildGraph")
		}
	}

	return g, nil
}

// addVertices inserts 0..n-1 in ascending order.
func addVertices(method string, g *core.Graph, n int) error {
	for i := 0; i < n; i++ {
		if err := g.AddVertex(i); err != nil {
			return builderErrorf(method, err, "AddVertex(%d)", i)
		}
	}

	return nil
}

// addEdge wraps core.AddEdge errors with method context.
func addEdge(method string, g *core.Graph, u, v int) error {
	if err := g.AddEdge(u, v); err != nil {
		return builderErrorf(method, err, "AddEdge(%d,%d)", u, v)
	}

	return nil
}

// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph type, construction options and sentinel errors.

package core

import (
	"errors"
	"sync"

	"github.com/katalvlaran/lvclique/nodeset"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertexID indicates a vertex ID below zero.
	ErrNegativeVertexID = errors.New("core: vertex ID is negative")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether edges are one-way (true) or mirrored (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an in-memory network over integer vertex IDs.
//
// adjacency[v] holds the out-neighbours of v in edge insertion order.
// For undirected graphs every edge is stored in both rows and counted once.
type Graph struct {
	mu sync.RWMutex // guards everything below

	// Configuration flags
	directed   bool
	allowLoops bool

	// Storage
	adjacency map[int]*nodeset.Set
	edgeCount int
}

// NewGraph creates an empty Graph. By default the graph is undirected and
// rejects self-loops.
// Complexity: O(len(opts))
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{adjacency: make(map[int]*nodeset.Set)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

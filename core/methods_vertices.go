// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted ascending.

package core

import (
	"sort"

	"github.com/katalvlaran/lvclique/nodeset"
)

// AddVertex inserts vertex id if missing (idempotent).
//
// Errors:
//   - ErrNegativeVertexID: if id < 0.
//
// Complexity:
//   - Time O(1) amortized.
func (g *Graph) AddVertex(id int) error {
	if id < 0 {
		return ErrNegativeVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(id)

	return nil
}

// HasVertex reports whether vertex id exists.
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[id]

	return ok
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	out := make([]int, 0, len(g.adjacency))
	for id := range g.adjacency {
		out = append(out, id)
	}
	g.mu.RUnlock()

	sort.Ints(out)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// Degree returns the number of distinct out-neighbours of id
// (for undirected graphs, all neighbours; a self-loop counts once).
//
// Errors:
//   - ErrVertexNotFound: if id is absent.
func (g *Graph) Degree(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	row, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return row.Len(), nil
}

// ensureVertex registers id with an empty adjacency row. Caller holds mu.
func (g *Graph) ensureVertex(id int) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = nodeset.New()
	}
}

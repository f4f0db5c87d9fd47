// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge insertion & queries.

package core

// AddEdge connects from and to, creating missing vertices.
// Adding an edge that already exists is a no-op; the graph stays simple.
//
// Implementation:
//   - Stage 1: Validate IDs and loop policy.
//   - Stage 2: Under write lock, bootstrap both vertices.
//   - Stage 3: Record to in from's row (and from in to's row when undirected).
//
// Errors:
//   - ErrNegativeVertexID: if either endpoint is negative.
//   - ErrLoopNotAllowed: if from == to and loops are disabled.
//
// Complexity:
//   - Time O(1) amortized.
func (g *Graph) AddEdge(from, to int) error {
	if from < 0 || to < 0 {
		return ErrNegativeVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	g.ensureVertex(from)
	g.ensureVertex(to)

	row := g.adjacency[from]
	if row.Contains(to) {
		return nil
	}
	row.Put(to)
	if !g.directed {
		g.adjacency[to].Put(from)
	}
	g.edgeCount++

	return nil
}

// HasEdge reports whether an edge from→to exists.
// For undirected graphs HasEdge(a, b) == HasEdge(b, a).
func (g *Graph) HasEdge(from, to int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	row, ok := g.adjacency[from]

	return ok && row.Contains(to)
}

// EdgeCount returns the number of distinct edges.
// Undirected edges are counted once.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

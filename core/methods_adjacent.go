// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs.
// Determinism:
//   - NeighborIDs() returns neighbours in edge insertion order.

package core

// NeighborIDs returns the out-neighbours of id in the order their edges were
// added. For undirected graphs these are all adjacent vertices.
//
// Implementation:
//   - Stage 1: Under read lock, look up the adjacency row (ErrVertexNotFound).
//   - Stage 2: Copy the row into a fresh slice.
//
// Behavior highlights:
//   - The returned slice is independent of the graph; callers may mutate it.
//
// Errors:
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d), Space O(d), where d is the degree of id.
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	row, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return row.Values(), nil
}

// AdjacencyList returns a snapshot vertex → neighbour IDs.
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() map[int][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[int][]int, len(g.adjacency))
	for id, row := range g.adjacency {
		out[id] = row.Values()
	}

	return out
}

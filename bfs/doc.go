// Package bfs enumerates unweighted shortest paths from one start vertex,
// lazily and in non-decreasing hop count.
//
// What
//
//   - Enumerator is an external-iterator cursor over Routes {Dest, Weight}.
//     After construction it already points at the first route (a direct
//     neighbour of the start, Weight 1); Next moves to the following route.
//   - There is no heap. The search keeps three nodeset.Sets: the found-set
//     (every vertex already given a distance, start included), the fringe
//     (vertices at the current distance) and the next fringe (distance+1).
//     When the fringe runs out the next fringe is promoted and Weight grows.
//   - A vertex joins the found-set the moment it is placed into a fringe, and
//     a neighbour is queued only if it is neither found nor in the current
//     fringe. Every reachable vertex is therefore emitted exactly once, at its
//     minimum hop count.
//
// Ordering
//
//	Routes come in non-decreasing Weight. Within one level the order is the
//	order vertices were discovered, which for core.Graph follows neighbour
//	insertion order. The result is reproducible for a fixed graph.
//
// States
//
//	Emitting  Finished()==false; Current() returns the route under the cursor.
//	Exhausted Finished()==true; Current() returns ErrExhausted and Next() is a
//	          no-op returning nil. An isolated start is exhausted immediately.
//
// Usage
//
//	e, err := bfs.NewEnumerator(g, start)
//	if err != nil {
//		// ErrNetworkNil, ErrStartVertexNotFound, ErrOptionViolation, ErrNeighbors
//	}
//	for r := range e.Routes() {
//		// r.Dest, r.Weight
//	}
//	if err := e.Err(); err != nil { ... }
//
// Options
//
//   - WithMaxDepth(d):   stop after routes of Weight d (d>0; 0 = unlimited).
//   - WithOnDiscover(fn): hook run when a vertex is assigned its distance.
//
// Concurrency
//
//	An Enumerator is single-goroutine. Independent enumerators may walk the
//	same read-only Network concurrently.
//
// Complexity (V = reached vertices, E = their edges)
//
//   - Time:   O(V + E) for a full enumeration.
//   - Memory: O(V) for the found-set and frontiers.
package bfs

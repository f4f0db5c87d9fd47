// Package core defines Graph, the read-mostly integer-node network the
// lvclique algorithms run over.
//
// Vertices are non-negative integers. Edges are unweighted; the graph is
// undirected by default and simple (parallel edges collapse, self-loops are
// rejected unless WithLoops is given).
//
// Neighborhood order is deterministic: NeighborIDs returns neighbours in the
// order their edges were first added. Vertices returns IDs ascending.
//
// Concurrency
//
//	All methods are safe for concurrent use. Reads share an RWMutex read lock,
//	so several bfs enumerators may walk the same graph at once. A graph must be
//	fully built before enumerators are constructed against it.
//
// Errors:
//
//	ErrNegativeVertexID - vertex ID is below zero.
//	ErrVertexNotFound   - requested vertex does not exist.
//	ErrLoopNotAllowed   - self-loop when loops are disabled.
package core

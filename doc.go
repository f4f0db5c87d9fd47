// Package lvclique collects the building blocks used by clique-percolation
// community detection on complex networks.
//
// Under the hood, everything is organized under small subpackages:
//
//	cliquehash/ - Index: fixed-size chained hash table from cliques (ordered
//	              node-ID tuples) to ints, with a bit-packing hash and a
//	              resumable full-table cursor
//	bfs/        - Enumerator: lazy unweighted shortest paths from one start
//	              vertex, in non-decreasing hop count, without a heap
//	nodeset/    - Set: insertion-ordered node-ID set used for frontiers
//	core/       - Graph: thread-safe integer-node network satisfying bfs.Network
//	builder/    - deterministic Graph fixtures (paths, stars, G(n,p), ...)
//
// Quick example:
//
//	g, _ := builder.BuildGraph(nil, nil, builder.Cycle(6))
//	hist, _ := bfs.Histogram(g, 0) // [1 2 2 1]
//
//	idx, _ := cliquehash.New(cliquehash.Config{TableSize: 1 << 12, HashBits: 12, KeySize: 3})
//	_ = idx.Put(cliquehash.Clique{0, 1, 2}, 1)
//
// The percolation driver itself, file I/O and command-line handling live
// outside this module.
//
//	go get github.com/katalvlaran/lvclique
package lvclique

// Package cliquehash provides Index, a fixed-capacity chained hash table keyed
// by cliques: fixed-length ordered tuples of node IDs.
//
// What
//
//   - Index maps a Clique to an int (a percolation step or a cluster ID).
//   - The table has a fixed number of buckets chosen at construction; collisions
//     are resolved by separate chaining. There is no resize and no delete.
//   - The hash packs the low bits of every tuple element into one integer, so it
//     is perfect when every node ID fits in HashBits/KeySize bits. ConfigFor
//     derives such a configuration from the largest node ID.
//
// Hash layout (k = KeySize, o = HashBits/k):
//
//	bits  [HashBits-o, HashBits)      key[k-1] & (1<<o - 1)
//	bits  [HashBits-2o, HashBits-o)   key[k-2] & (1<<o - 1)
//	...
//	bits  [HashBits-ko, ...)          key[0]   & (1<<o - 1)
//	low   HashBits-ko bits            OR'ed with key[k-2] (k ≥ 2)
//
// Errors
//
//   - ErrConfig       invalid Config (zero arity, zero or oversized hash width,
//     fewer hash bits than arity, empty table, strict-domain mismatch).
//   - ErrHashRange    a computed hash fell outside [0, TableSize). The table is
//     configured too small for the node IDs in use; the call fails.
//   - ErrKeySize      a clique of the wrong arity was passed.
//   - ErrNegativeNode a clique holds a negative node ID.
//   - ErrOptionViolation an Option received a meaningless value.
//
// A miss is never an error: Contains returns false and Get returns NotFound.
//
// Iteration
//
//	for c := idx.Begin(); !c.Done(); c.Next() {
//		key, value := c.Entry()
//	}
//
// Buckets are visited in increasing index order and entries within a bucket in
// insertion order. This is not global insertion order.
//
// Index is not safe for concurrent use; guard it externally if shared.
package cliquehash

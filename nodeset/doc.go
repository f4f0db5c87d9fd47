// SPDX-License-Identifier: MIT

// Package nodeset provides Set, an insertion-ordered set of integer node IDs.
//
// Set is the membership structure used by the bfs enumerator for its found-set
// and frontiers, and by core for adjacency rows. It is backed by
// github.com/emirpasic/gods linkedhashset, so:
//
//   - Put and Contains are O(1) on average.
//   - Iteration visits values in first-insertion order; re-putting an existing
//     value does not move it.
//
// Iteration uses an explicit cursor with a finished check:
//
//	for it := s.Begin(); !it.Finished(); it.Next() {
//		use(it.Value())
//	}
//
// Mutating a Set while one of its iterators is live is not supported.
// A Set is not safe for concurrent use.
package nodeset

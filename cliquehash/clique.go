// SPDX-License-Identifier: MIT

package cliquehash

import (
	"fmt"
	"slices"

	"github.com/pkg/errors"
)

// Clique is an ordered tuple of node IDs used as a composite key.
// Two cliques are equal when they hold the same IDs in the same order;
// use Canonical to build order-insensitive keys.
type Clique []int

// Equal reports element-wise equality.
func (c Clique) Equal(other Clique) bool {
	return slices.Equal(c, other)
}

// Clone returns an independent copy.
func (c Clique) Clone() Clique {
	return slices.Clone(c)
}

// Canonical returns a sorted copy of c.
func (c Clique) Canonical() Clique {
	out := slices.Clone(c)
	slices.Sort(out)

	return out
}

// Validate checks c has exactly keySize non-negative node IDs.
func (c Clique) Validate(keySize int) error {
	if len(c) != keySize {
		return errors.Wrapf(ErrKeySize, "got %d nodes, want %d", len(c), keySize)
	}
	for i, v := range c {
		if v < 0 {
			return errors.Wrapf(ErrNegativeNode, "position %d holds %d", i, v)
		}
	}

	return nil
}

// String renders c as "[a b c]".
func (c Clique) String() string {
	return fmt.Sprint([]int(c))
}

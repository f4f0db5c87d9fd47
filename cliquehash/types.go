// SPDX-License-Identifier: MIT

package cliquehash

import "github.com/pkg/errors"

// NotFound is the value Get reports for an absent clique.
const NotFound = -1

// maxHashBits bounds HashBits so packed hashes fit a non-negative int64.
const maxHashBits = 62

// maxDerivedHashBits bounds the table ConfigFor is willing to allocate.
const maxDerivedHashBits = 30

// Sentinel errors for clique index operations.
var (
	// ErrConfig indicates an unusable TableSize/HashBits/KeySize combination.
	ErrConfig = errors.New("cliquehash: invalid configuration")

	// ErrHashRange indicates a hash escaped [0, TableSize).
	ErrHashRange = errors.New("cliquehash: hash outside table range")

	// ErrKeySize indicates a clique whose length differs from KeySize.
	ErrKeySize = errors.New("cliquehash: clique has wrong arity")

	// ErrNegativeNode indicates a clique containing a negative node ID.
	ErrNegativeNode = errors.New("cliquehash: negative node ID in clique")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("cliquehash: invalid option supplied")
)

// Config is the construction-time shape of an Index.
type Config struct {
	// TableSize is the number of buckets.
	TableSize int

	// HashBits is the bit width of the hash function's output domain.
	HashBits int

	// KeySize is the fixed clique arity for this index.
	KeySize int
}

// Option configures an Index via functional arguments.
type Option func(*options)

type options struct {
	strict    bool
	bucketCap int

	// internal error recorded during option parsing
	err error
}

// WithStrictDomain rejects, at construction, any Config whose TableSize is
// smaller than 2^HashBits. Every packed hash then lies inside the table and
// ErrHashRange can no longer occur.
func WithStrictDomain() Option {
	return func(o *options) { o.strict = true }
}

// WithBucketCapacity pre-sizes a bucket's chain to n entries when the bucket
// receives its first key. n must be ≥ 0.
func WithBucketCapacity(n int) Option {
	return func(o *options) {
		if n < 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "bucket capacity cannot be negative (%d)", n)
			return
		}
		o.bucketCap = n
	}
}

// Stats summarises bucket occupancy, for tuning TableSize and HashBits.
type Stats struct {
	Keys         int     // distinct cliques stored
	BucketsUsed  int     // buckets holding at least one entry
	LongestChain int     // entries in the fullest bucket
	LoadFactor   float64 // Keys / TableSize
}

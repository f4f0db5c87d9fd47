// SPDX-License-Identifier: MIT

package cliquehash

import (
	"iter"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

// entry is one (clique, value) pair in a bucket chain.
type entry struct {
	key   Clique
	value int
}

// Index is a fixed-capacity chained hash table from Clique to int.
//
// Invariants:
//   - at most one entry per distinct clique;
//   - the sum of all bucket lengths equals Len().
type Index struct {
	cfg Config

	// derived hash masks
	offset   uint   // bits per packed element: HashBits / KeySize
	maskAll  uint64 // HashBits ones
	maskElem uint64 // offset ones
	maskRest uint64 // ones over the HashBits - KeySize*offset leftover bits

	buckets   [][]entry
	keys      int
	bucketCap int
}

// NewIndex is shorthand for New(Config{tableSize, hashBits, keySize}, opts...).
func NewIndex(tableSize, hashBits, keySize int, opts ...Option) (*Index, error) {
	return New(Config{TableSize: tableSize, HashBits: hashBits, KeySize: keySize}, opts...)
}

// New allocates an empty Index with cfg.TableSize buckets.
//
// Errors:
//   - ErrOptionViolation: an Option was given a meaningless value.
//   - ErrConfig: cfg cannot drive the packing hash (see Config.validate rules).
//
// Complexity:
//   - Time O(TableSize), Space O(TableSize).
func New(cfg Config, opts ...Option) (*Index, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := cfg.validate(o.strict); err != nil {
		return nil, err
	}

	offset := uint(cfg.HashBits / cfg.KeySize)
	rest := uint(cfg.HashBits) - uint(cfg.KeySize)*offset
	idx := &Index{
		cfg:       cfg,
		offset:    offset,
		maskAll:   uint64(1)<<uint(cfg.HashBits) - 1,
		maskElem:  uint64(1)<<offset - 1,
		maskRest:  uint64(1)<<rest - 1,
		buckets:   make([][]entry, cfg.TableSize),
		bucketCap: o.bucketCap,
	}
	klog.V(2).Infof("cliquehash: table=%d hashBits=%d keySize=%d offset=%d rest=%d",
		cfg.TableSize, cfg.HashBits, cfg.KeySize, offset, rest)

	return idx, nil
}

// Config returns the configuration the index was built with.
func (idx *Index) Config() Config {
	return idx.cfg
}

// Len returns the number of distinct cliques stored.
func (idx *Index) Len() int {
	return idx.keys
}

// Hash returns the bucket index for key.
//
// Errors:
//   - ErrKeySize, ErrNegativeNode: key is malformed.
//   - ErrHashRange: the packed value is ≥ TableSize.
func (idx *Index) Hash(key Clique) (int, error) {
	if err := key.Validate(idx.cfg.KeySize); err != nil {
		return 0, err
	}

	h := idx.pack(key)
	if h >= uint64(idx.cfg.TableSize) {
		klog.Errorf("cliquehash: hash %d of %v outside table of %d buckets", h, key, idx.cfg.TableSize)
		return 0, errors.Wrapf(ErrHashRange, "clique %v hashed to %d, table size %d",
			key, h, idx.cfg.TableSize)
	}

	return int(h), nil
}

// pack computes the raw packed hash of a validated key.
// Element key[k-1-i] lands in the i-th offset-wide field from the top.
func (idx *Index) pack(key Clique) uint64 {
	k := len(key)
	hashBits := uint(idx.cfg.HashBits)

	var h uint64
	for i := 0; i < k; i++ {
		field := uint64(key[k-1-i]) & idx.maskElem
		h |= field << (hashBits - uint(i+1)*idx.offset)
	}
	if k >= 2 {
		h |= uint64(key[k-2]) & idx.maskRest
	}

	return h
}

// find returns the bucket for key and the position of key inside it (-1 if absent).
func (idx *Index) find(key Clique) (int, int, error) {
	b, err := idx.Hash(key)
	if err != nil {
		return 0, -1, err
	}
	for i, e := range idx.buckets[b] {
		if e.key.Equal(key) {
			return b, i, nil
		}
	}

	return b, -1, nil
}

// Contains reports whether key is stored.
func (idx *Index) Contains(key Clique) (bool, error) {
	_, pos, err := idx.find(key)

	return pos >= 0, err
}

// Lookup returns the value stored for key and whether it was present.
func (idx *Index) Lookup(key Clique) (int, bool, error) {
	b, pos, err := idx.find(key)
	if err != nil || pos < 0 {
		return NotFound, false, err
	}

	return idx.buckets[b][pos].value, true, nil
}

// Get returns the most recently put value for key, or NotFound if absent.
// Use Lookup when stored values may themselves be negative.
func (idx *Index) Get(key Clique) (int, error) {
	v, _, err := idx.Lookup(key)

	return v, err
}

// Put stores value under key. An existing equal key has its value replaced in
// place and Len is unchanged; otherwise a copy of key is appended to its
// bucket. The caller keeps ownership of key.
func (idx *Index) Put(key Clique, value int) error {
	b, pos, err := idx.find(key)
	if err != nil {
		return err
	}
	if pos >= 0 {
		idx.buckets[b][pos].value = value
		return nil
	}

	if idx.buckets[b] == nil && idx.bucketCap > 0 {
		idx.buckets[b] = make([]entry, 0, idx.bucketCap)
	}
	idx.buckets[b] = append(idx.buckets[b], entry{key: key.Clone(), value: value})
	idx.keys++

	return nil
}

// All yields every stored (clique, value) pair in cursor order.
// Yielded cliques are owned by the index and must not be modified.
func (idx *Index) All() iter.Seq2[Clique, int] {
	return func(yield func(Clique, int) bool) {
		for c := idx.Begin(); !c.Done(); c.Next() {
			if !yield(c.Entry()) {
				return
			}
		}
	}
}

// Stats reports bucket occupancy. Complexity: O(TableSize).
func (idx *Index) Stats() Stats {
	st := Stats{Keys: idx.keys}
	for _, bucket := range idx.buckets {
		if n := len(bucket); n > 0 {
			st.BucketsUsed++
			if n > st.LongestChain {
				st.LongestChain = n
			}
		}
	}
	st.LoadFactor = float64(idx.keys) / float64(idx.cfg.TableSize)

	return st
}

// Masks exposes the derived packing parameters: the HashBits-wide mask, the
// per-element mask, the leftover-bits mask and the per-element bit width.
func (idx *Index) Masks() (all, elem, rest uint64, offset uint) {
	return idx.maskAll, idx.maskElem, idx.maskRest, idx.offset
}

// SPDX-License-Identifier: MIT

package cliquehash_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvclique/cliquehash"
)

// TestNew_ConfigErrors verifies every rejected configuration surfaces ErrConfig
// instead of a division fault or a silently broken table.
func TestNew_ConfigErrors(t *testing.T) {
	cases := []struct {
		name string
		cfg  cliquehash.Config
	}{
		{"zero key size", cliquehash.Config{TableSize: 16, HashBits: 4, KeySize: 0}},
		{"negative key size", cliquehash.Config{TableSize: 16, HashBits: 4, KeySize: -2}},
		{"zero hash bits", cliquehash.Config{TableSize: 16, HashBits: 0, KeySize: 2}},
		{"hash bits above 62", cliquehash.Config{TableSize: 16, HashBits: 63, KeySize: 3}},
		{"fewer bits than arity", cliquehash.Config{TableSize: 16, HashBits: 2, KeySize: 3}},
		{"empty table", cliquehash.Config{TableSize: 0, HashBits: 4, KeySize: 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			idx, err := cliquehash.New(tc.cfg)
			require.ErrorIs(t, err, cliquehash.ErrConfig)
			require.Nil(t, idx)
		})
	}
}

func TestNew_Options(t *testing.T) {
	_, err := cliquehash.NewIndex(16, 4, 2, cliquehash.WithBucketCapacity(-1))
	require.ErrorIs(t, err, cliquehash.ErrOptionViolation)

	_, err = cliquehash.NewIndex(100, 10, 3, cliquehash.WithStrictDomain())
	require.ErrorIs(t, err, cliquehash.ErrConfig)

	idx, err := cliquehash.NewIndex(1<<10, 10, 3, cliquehash.WithStrictDomain(), cliquehash.WithBucketCapacity(2))
	require.NoError(t, err)
	require.NoError(t, idx.Put(cliquehash.Clique{1, 2, 3}, 7))
	v, err := idx.Get(cliquehash.Clique{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 7, v)
}

func TestIndex_Masks(t *testing.T) {
	idx, err := cliquehash.NewIndex(1<<10, 10, 3)
	require.NoError(t, err)
	all, elem, rest, offset := idx.Masks()
	assert.Equal(t, uint64(1023), all)
	assert.Equal(t, uint64(7), elem)
	assert.Equal(t, uint64(1), rest)
	assert.Equal(t, uint(3), offset)
	assert.Equal(t, cliquehash.Config{TableSize: 1024, HashBits: 10, KeySize: 3}, idx.Config())
}

// TestIndex_HashLayout pins the packed layout: last element in the top field,
// first element in the lowest full field, key[k-2] OR'ed into the remainder.
func TestIndex_HashLayout(t *testing.T) {
	idx, err := cliquehash.NewIndex(1<<10, 10, 3)
	require.NoError(t, err)

	cases := []struct {
		key  cliquehash.Clique
		want int
	}{
		{cliquehash.Clique{1, 2, 3}, 3<<7 | 2<<4 | 1<<1 | 0},
		{cliquehash.Clique{1, 3, 5}, 5<<7 | 3<<4 | 1<<1 | 1},
		{cliquehash.Clique{0, 0, 0}, 0},
		{cliquehash.Clique{7, 7, 7}, 7<<7 | 7<<4 | 7<<1 | 1},
		// high bits beyond the 3-bit field are masked away
		{cliquehash.Clique{8, 9, 10}, 2<<7 | 1<<4 | 0<<1 | 1},
	}
	for _, tc := range cases {
		h, err := idx.Hash(tc.key)
		require.NoError(t, err)
		assert.Equal(t, tc.want, h, "hash(%v)", tc.key)

		again, _ := idx.Hash(tc.key.Clone())
		assert.Equal(t, h, again, "hash must be deterministic")
	}
}

func TestIndex_HashSingleElement(t *testing.T) {
	idx, err := cliquehash.NewIndex(1<<4, 4, 1)
	require.NoError(t, err)
	h, err := idx.Hash(cliquehash.Clique{0b1011})
	require.NoError(t, err)
	require.Equal(t, 0b1011, h)
}

func TestIndex_HashRange(t *testing.T) {
	idx, err := cliquehash.NewIndex(100, 10, 3)
	require.NoError(t, err)

	// 3<<7 | 2<<4 | 1<<1 = 418 ≥ 100
	_, err = idx.Hash(cliquehash.Clique{1, 2, 3})
	require.ErrorIs(t, err, cliquehash.ErrHashRange)
	require.ErrorIs(t, idx.Put(cliquehash.Clique{1, 2, 3}, 1), cliquehash.ErrHashRange)
	_, err = idx.Contains(cliquehash.Clique{1, 2, 3})
	require.ErrorIs(t, err, cliquehash.ErrHashRange)
	require.Zero(t, idx.Len())

	// small IDs stay in range
	require.NoError(t, idx.Put(cliquehash.Clique{0, 1, 0}, 1))
}

func TestIndex_MalformedKeys(t *testing.T) {
	idx, err := cliquehash.NewIndex(1<<6, 6, 3)
	require.NoError(t, err)

	_, err = idx.Get(cliquehash.Clique{1, 2})
	require.ErrorIs(t, err, cliquehash.ErrKeySize)
	require.ErrorIs(t, idx.Put(cliquehash.Clique{1, 2, 3, 4}, 0), cliquehash.ErrKeySize)
	_, err = idx.Contains(cliquehash.Clique{1, -2, 3})
	require.ErrorIs(t, err, cliquehash.ErrNegativeNode)
}

func TestIndex_PutGetContains(t *testing.T) {
	idx, err := cliquehash.NewIndex(1<<9, 9, 3)
	require.NoError(t, err)

	a := cliquehash.Clique{1, 2, 3}
	b := cliquehash.Clique{3, 2, 1} // order matters

	ok, err := idx.Contains(a)
	require.NoError(t, err)
	require.False(t, ok)
	v, err := idx.Get(a)
	require.NoError(t, err)
	require.Equal(t, cliquehash.NotFound, v)

	require.NoError(t, idx.Put(a, 10))
	require.NoError(t, idx.Put(b, 20))
	require.Equal(t, 2, idx.Len())

	// overwrite keeps the key count
	require.NoError(t, idx.Put(a, 11))
	require.Equal(t, 2, idx.Len())

	v, _ = idx.Get(a)
	require.Equal(t, 11, v)
	v, _ = idx.Get(b)
	require.Equal(t, 20, v)

	// the index owns a copy of the key
	a[0] = 5
	v, _ = idx.Get(cliquehash.Clique{1, 2, 3})
	require.Equal(t, 11, v)
	ok, _ = idx.Contains(a)
	require.False(t, ok)
}

func TestIndex_LookupNegativeValues(t *testing.T) {
	idx, err := cliquehash.NewIndex(1<<4, 4, 2)
	require.NoError(t, err)
	require.NoError(t, idx.Put(cliquehash.Clique{1, 1}, -1))

	v, ok, err := idx.Lookup(cliquehash.Clique{1, 1})
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, -1, v)

	_, ok, err = idx.Lookup(cliquehash.Clique{2, 1})
	require.NoError(t, err)
	require.False(t, ok)
}

// TestIndex_Collisions forces every key into few buckets to exercise chaining.
func TestIndex_Collisions(t *testing.T) {
	// one bit per element: only the parity of each node ID reaches the hash
	idx, err := cliquehash.NewIndex(8, 3, 3)
	require.NoError(t, err)

	keys := []cliquehash.Clique{{0, 0, 0}, {2, 0, 0}, {4, 0, 0}, {0, 2, 4}}
	for i, k := range keys {
		h, err := idx.Hash(k)
		require.NoError(t, err)
		require.Zero(t, h)
		require.NoError(t, idx.Put(k, i))
	}
	for i, k := range keys {
		v, err := idx.Get(k)
		require.NoError(t, err)
		require.Equal(t, i, v)
	}

	st := idx.Stats()
	require.Equal(t, 4, st.Keys)
	require.Equal(t, 1, st.BucketsUsed)
	require.Equal(t, 4, st.LongestChain)
	require.InDelta(t, 0.5, st.LoadFactor, 1e-9)
}

// TestIndex_RandomAgainstMap checks last-write-wins and Len against a map reference.
func TestIndex_RandomAgainstMap(t *testing.T) {
	const keySize, maxID = 3, 20
	// 3 bits per element for IDs up to 20: chains are guaranteed
	idx, err := cliquehash.NewIndex(1<<9, 9, keySize)
	require.NoError(t, err)

	rnd := rand.New(rand.NewSource(7))
	ref := make(map[[keySize]int]int)
	for i := 0; i < 2000; i++ {
		var arr [keySize]int
		for j := range arr {
			arr[j] = rnd.Intn(maxID + 1)
		}
		require.NoError(t, idx.Put(cliquehash.Clique(arr[:]), i))
		ref[arr] = i
	}
	require.Equal(t, len(ref), idx.Len())
	for k, want := range ref {
		got, err := idx.Get(cliquehash.Clique(k[:]))
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	// keys never put
	for i := 0; i < 200; i++ {
		k := [keySize]int{rnd.Intn(maxID + 1), rnd.Intn(maxID + 1), rnd.Intn(maxID + 1)}
		if _, seen := ref[k]; seen {
			continue
		}
		ok, err := idx.Contains(cliquehash.Clique(k[:]))
		require.NoError(t, err)
		require.False(t, ok)
	}
}

func TestConfigFor(t *testing.T) {
	cfg, err := cliquehash.ConfigFor(4, 12)
	require.NoError(t, err)
	require.Equal(t, cliquehash.Config{TableSize: 1 << 16, HashBits: 16, KeySize: 4}, cfg)

	cfg, err = cliquehash.ConfigFor(2, 0)
	require.NoError(t, err)
	require.Equal(t, 2, cfg.HashBits)

	_, err = cliquehash.ConfigFor(0, 10)
	require.ErrorIs(t, err, cliquehash.ErrConfig)
	_, err = cliquehash.ConfigFor(3, -1)
	require.ErrorIs(t, err, cliquehash.ErrConfig)
	_, err = cliquehash.ConfigFor(4, 1<<10)
	require.ErrorIs(t, err, cliquehash.ErrConfig)

	// every clique over the derived domain is in range and collision-free
	cfg, err = cliquehash.ConfigFor(2, 5)
	require.NoError(t, err)
	idx, err := cliquehash.New(cfg, cliquehash.WithStrictDomain())
	require.NoError(t, err)
	seen := make(map[int]cliquehash.Clique)
	for x := 0; x <= 5; x++ {
		for y := 0; y <= 5; y++ {
			k := cliquehash.Clique{x, y}
			h, err := idx.Hash(k)
			require.NoError(t, err)
			prev, dup := seen[h]
			require.False(t, dup, "%v collides with %v", k, prev)
			seen[h] = k
		}
	}
}

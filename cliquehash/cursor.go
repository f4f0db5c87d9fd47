// SPDX-License-Identifier: MIT

package cliquehash

// Cursor walks every entry of an Index: buckets ascending, then chain order.
// Putting new keys while a cursor is live is not supported.
type Cursor struct {
	idx    *Index
	bucket int // current bucket; TableSize once exhausted
	pos    int // position inside the current bucket
}

// Begin returns a cursor on the first entry. On an empty index the cursor is
// already done.
func (idx *Index) Begin() *Cursor {
	c := &Cursor{idx: idx, bucket: len(idx.buckets)}
	if idx.keys == 0 {
		return c
	}
	c.seek(0)

	return c
}

// Done reports whether every entry has been visited.
func (c *Cursor) Done() bool {
	return c.bucket >= len(c.idx.buckets)
}

// Entry returns the clique and value under the cursor, or (nil, NotFound)
// once done. The clique is owned by the index and must not be modified.
func (c *Cursor) Entry() (Clique, int) {
	if c.Done() {
		return nil, NotFound
	}
	e := c.idx.buckets[c.bucket][c.pos]

	return e.key, e.value
}

// Next advances to the following entry, skipping empty buckets.
// Calling Next on a done cursor is a no-op.
func (c *Cursor) Next() {
	if c.Done() {
		return
	}
	c.pos++
	if c.pos < len(c.idx.buckets[c.bucket]) {
		return
	}
	c.seek(c.bucket + 1)
}

// seek positions the cursor on the first entry of the first non-empty bucket
// at index ≥ from, or marks it done.
func (c *Cursor) seek(from int) {
	buckets := c.idx.buckets
	for b := from; b < len(buckets); b++ {
		if len(buckets[b]) > 0 {
			c.bucket, c.pos = b, 0
			return
		}
	}
	c.bucket, c.pos = len(buckets), 0
}

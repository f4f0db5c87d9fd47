// SPDX-License-Identifier: MIT

package nodeset

import (
	"strconv"
	"strings"

	"github.com/emirpasic/gods/sets/linkedhashset"
)

// Set is an insertion-ordered set of node IDs.
// The zero value is not usable; construct with New.
type Set struct {
	items *linkedhashset.Set
}

// New returns a Set holding values, in the order given (duplicates collapse).
func New(values ...int) *Set {
	s := &Set{items: linkedhashset.New()}
	for _, v := range values {
		s.items.Add(v)
	}

	return s
}

// Put adds v. Putting an existing value is a no-op and keeps its position.
func (s *Set) Put(v int) {
	s.items.Add(v)
}

// Contains reports whether v is a member.
func (s *Set) Contains(v int) bool {
	return s.items.Contains(v)
}

// Len returns the number of members.
func (s *Set) Len() int {
	return s.items.Size()
}

// Empty reports whether the set has no members.
func (s *Set) Empty() bool {
	return s.items.Empty()
}

// Values returns the members in iteration order as a fresh slice.
func (s *Set) Values() []int {
	out := make([]int, 0, s.items.Size())
	for it := s.Begin(); !it.Finished(); it.Next() {
		out = append(out, it.Value())
	}

	return out
}

// Begin returns an iterator positioned on the first member.
// For an empty set the iterator is already finished.
func (s *Set) Begin() *Iterator {
	it := &Iterator{it: s.items.Iterator()}
	it.Next()

	return it
}

// String renders the set as "{a b c}" in iteration order.
func (s *Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for it, first := s.Begin(), true; !it.Finished(); it.Next() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteString(strconv.Itoa(it.Value()))
	}
	sb.WriteByte('}')

	return sb.String()
}

// Iterator is a forward cursor over a Set.
type Iterator struct {
	it       linkedhashset.Iterator
	current  int
	finished bool
}

// Finished reports whether the iterator has moved past the last member.
func (it *Iterator) Finished() bool {
	return it.finished
}

// Value returns the member under the cursor. It returns 0 once finished.
func (it *Iterator) Value() int {
	return it.current
}

// Next advances to the following member. Calling Next on a finished
// iterator keeps it finished.
func (it *Iterator) Next() {
	if it.finished {
		return
	}
	if !it.it.Next() {
		it.finished = true
		it.current = 0
		return
	}
	it.current = it.it.Value().(int)
}

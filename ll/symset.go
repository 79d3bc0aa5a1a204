package ll

import (
	"github.com/emirpasic/gods/sets/treeset"
)

// symset is an ordered set of symbol indices. Within FIRST and FOLLOW sets the
// indices are table columns (terminals, then end-of-input), within left-corner
// sets they are non-terminal indices. Sets only grow.
type symset struct {
	set *treeset.Set
}

func newSymset() *symset {
	return &symset{set: treeset.NewWithIntComparator()}
}

// add inserts i and reports whether the set changed.
func (s *symset) add(i int) bool {
	if s.set.Contains(i) {
		return false
	}
	s.set.Add(i)
	return true
}

// union adds all members of other to s and reports whether s changed.
func (s *symset) union(other *symset) bool {
	if other == nil || other == s {
		return false
	}
	changed := false
	it := other.set.Iterator()
	for it.Next() {
		if s.add(it.Value().(int)) {
			changed = true
		}
	}
	return changed
}

func (s *symset) contains(i int) bool {
	return s.set.Contains(i)
}

func (s *symset) size() int {
	return s.set.Size()
}

// values returns the members in ascending order.
func (s *symset) values() []int {
	vals := make([]int, 0, s.set.Size())
	it := s.set.Iterator()
	for it.Next() {
		vals = append(vals, it.Value().(int))
	}
	return vals
}

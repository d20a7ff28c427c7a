package core

import "slices"

// IDSet is a set of vertex ids.
type IDSet map[int]struct{}

// NewIDSet returns a set holding ids.
func NewIDSet(ids ...int) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}

	return s
}

// RangeSet returns the set {0, ..., n-1}.
func RangeSet(n int) IDSet {
	s := make(IDSet, max(n, 0))
	for i := 0; i < n; i++ {
		s[i] = struct{}{}
	}

	return s
}

// Add inserts id.
func (s IDSet) Add(id int) { s[id] = struct{}{} }

// Remove deletes id; absent ids are ignored.
func (s IDSet) Remove(id int) { delete(s, id) }

// Has reports membership.
func (s IDSet) Has(id int) bool {
	_, ok := s[id]
	return ok
}

// Len returns the cardinality.
func (s IDSet) Len() int { return len(s) }

// Sorted returns the members in ascending order.
func (s IDSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	slices.Sort(out)

	return out
}

// Min returns the smallest member and false for an empty set.
func (s IDSet) Min() (int, bool) {
	first := true
	var m int
	for id := range s {
		if first || id < m {
			m = id
			first = false
		}
	}

	return m, !first
}

// Clone returns an independent copy.
func (s IDSet) Clone() IDSet {
	out := make(IDSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}

	return out
}

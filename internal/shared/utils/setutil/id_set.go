// Package setutil provides generic set utilities for common ID collection patterns.
package setutil

import "sort"

// IDSet is a set of server-assigned integer identifiers.
// It uses map[int]struct{} internally for memory efficiency.
type IDSet struct {
	items map[int]struct{}
}

// NewIDSet creates a new empty IDSet.
func NewIDSet() *IDSet {
	return &IDSet{
		items: make(map[int]struct{}),
	}
}

// NewIDSetWithCap creates a new IDSet with initial capacity.
func NewIDSetWithCap(cap int) *IDSet {
	return &IDSet{
		items: make(map[int]struct{}, cap),
	}
}

// Add adds an id to the set.
func (s *IDSet) Add(id int) {
	s.items[id] = struct{}{}
}

// AddAll adds all ids to the set.
func (s *IDSet) AddAll(ids []int) {
	for _, id := range ids {
		s.items[id] = struct{}{}
	}
}

// Remove removes an id from the set. Removing an absent id is a no-op.
func (s *IDSet) Remove(id int) {
	delete(s.items, id)
}

// Toggle flips membership of id and returns true if the id is a member
// afterwards. Toggling twice restores the original membership.
func (s *IDSet) Toggle(id int) bool {
	if _, ok := s.items[id]; ok {
		delete(s.items, id)
		return false
	}
	s.items[id] = struct{}{}
	return true
}

// Has returns true if the id exists in the set.
func (s *IDSet) Has(id int) bool {
	_, ok := s.items[id]
	return ok
}

// ToSlice returns all ids as a slice.
// The order is not guaranteed.
func (s *IDSet) ToSlice() []int {
	result := make([]int, 0, len(s.items))
	for id := range s.items {
		result = append(result, id)
	}
	return result
}

// Sorted returns all ids in ascending order.
func (s *IDSet) Sorted() []int {
	result := s.ToSlice()
	sort.Ints(result)
	return result
}

// Len returns the number of elements in the set.
func (s *IDSet) Len() int {
	return len(s.items)
}

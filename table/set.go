// SPDX-License-Identifier: MIT

package table

import "iter"

// Set is an unordered collection of distinct values backed by a Table.
type Set[T comparable] struct {
	t *Table[T, struct{}]
}

// NewSet returns an empty set. Options are forwarded to the backing table.
func NewSet[T comparable](opts ...Option) *Set[T] {
	return &Set[T]{t: New[T, struct{}](opts...)}
}

// SetOf returns a set holding values.
func SetOf[T comparable](values ...T) *Set[T] {
	s := NewSet[T]()
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts v and reports whether it was newly added.
func (s *Set[T]) Add(v T) bool {
	if s.t.ContainsKey(v) {
		return false
	}
	s.t.Put(v, struct{}{})
	return true
}

// Has reports membership.
func (s *Set[T]) Has(v T) bool { return s.t.ContainsKey(v) }

// Remove deletes v and reports whether it was present.
func (s *Set[T]) Remove(v T) bool { return s.t.Remove(v) }

// Len returns the number of members.
func (s *Set[T]) Len() int { return s.t.Len() }

// Items returns the members in unspecified order.
func (s *Set[T]) Items() []T { return s.t.Keys() }

// All iterates over the members in unspecified order.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for k := range s.t.All() {
			if !yield(k) {
				return
			}
		}
	}
}

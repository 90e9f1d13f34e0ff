// SPDX-License-Identifier: MIT

// Package sequence provides Sequence, a singly linked, order-preserving list,
// and a priority queue built on it for elements that expose a priority.
//
// Every index-based operation walks from the head and costs O(n); Append,
// Prepend and RemoveFirst are O(1). Order changes only through explicit
// positional inserts or deletions.
//
// Errors:
//
//	ErrIndexOutOfRange - Get/Set/InsertAt/DeleteAt received an invalid index.
//	ErrNotFound        - DeleteByValue found no equal element.
package sequence

import (
	"errors"
	"fmt"
	"iter"
)

var (
	// ErrIndexOutOfRange indicates an index outside the valid range for the operation.
	ErrIndexOutOfRange = errors.New("sequence: index out of range")

	// ErrNotFound indicates that no element equal to the requested value exists.
	ErrNotFound = errors.New("sequence: value not found")
)

type node[T comparable] struct {
	value T
	next  *node[T]
}

// Sequence is a singly linked list. The zero value is an empty sequence
// ready to use.
type Sequence[T comparable] struct {
	head *node[T]
	tail *node[T]
	size int
}

// New returns an empty sequence.
func New[T comparable]() *Sequence[T] { return &Sequence[T]{} }

// From returns a sequence holding values in order.
func From[T comparable](values ...T) *Sequence[T] {
	s := New[T]()
	for _, v := range values {
		s.Append(v)
	}
	return s
}

// Len returns the number of elements.
func (s *Sequence[T]) Len() int { return s.size }

// Append adds v at the end. O(1).
func (s *Sequence[T]) Append(v T) {
	n := &node[T]{value: v}
	if s.tail == nil {
		s.head, s.tail = n, n
	} else {
		s.tail.next = n
		s.tail = n
	}
	s.size++
}

// Prepend adds v at the front. O(1).
func (s *Sequence[T]) Prepend(v T) {
	s.head = &node[T]{value: v, next: s.head}
	if s.tail == nil {
		s.tail = s.head
	}
	s.size++
}

// InsertAt places v so that it ends up at index i. Valid range is 0 ≤ i ≤ Len().
func (s *Sequence[T]) InsertAt(i int, v T) error {
	if i < 0 || i > s.size {
		return fmt.Errorf("%w: insert at %d, len %d", ErrIndexOutOfRange, i, s.size)
	}
	switch i {
	case 0:
		s.Prepend(v)
	case s.size:
		s.Append(v)
	default:
		prev := s.nodeAt(i - 1)
		prev.next = &node[T]{value: v, next: prev.next}
		s.size++
	}
	return nil
}

// Get returns the element at index i.
func (s *Sequence[T]) Get(i int) (T, error) {
	if i < 0 || i >= s.size {
		var zero T
		return zero, fmt.Errorf("%w: get %d, len %d", ErrIndexOutOfRange, i, s.size)
	}
	return s.nodeAt(i).value, nil
}

// Set replaces the element at index i.
func (s *Sequence[T]) Set(i int, v T) error {
	if i < 0 || i >= s.size {
		return fmt.Errorf("%w: set %d, len %d", ErrIndexOutOfRange, i, s.size)
	}
	s.nodeAt(i).value = v
	return nil
}

// DeleteAt removes and returns the element at index i.
func (s *Sequence[T]) DeleteAt(i int) (T, error) {
	if i < 0 || i >= s.size {
		var zero T
		return zero, fmt.Errorf("%w: delete %d, len %d", ErrIndexOutOfRange, i, s.size)
	}
	if i == 0 {
		v, _ := s.RemoveFirst()
		return v, nil
	}
	prev := s.nodeAt(i - 1)
	v := prev.next.value
	s.unlinkAfter(prev)
	return v, nil
}

// DeleteByValue removes the first element equal to v.
func (s *Sequence[T]) DeleteByValue(v T) error {
	var prev *node[T]
	for n := s.head; n != nil; prev, n = n, n.next {
		if n.value != v {
			continue
		}
		if prev == nil {
			s.RemoveFirst()
		} else {
			s.unlinkAfter(prev)
		}
		return nil
	}
	return fmt.Errorf("%w: %v", ErrNotFound, v)
}

// RemoveFirst pops the head. The boolean is false on an empty sequence.
func (s *Sequence[T]) RemoveFirst() (T, bool) {
	if s.head == nil {
		var zero T
		return zero, false
	}
	n := s.head
	s.head = n.next
	if s.head == nil {
		s.tail = nil
	}
	s.size--
	return n.value, true
}

// First returns the head element without removing it.
func (s *Sequence[T]) First() (T, bool) {
	if s.head == nil {
		var zero T
		return zero, false
	}
	return s.head.value, true
}

// Contains reports whether an element equal to v exists. O(n).
func (s *Sequence[T]) Contains(v T) bool { return s.IndexOf(v) >= 0 }

// IndexOf returns the index of the first element equal to v, or -1.
func (s *Sequence[T]) IndexOf(v T) int {
	i := 0
	for n := s.head; n != nil; n = n.next {
		if n.value == v {
			return i
		}
		i++
	}
	return -1
}

// All iterates index/value pairs from head to tail.
// Each call starts a fresh traversal.
func (s *Sequence[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for n := s.head; n != nil; n = n.next {
			if !yield(i, n.value) {
				return
			}
			i++
		}
	}
}

// Values iterates values from head to tail.
func (s *Sequence[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Slice copies the elements into a new slice, preserving order.
func (s *Sequence[T]) Slice() []T {
	out := make([]T, 0, s.size)
	for v := range s.Values() {
		out = append(out, v)
	}
	return out
}

// Clear drops every element.
func (s *Sequence[T]) Clear() {
	s.head, s.tail, s.size = nil, nil, 0
}

// nodeAt walks to index i; callers validate bounds.
func (s *Sequence[T]) nodeAt(i int) *node[T] {
	n := s.head
	for ; i > 0; i-- {
		n = n.next
	}
	return n
}

// unlinkAfter removes prev.next; prev must not be the tail.
func (s *Sequence[T]) unlinkAfter(prev *node[T]) {
	removed := prev.next
	prev.next = removed.next
	if removed == s.tail {
		s.tail = prev
	}
	s.size--
}

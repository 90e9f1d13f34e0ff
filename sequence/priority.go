// SPDX-License-Identifier: MIT

package sequence

// HasPriority is implemented by elements that can be priority-inserted.
// Higher values sort first.
type HasPriority interface {
	Priority() int
}

// Prioritized constrains the element types accepted by InsertByPriority.
type Prioritized interface {
	comparable
	HasPriority
}

// InsertByPriority inserts v before the first element whose priority is
// strictly lower than v's, keeping the sequence in descending priority order.
// Elements of equal priority keep their insertion order (FIFO).
// Complexity: O(n).
func InsertByPriority[T Prioritized](s *Sequence[T], v T) {
	p := v.Priority()
	if s.head == nil || s.head.value.Priority() < p {
		s.Prepend(v)
		return
	}
	prev := s.head
	for prev.next != nil && prev.next.value.Priority() >= p {
		prev = prev.next
	}
	if prev == s.tail {
		s.Append(v)
		return
	}
	prev.next = &node[T]{value: v, next: prev.next}
	s.size++
}

// PriorityQueue pops elements in descending priority, FIFO among equals.
type PriorityQueue[T Prioritized] struct {
	items Sequence[T]
}

// NewPriorityQueue returns an empty queue.
func NewPriorityQueue[T Prioritized]() *PriorityQueue[T] {
	return &PriorityQueue[T]{}
}

// Push inserts v at its priority position.
func (q *PriorityQueue[T]) Push(v T) { InsertByPriority(&q.items, v) }

// Pop removes and returns the highest-priority element.
func (q *PriorityQueue[T]) Pop() (T, bool) { return q.items.RemoveFirst() }

// Peek returns the highest-priority element without removing it.
func (q *PriorityQueue[T]) Peek() (T, bool) { return q.items.First() }

// Len returns the number of queued elements.
func (q *PriorityQueue[T]) Len() int { return q.items.Len() }

// SPDX-License-Identifier: MIT
//
// File: table.go
// Role: Chained hash table with a construction-time bucket count.
// Policy:
//   - Keys are unique; Put on an existing key overwrites (last write wins).
//   - Missing keys are reported through a boolean, never an error.
//   - No resizing unless WithMaxLoadFactor was supplied.

package table

import (
	"hash/maphash"
	"iter"
)

// DefaultBuckets is the bucket count used when WithBuckets is not supplied.
const DefaultBuckets = 16

// entry is one node of a bucket chain.
type entry[K comparable, V any] struct {
	key   K
	value V
	next  *entry[K, V]
}

// Option configures a Table before first use.
type Option func(*options)

type options struct {
	buckets       int
	maxLoadFactor float64
}

// WithBuckets fixes the number of buckets. Panics on n < 1.
func WithBuckets(n int) Option {
	if n < 1 {
		panic("table: WithBuckets(n < 1)")
	}
	return func(o *options) { o.buckets = n }
}

// WithMaxLoadFactor enables growth: once Len()/Buckets() exceeds f after an
// insert, the bucket count doubles and every entry is rehashed.
// f == 0 keeps the table fixed-size. Panics on f < 0.
func WithMaxLoadFactor(f float64) Option {
	if f < 0 {
		panic("table: WithMaxLoadFactor(f < 0)")
	}
	return func(o *options) { o.maxLoadFactor = f }
}

// Table maps keys of type K to values of type V.
// The zero value is not usable; construct with New.
type Table[K comparable, V any] struct {
	seed          maphash.Seed
	buckets       []*entry[K, V]
	size          int
	maxLoadFactor float64
}

// New returns an empty table.
// Complexity: O(N) for the bucket array.
func New[K comparable, V any](opts ...Option) *Table[K, V] {
	o := options{buckets: DefaultBuckets}
	for _, opt := range opts {
		opt(&o)
	}

	return &Table[K, V]{
		seed:          maphash.MakeSeed(),
		buckets:       make([]*entry[K, V], o.buckets),
		maxLoadFactor: o.maxLoadFactor,
	}
}

// index maps k onto a bucket: abs(hash(k)) mod N.
// maphash yields an unsigned value, so abs is implicit.
func (t *Table[K, V]) index(k K) int {
	return int(maphash.Comparable(t.seed, k) % uint64(len(t.buckets)))
}

// find returns the chain node holding k, or nil.
func (t *Table[K, V]) find(k K) *entry[K, V] {
	for e := t.buckets[t.index(k)]; e != nil; e = e.next {
		if e.key == k {
			return e
		}
	}
	return nil
}

// Put inserts k→v or overwrites the value already stored under k.
// Complexity: O(chain length).
func (t *Table[K, V]) Put(k K, v V) {
	if e := t.find(k); e != nil {
		e.value = v
		return
	}
	i := t.index(k)
	t.buckets[i] = &entry[K, V]{key: k, value: v, next: t.buckets[i]}
	t.size++

	if t.maxLoadFactor > 0 && t.LoadFactor() > t.maxLoadFactor {
		t.grow()
	}
}

// Get returns the value stored under k. The boolean is false when k is absent,
// in which case the zero V is returned.
func (t *Table[K, V]) Get(k K) (V, bool) {
	if e := t.find(k); e != nil {
		return e.value, true
	}
	var zero V
	return zero, false
}

// ContainsKey reports whether k is present.
func (t *Table[K, V]) ContainsKey(k K) bool {
	return t.find(k) != nil
}

// Remove deletes k and reports whether it was present.
// Complexity: O(chain length).
func (t *Table[K, V]) Remove(k K) bool {
	i := t.index(k)
	var prev *entry[K, V]
	for e := t.buckets[i]; e != nil; prev, e = e, e.next {
		if e.key != k {
			continue
		}
		if prev == nil {
			t.buckets[i] = e.next
		} else {
			prev.next = e.next
		}
		t.size--
		return true
	}
	return false
}

// Len returns the number of stored keys.
func (t *Table[K, V]) Len() int { return t.size }

// Keys returns every key in bucket order (unspecified).
func (t *Table[K, V]) Keys() []K {
	keys := make([]K, 0, t.size)
	for k := range t.All() {
		keys = append(keys, k)
	}
	return keys
}

// Values returns every value in the same order Keys would return the keys.
func (t *Table[K, V]) Values() []V {
	values := make([]V, 0, t.size)
	for _, v := range t.All() {
		values = append(values, v)
	}
	return values
}

// All iterates over key/value pairs in bucket order.
// Mutating the table during iteration is undefined.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, head := range t.buckets {
			for e := head; e != nil; e = e.next {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

// Clear drops every entry but keeps the bucket count.
func (t *Table[K, V]) Clear() {
	clear(t.buckets)
	t.size = 0
}

// Buckets returns the current bucket count.
func (t *Table[K, V]) Buckets() int { return len(t.buckets) }

// LoadFactor returns Len()/Buckets(), i.e. the mean chain length.
func (t *Table[K, V]) LoadFactor() float64 {
	return float64(t.size) / float64(len(t.buckets))
}

// LongestChain returns the length of the longest bucket chain.
func (t *Table[K, V]) LongestChain() int {
	longest := 0
	for _, head := range t.buckets {
		n := 0
		for e := head; e != nil; e = e.next {
			n++
		}
		if n > longest {
			longest = n
		}
	}
	return longest
}

// grow doubles the bucket array and relinks every node into its new bucket.
// Nodes are reused; no values are copied.
func (t *Table[K, V]) grow() {
	old := t.buckets
	t.buckets = make([]*entry[K, V], 2*len(old))
	for _, head := range old {
		for e := head; e != nil; {
			next := e.next
			i := t.index(e.key)
			e.next = t.buckets[i]
			t.buckets[i] = e
			e = next
		}
	}
}

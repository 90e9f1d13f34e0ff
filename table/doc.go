// SPDX-License-Identifier: MIT

// Package table provides the associative container used by every other
// bookgraph package: a hash table with a fixed number of buckets and
// separate chaining, plus a Set built on top of it.
//
// Layout:
//
//	buckets[0] → (k1,v1) → (k7,v7) → nil
//	buckets[1] → nil
//	buckets[2] → (k3,v3) → nil
//	...
//
// A key lands in bucket hash(k) mod N, where N is chosen at construction
// (WithBuckets) and never changes unless WithMaxLoadFactor opts into growth.
// Within a bucket, lookup, overwrite and removal walk the chain, so every
// keyed operation is O(chain length). With the default fixed size, chains
// grow linearly with the number of keys.
//
// Iteration (Keys, Values, All) follows bucket order and is unspecified;
// callers needing a stable order must sort.
//
// Tables are not safe for concurrent mutation. A single owner is expected to
// serialize writes and reads.
//
// Quick example:
//
//	t := table.New[string, int]()
//	t.Put("dune", 5)
//	v, ok := t.Get("dune") // 5, true
//	t.Remove("dune")
//	t.ContainsKey("dune")  // false
package table

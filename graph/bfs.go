// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"

	"github.com/katalvlaran/bookgraph/sequence"
	"github.com/katalvlaran/bookgraph/table"
)

// BFSResult holds the outcome of a breadth-first traversal:
//   - Order: vertices in visit sequence.
//   - Depth: hop distance from the start for every discovered vertex.
//   - Parent: predecessor in the BFS tree (the start has none).
type BFSResult[T comparable] struct {
	Order  []T
	Depth  *table.Table[T, int]
	Parent *table.Table[T, T]
}

// PathTo walks Parent links back from dest to the start and returns the
// start→dest path. The boolean is false when dest was not discovered.
func (r *BFSResult[T]) PathTo(dest T) ([]T, bool) {
	if !r.Depth.ContainsKey(dest) {
		return nil, false
	}
	// build reversed path
	path := []T{dest}
	for cur := dest; ; {
		prev, ok := r.Parent.Get(cur)
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}

// queueItem pairs a vertex with its BFS depth.
type queueItem[T comparable] struct {
	v     T
	depth int
}

// bfsWalker encapsulates mutable BFS state.
type bfsWalker[T comparable] struct {
	graph   *Undirected[T]
	opts    traversalOptions[T]
	queue   sequence.Sequence[queueItem[T]]
	visited *table.Set[T]
	res     *BFSResult[T]
}

// BFS runs breadth-first search from start.
// Returns ErrStartVertexNotFound for an unknown start, ErrOptionViolation for
// bad options, the context error on cancellation, or a wrapped OnVisit error.
// Complexity: O(V+E) table operations.
func (g *Undirected[T]) BFS(start T, opts ...TraversalOption[T]) (*BFSResult[T], error) {
	o := defaultTraversalOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	w := &bfsWalker[T]{
		graph:   g,
		opts:    o,
		visited: table.NewSet[T](g.tableOpts...),
		res: &BFSResult[T]{
			Order:  make([]T, 0),
			Depth:  table.New[T, int](g.tableOpts...),
			Parent: table.New[T, T](g.tableOpts...),
		},
	}
	w.discover(start, 0, nil)

	return w.res, w.loop()
}

// discover marks v visited at depth d, records its parent and enqueues it.
func (w *bfsWalker[T]) discover(v T, d int, parent *T) {
	w.visited.Add(v)
	w.res.Depth.Put(v, d)
	if parent != nil {
		w.res.Parent.Put(v, *parent)
	}
	w.queue.Append(queueItem[T]{v: v, depth: d})
}

// loop processes the queue until empty, stop target, error or cancellation.
func (w *bfsWalker[T]) loop() error {
	for w.queue.Len() > 0 {
		select {
		case <-w.opts.ctx.Done():
			return w.opts.ctx.Err()
		default:
		}

		item, _ := w.queue.RemoveFirst()
		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.onVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("graph: OnVisit error at %v: %w", item.v, err)
		}
		if w.opts.stopAt != nil && *w.opts.stopAt == item.v {
			return nil
		}

		next := item.depth + 1
		if w.opts.maxDepth > 0 && next > w.opts.maxDepth {
			continue
		}
		for _, nbr := range w.graph.Neighbors(item.v) {
			if !w.visited.Has(nbr) {
				w.discover(nbr, next, &item.v)
			}
		}
	}
	return nil
}

// ShortestPath returns a fewest-hop path from start to end, both inclusive.
// It returns [start] when start == end, and an empty slice when either
// vertex is unknown or end is unreachable.
//
// Among equally short paths the choice follows neighbor order; see WithOrder.
func (g *Undirected[T]) ShortestPath(start, end T) []T {
	if !g.HasVertex(start) || !g.HasVertex(end) {
		return []T{}
	}
	if start == end {
		return []T{start}
	}
	res, err := g.BFS(start, WithStopAt(end))
	if err != nil {
		return []T{}
	}
	path, ok := res.PathTo(end)
	if !ok {
		return []T{}
	}
	return path
}

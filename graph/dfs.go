// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"

	"github.com/katalvlaran/bookgraph/sequence"
	"github.com/katalvlaran/bookgraph/table"
)

// DFSResult captures a depth-first traversal.
type DFSResult[T comparable] struct {
	// Order records vertices in discovery (pre-order) sequence.
	Order []T

	// Depth maps each vertex to its depth in its DFS tree.
	Depth *table.Table[T, int]

	// Parent maps each vertex to the vertex it was discovered from.
	// Tree roots have no entry.
	Parent *table.Table[T, T]

	// Roots lists the vertex each DFS tree started from, in order.
	// A single-source traversal has exactly one root.
	Roots []T
}

// Visited reports whether v was reached.
func (r *DFSResult[T]) Visited(v T) bool { return r.Depth.ContainsKey(v) }

// stackItem is a pending vertex on the explicit DFS stack.
type stackItem[T comparable] struct {
	v         T
	depth     int
	parent    T
	hasParent bool
}

// dfsWalker encapsulates DFS state. The stack is a Sequence used LIFO
// (Prepend/RemoveFirst), so deep graphs do not grow the goroutine stack.
type dfsWalker[T comparable] struct {
	graph *Undirected[T]
	opts  traversalOptions[T]
	stack sequence.Sequence[stackItem[T]]
	res   *DFSResult[T]
	done  bool
}

// DFS performs depth-first search from start, or over every component when
// WithFullTraversal is given (start is then ignored).
// Neighbors are explored in Neighbors() order.
func (g *Undirected[T]) DFS(start T, opts ...TraversalOption[T]) (*DFSResult[T], error) {
	o := defaultTraversalOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !o.full && !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	w := &dfsWalker[T]{
		graph: g,
		opts:  o,
		res: &DFSResult[T]{
			Order:  make([]T, 0),
			Depth:  table.New[T, int](g.tableOpts...),
			Parent: table.New[T, T](g.tableOpts...),
		},
	}

	if !o.full {
		return w.res, w.traverse(start)
	}
	for _, v := range g.Vertices() {
		if w.done {
			break
		}
		if w.res.Visited(v) {
			continue
		}
		if err := w.traverse(v); err != nil {
			return w.res, err
		}
	}
	return w.res, nil
}

// traverse runs one DFS tree rooted at root.
func (w *dfsWalker[T]) traverse(root T) error {
	w.res.Roots = append(w.res.Roots, root)
	w.stack.Prepend(stackItem[T]{v: root})

	for w.stack.Len() > 0 {
		select {
		case <-w.opts.ctx.Done():
			return w.opts.ctx.Err()
		default:
		}

		item, _ := w.stack.RemoveFirst()
		if w.res.Visited(item.v) {
			continue
		}
		w.res.Depth.Put(item.v, item.depth)
		if item.hasParent {
			w.res.Parent.Put(item.v, item.parent)
		}
		w.res.Order = append(w.res.Order, item.v)

		if err := w.opts.onVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("graph: OnVisit error at %v: %w", item.v, err)
		}
		if w.opts.stopAt != nil && *w.opts.stopAt == item.v {
			w.stack.Clear()
			w.done = true
			return nil
		}
		if w.opts.maxDepth > 0 && item.depth >= w.opts.maxDepth {
			continue
		}

		// push in reverse so the first neighbor is popped first
		nbrs := w.graph.Neighbors(item.v)
		for i := len(nbrs) - 1; i >= 0; i-- {
			if !w.res.Visited(nbrs[i]) {
				w.stack.Prepend(stackItem[T]{v: nbrs[i], depth: item.depth + 1, parent: item.v, hasParent: true})
			}
		}
	}
	return nil
}

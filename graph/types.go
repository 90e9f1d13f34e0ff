// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, graph options and traversal options.

package graph

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/bookgraph/table"
)

// Sentinel errors for graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrLoopNotAllowed indicates an attempt to connect a vertex to itself.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")

	// ErrStartVertexNotFound is returned by BFS/DFS when the start vertex is absent.
	ErrStartVertexNotFound = errors.New("graph: start vertex not found")

	// ErrOptionViolation is returned when a traversal option carries an invalid value.
	ErrOptionViolation = errors.New("graph: invalid option supplied")
)

// Option configures an Undirected graph at construction.
type Option[T comparable] func(*Undirected[T])

// WithOrder makes vertex and neighbor enumeration deterministic by sorting
// with cmp (negative when a sorts before b). Panics on nil.
func WithOrder[T comparable](cmp func(a, b T) int) Option[T] {
	if cmp == nil {
		panic("graph: WithOrder(nil)")
	}
	return func(g *Undirected[T]) { g.cmp = cmp }
}

// WithTableOptions forwards options to the adjacency table and to every
// neighbor set the graph allocates.
func WithTableOptions[T comparable](opts ...table.Option) Option[T] {
	return func(g *Undirected[T]) { g.tableOpts = append(g.tableOpts, opts...) }
}

// TraversalOption configures BFS and DFS.
type TraversalOption[T comparable] func(*traversalOptions[T])

// traversalOptions holds hooks and limits shared by BFS and DFS.
type traversalOptions[T comparable] struct {
	ctx      context.Context
	onVisit  func(v T, depth int) error
	maxDepth int
	stopAt   *T
	full     bool
	err      error
}

func defaultTraversalOptions[T comparable]() traversalOptions[T] {
	return traversalOptions[T]{
		ctx:     context.Background(),
		onVisit: func(T, int) error { return nil },
	}
}

// WithContext sets a context checked once per dequeued/popped vertex.
func WithContext[T comparable](ctx context.Context) TraversalOption[T] {
	return func(o *traversalOptions[T]) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithOnVisit registers a hook run when a vertex is visited.
// A returned error aborts the traversal.
func WithOnVisit[T comparable](fn func(v T, depth int) error) TraversalOption[T] {
	return func(o *traversalOptions[T]) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// WithMaxDepth stops expansion beyond depth d (d == 0 means no limit).
// A negative d surfaces as ErrOptionViolation.
func WithMaxDepth[T comparable](d int) TraversalOption[T] {
	return func(o *traversalOptions[T]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.maxDepth = d
	}
}

// WithStopAt ends the traversal as soon as target is visited.
func WithStopAt[T comparable](target T) TraversalOption[T] {
	return func(o *traversalOptions[T]) { o.stopAt = &target }
}

// WithFullTraversal makes DFS restart from every unvisited vertex,
// covering all components. BFS ignores it.
func WithFullTraversal[T comparable]() TraversalOption[T] {
	return func(o *traversalOptions[T]) { o.full = true }
}

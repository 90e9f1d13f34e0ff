// SPDX-License-Identifier: MIT
//
// File: undirected.go
// Role: Vertex and edge lifecycle, adjacency queries.
//
// Invariants:
//   - adj has an entry (possibly empty set) for every known vertex.
//   - v ∈ adj[u] ⇔ u ∈ adj[v]; u ∉ adj[u].
//   - edges == Σ|adj[v]| / 2.

package graph

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/bookgraph/table"
)

// Undirected is an unweighted, undirected simple graph over vertices of type T.
// Construct with New.
type Undirected[T comparable] struct {
	adj       *table.Table[T, *table.Set[T]]
	edges     int
	cmp       func(a, b T) int
	tableOpts []table.Option
}

// New returns an empty graph.
// Complexity: O(1) plus the adjacency table's bucket allocation.
func New[T comparable](opts ...Option[T]) *Undirected[T] {
	g := &Undirected[T]{}
	for _, opt := range opts {
		opt(g)
	}
	g.adj = table.New[T, *table.Set[T]](g.tableOpts...)

	return g
}

// AddVertex ensures v has an adjacency set. Idempotent.
// Complexity: O(chain length).
func (g *Undirected[T]) AddVertex(v T) {
	if g.adj.ContainsKey(v) {
		return
	}
	g.adj.Put(v, table.NewSet[T](g.tableOpts...))
}

// HasVertex reports whether v is known.
func (g *Undirected[T]) HasVertex(v T) bool { return g.adj.ContainsKey(v) }

// AddEdge connects u and v, creating missing endpoints first. Adding an
// existing edge is a no-op. Self-loops are rejected with ErrLoopNotAllowed.
func (g *Undirected[T]) AddEdge(u, v T) error {
	if u == v {
		return fmt.Errorf("%w: %v", ErrLoopNotAllowed, u)
	}
	g.AddVertex(u)
	g.AddVertex(v)

	nu, _ := g.adj.Get(u)
	nv, _ := g.adj.Get(v)
	if nu.Add(v) {
		nv.Add(u)
		g.edges++
	}

	return nil
}

// HasEdge reports whether u and v are adjacent.
func (g *Undirected[T]) HasEdge(u, v T) bool {
	nu, ok := g.adj.Get(u)
	return ok && nu.Has(v)
}

// RemoveEdge disconnects u and v on both sides.
func (g *Undirected[T]) RemoveEdge(u, v T) error {
	nu, ok := g.adj.Get(u)
	if !ok {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, u)
	}
	nv, ok := g.adj.Get(v)
	if !ok {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}
	if !nu.Remove(v) {
		return fmt.Errorf("%w: %v–%v", ErrEdgeNotFound, u, v)
	}
	nv.Remove(u)
	g.edges--

	return nil
}

// RemoveVertex deletes v and every incident edge.
// Complexity: O(deg(v) · chain length).
func (g *Undirected[T]) RemoveVertex(v T) error {
	nv, ok := g.adj.Get(v)
	if !ok {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}
	for u := range nv.All() {
		if nu, ok := g.adj.Get(u); ok {
			nu.Remove(v)
		}
		g.edges--
	}
	g.adj.Remove(v)

	return nil
}

// Adjacent returns v's live neighbor set. The boolean is false for an
// unknown vertex. The set must not be mutated by callers.
func (g *Undirected[T]) Adjacent(v T) (*table.Set[T], bool) {
	return g.adj.Get(v)
}

// Neighbors returns a snapshot of v's neighbors; empty for an unknown vertex.
// Sorted when the graph was built WithOrder.
func (g *Undirected[T]) Neighbors(v T) []T {
	nv, ok := g.adj.Get(v)
	if !ok {
		return []T{}
	}
	return g.ordered(nv.Items())
}

// Degree returns the number of neighbors of v (0 for an unknown vertex).
func (g *Undirected[T]) Degree(v T) int {
	if nv, ok := g.adj.Get(v); ok {
		return nv.Len()
	}
	return 0
}

// Vertices returns every vertex; sorted when the graph was built WithOrder.
func (g *Undirected[T]) Vertices() []T {
	return g.ordered(g.adj.Keys())
}

// VertexCount returns |V|.
func (g *Undirected[T]) VertexCount() int { return g.adj.Len() }

// EdgeCount returns |E| (each undirected edge counted once).
func (g *Undirected[T]) EdgeCount() int { return g.edges }

// Clear removes all vertices and edges, keeping options.
func (g *Undirected[T]) Clear() {
	g.adj.Clear()
	g.edges = 0
}

// ordered sorts vs in place when a comparator is configured.
func (g *Undirected[T]) ordered(vs []T) []T {
	if g.cmp != nil {
		slices.SortFunc(vs, g.cmp)
	}
	return vs
}

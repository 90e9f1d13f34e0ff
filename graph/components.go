// SPDX-License-Identifier: MIT

package graph

// ConnectedComponents partitions the vertices into maximal sets of mutually
// reachable vertices. It iterates Vertices() and starts a depth-first walk from
// each vertex not yet visited; every finished walk yields one component.
//
// Each component lists its vertices in DFS discovery order, starting with its
// root; with WithOrder, both the component list and its members are
// deterministic.
//
// Time:   O(V+E) table operations.
// Memory: O(V) for the visited table and output.
func (g *Undirected[T]) ConnectedComponents() [][]T {
	res, err := g.DFS(*new(T), WithFullTraversal[T]())
	if err != nil {
		// full traversal without hooks or context cannot fail
		return [][]T{}
	}

	comps := make([][]T, 0, len(res.Roots))
	var cur []T
	for _, v := range res.Order {
		if _, hasParent := res.Parent.Get(v); !hasParent && cur != nil {
			comps = append(comps, cur)
			cur = nil
		}
		cur = append(cur, v)
	}
	if cur != nil {
		comps = append(comps, cur)
	}
	return comps
}

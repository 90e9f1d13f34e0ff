// Package graph provides Undirected, a generic, unweighted, undirected graph
// whose adjacency is a table.Table mapping each vertex to a table.Set of its
// neighbors, together with the traversals built on it.
//
// What it offers:
//
//   - Vertex/edge lifecycle: AddVertex (idempotent), AddEdge (auto-creates
//     endpoints, mirrors the edge), RemoveVertex, RemoveEdge.
//   - Queries: HasVertex, HasEdge, Adjacent, Neighbors, Degree, Vertices,
//     VertexCount, EdgeCount.
//   - Breadth-first search with hooks, depth limit and early stop; ShortestPath
//     (fewest hops) is BFS that stops once the target is dequeued.
//   - Depth-first search (single source or full forest) on an explicit stack.
//   - ConnectedComponents: a partition of Vertices() into maximal reachable sets.
//
// Invariants:
//
//	edge(u,v) exists ⇔ edge(v,u) exists   (symmetry)
//	u ∉ Adjacent(u)                         (no self-loops)
//	every vertex belongs to exactly one component
//
// Ordering:
//
// Without WithOrder, Vertices, Neighbors and BFS frontier expansion follow the
// adjacency table's bucket order, which is unspecified. Among several
// shortest paths, which one ShortestPath returns is then unspecified too; only
// its length is guaranteed. WithOrder(cmp) sorts vertices and neighbors with
// cmp, which makes every traversal, path and component listing
// deterministic.
//
// Failure policy:
//
// Lookups of unknown vertices answer "nothing" (empty neighbor slice, empty
// path) rather than failing. Mutations that reference missing vertices or
// edges return ErrVertexNotFound / ErrEdgeNotFound.
//
// A graph is not safe for concurrent mutation; callers serialize access.
//
// Quick example:
//
//	g := graph.New[string]()
//	_ = g.AddEdge("A", "B")
//	_ = g.AddEdge("B", "C")
//	g.AddVertex("D")
//	g.ShortestPath("A", "C")    // [A B C]
//	g.ShortestPath("A", "D")    // []
//	g.ConnectedComponents()     // [[A B C] [D]] (component order unspecified)
package graph

// SPDX-License-Identifier: MIT
//
// File: network.go
// Role: Network, the caller-held context pairing a catalog with its current
//       affinity graph, plus the social queries exposed to outer layers.
// Policy:
//   - Queries by username return empty results for unknown readers.
//   - Results are ordered deterministically (username as final tiebreak).

package affinity

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/bookgraph/graph"
	"github.com/katalvlaran/bookgraph/library"
	"github.com/katalvlaran/bookgraph/sequence"
	"github.com/katalvlaran/bookgraph/table"
)

// Network is the affinity graph of one catalog.
type Network struct {
	cat     *library.Catalog
	builder *Builder
	g       *graph.Undirected[*library.Reader]
	last    BuildReport
}

// NewNetwork builds the initial graph of cat with builder.
func NewNetwork(cat *library.Catalog, builder *Builder) *Network {
	n := &Network{cat: cat, builder: builder}
	n.Rebuild()
	return n
}

// Rebuild discards the current graph and recomputes it from the catalog.
func (n *Network) Rebuild() BuildReport {
	n.g, n.last = n.builder.Build(n.cat)
	return n.last
}

// Graph returns the current affinity graph.
func (n *Network) Graph() *graph.Undirected[*library.Reader] { return n.g }

// Catalog returns the catalog the graph was built from.
func (n *Network) Catalog() *library.Catalog { return n.cat }

// LastReport returns the report of the most recent build.
func (n *Network) LastReport() BuildReport { return n.last }

// Neighbors returns the readers adjacent to username, sorted by username.
func (n *Network) Neighbors(username string) []*library.Reader {
	r, ok := n.cat.Reader(username)
	if !ok {
		return []*library.Reader{}
	}
	return n.g.Neighbors(r)
}

// ShortestPath returns the fewest-hop chain of readers from a to b, both
// ends included. It is empty when either username is unknown or no chain exists.
func (n *Network) ShortestPath(a, b string) []*library.Reader {
	ra, okA := n.cat.Reader(a)
	rb, okB := n.cat.Reader(b)
	if !okA || !okB {
		return []*library.Reader{}
	}
	return n.g.ShortestPath(ra, rb)
}

// ConnectedComponents returns the affinity clusters. Each cluster lists its
// readers in traversal order from its smallest username.
func (n *Network) ConnectedComponents() [][]*library.Reader {
	return n.g.ConnectedComponents()
}

// Suggestion is a two-hop reader with the number of friends in common.
type Suggestion struct {
	Reader *library.Reader
	Mutual int
}

// SuggestedFriendsWithCounts returns every reader two hops from username
// that is neither username itself nor a direct neighbor, ranked by mutual
// neighbor count (descending) then username.
func (n *Network) SuggestedFriendsWithCounts(username string) []Suggestion {
	r, ok := n.cat.Reader(username)
	if !ok {
		return []Suggestion{}
	}
	direct, _ := n.g.Adjacent(r)

	mutual := table.New[*library.Reader, int]()
	for _, friend := range n.g.Neighbors(r) {
		for _, fof := range n.g.Neighbors(friend) {
			if fof == r || direct.Has(fof) {
				continue
			}
			c, _ := mutual.Get(fof)
			mutual.Put(fof, c+1)
		}
	}

	out := make([]Suggestion, 0, mutual.Len())
	for fof, c := range mutual.All() {
		out = append(out, Suggestion{Reader: fof, Mutual: c})
	}
	slices.SortFunc(out, func(a, b Suggestion) int {
		if c := cmp.Compare(b.Mutual, a.Mutual); c != 0 {
			return c
		}
		return library.CompareReaders(a.Reader, b.Reader)
	})
	return out
}

// SuggestedFriends is SuggestedFriendsWithCounts without the counts.
func (n *Network) SuggestedFriends(username string) []*library.Reader {
	ss := n.SuggestedFriendsWithCounts(username)
	out := make([]*library.Reader, len(ss))
	for i, s := range ss {
		out[i] = s.Reader
	}
	return out
}

// rankedReader orders readers by degree in a sequence.PriorityQueue.
type rankedReader struct {
	reader *library.Reader
	degree int
}

func (r rankedReader) Priority() int { return r.degree }

// MostConnected returns up to topN readers by descending degree. Readers of
// equal degree keep username order. topN <= 0 yields an empty slice.
func (n *Network) MostConnected(topN int) []*library.Reader {
	if topN <= 0 {
		return []*library.Reader{}
	}
	q := sequence.NewPriorityQueue[rankedReader]()
	for _, r := range n.g.Vertices() {
		q.Push(rankedReader{reader: r, degree: n.g.Degree(r)})
	}

	out := make([]*library.Reader, 0, min(topN, q.Len()))
	for len(out) < topN {
		rr, ok := q.Pop()
		if !ok {
			break
		}
		out = append(out, rr.reader)
	}
	return out
}

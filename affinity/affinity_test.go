// SPDX-License-Identifier: MIT

package affinity_test

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bookgraph/affinity"
	"github.com/katalvlaran/bookgraph/library"
	"github.com/katalvlaran/bookgraph/metrics"
)

// fixture:
//
//	ana   b1:5 b2:4 b3:5
//	bruno b1:4 b2:4 b3:4   agrees with ana on 3 books
//	carla b1:5 b2:5 b3:2   agrees with ana on 2, with bruno on 2
//	diego b4:3
//	eva   (no ratings)
//
// connections: bruno–carla, diego–ghost, ana–bruno
func fixture(t *testing.T) *library.Catalog {
	t.Helper()
	c := library.NewCatalog()
	for _, u := range []string{"eva", "diego", "carla", "bruno", "ana"} {
		_, err := c.AddReader(library.ReaderInfo{Username: u})
		require.NoError(t, err)
	}
	for _, id := range []string{"b1", "b2", "b3", "b4"} {
		_, err := c.AddBook(library.BookInfo{ID: id, Title: "Book " + id})
		require.NoError(t, err)
	}
	ratings := []struct {
		user, book string
		stars      int
	}{
		{"ana", "b1", 5}, {"ana", "b2", 4}, {"ana", "b3", 5},
		{"bruno", "b1", 4}, {"bruno", "b2", 4}, {"bruno", "b3", 4},
		{"carla", "b1", 5}, {"carla", "b2", 5}, {"carla", "b3", 2},
		{"diego", "b4", 3},
	}
	for _, r := range ratings {
		_, err := c.Rate(r.user, r.book, r.stars, "")
		require.NoError(t, err)
	}
	require.NoError(t, c.Connect("bruno", "carla"))
	require.NoError(t, c.Connect("diego", "ghost"))
	require.NoError(t, c.Connect("ana", "bruno"))
	return c
}

func names(rs []*library.Reader) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Username
	}
	return out
}

func reader(t *testing.T, c *library.Catalog, u string) *library.Reader {
	t.Helper()
	r, ok := c.Reader(u)
	require.True(t, ok, u)
	return r
}

func TestAgreeingBooks(t *testing.T) {
	c := fixture(t)
	ana, bruno, carla := reader(t, c, "ana"), reader(t, c, "bruno"), reader(t, c, "carla")

	assert.Equal(t, 3, affinity.AgreeingBooks(ana, bruno, 1))
	assert.Equal(t, 3, affinity.AgreeingBooks(bruno, ana, 1), "symmetric")
	assert.Equal(t, 2, affinity.AgreeingBooks(ana, carla, 1))
	assert.Equal(t, 3, affinity.AgreeingBooks(ana, carla, 3))
	assert.Equal(t, 1, affinity.AgreeingBooks(ana, carla, 0))
	assert.Zero(t, affinity.AgreeingBooks(ana, reader(t, c, "eva"), 4))
}

// TestBuild_Threshold checks that three agreeing books create an edge and two do not.
func TestBuild_Threshold(t *testing.T) {
	c := fixture(t)
	b, err := affinity.NewBuilder()
	require.NoError(t, err)

	g, rep := b.Build(c)
	ana, bruno, carla := reader(t, c, "ana"), reader(t, c, "bruno"), reader(t, c, "carla")

	assert.True(t, g.HasEdge(ana, bruno))
	assert.False(t, g.HasEdge(ana, carla), "two agreeing books are not enough")
	assert.True(t, g.HasEdge(carla, bruno), "declared connection")

	assert.Equal(t, 5, rep.Readers)
	assert.Equal(t, 10, rep.PairsCompared)
	assert.Equal(t, 1, rep.SimilarityEdges)
	assert.Equal(t, 1, rep.ConnectionEdges)
	assert.Equal(t, 1, rep.RedundantConnections)
	assert.Equal(t, 1, rep.SkippedConnections)
	assert.Equal(t, 2, rep.Edges())
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 5, g.VertexCount(), "isolated readers are vertices too")

	require.Len(t, rep.Issues, 1)
	assert.Equal(t, 2, rep.Issues[0].Row)
	assert.Equal(t, library.IssueUnresolved, rep.Issues[0].Kind)
	assert.ErrorIs(t, rep.Issues[0], library.ErrReaderNotFound)
	assert.Contains(t, rep.Issues[0].Error(), "ghost")
}

func TestBuild_RelaxedRule(t *testing.T) {
	c := fixture(t)
	b, err := affinity.NewBuilder(affinity.WithMinCommonBooks(2))
	require.NoError(t, err)

	g, rep := b.Build(c)
	assert.Equal(t, 3, rep.SimilarityEdges)
	assert.Zero(t, rep.ConnectionEdges)
	assert.Equal(t, 2, rep.RedundantConnections)
	assert.True(t, g.HasEdge(reader(t, c, "ana"), reader(t, c, "carla")))
}

func TestBuild_Symmetry(t *testing.T) {
	c := fixture(t)
	b, err := affinity.NewBuilder()
	require.NoError(t, err)
	g, _ := b.Build(c)

	for _, u := range g.Vertices() {
		for _, v := range g.Neighbors(u) {
			assert.True(t, g.HasEdge(v, u), "%s–%s", u.Username, v.Username)
		}
	}
}

func TestNewBuilder_Config(t *testing.T) {
	_, err := affinity.NewBuilder(affinity.WithConfig(affinity.Config{MinCommonBooks: 0, MaxStarDelta: 1}))
	assert.ErrorIs(t, err, affinity.ErrInvalidConfig)
	_, err = affinity.NewBuilder(affinity.WithConfig(affinity.Config{MinCommonBooks: 3, MaxStarDelta: 7}))
	assert.ErrorIs(t, err, affinity.ErrInvalidConfig)

	b, err := affinity.NewBuilder(affinity.WithMaxStarDelta(0))
	require.NoError(t, err)
	assert.Equal(t, affinity.Config{MinCommonBooks: 3, MaxStarDelta: 0}, b.Config())

	assert.Panics(t, func() { affinity.WithMinCommonBooks(0) })
	assert.Panics(t, func() { affinity.WithMaxStarDelta(-1) })
	assert.Panics(t, func() { affinity.WithMaxStarDelta(5) })
}

func TestBuild_LogsAndMetrics(t *testing.T) {
	var logs bytes.Buffer
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	b, err := affinity.NewBuilder(affinity.WithLogger(zerolog.New(&logs)), affinity.WithMetrics(m))
	require.NoError(t, err)

	b.Build(fixture(t))

	out := logs.String()
	assert.True(t, strings.Contains(out, `"component":"affinity"`))
	assert.True(t, strings.Contains(out, `"message":"connection skipped"`))
	assert.True(t, strings.Contains(out, `"message":"affinity graph built"`))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BuildsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Edges.WithLabelValues(metrics.EdgeSimilarity)))
}

func newNetwork(t *testing.T) *affinity.Network {
	t.Helper()
	b, err := affinity.NewBuilder()
	require.NoError(t, err)
	return affinity.NewNetwork(fixture(t), b)
}

func TestNetwork_ShortestPath(t *testing.T) {
	n := newNetwork(t)

	assert.Equal(t, []string{"ana", "bruno", "carla"}, names(n.ShortestPath("ana", "carla")))
	assert.Equal(t, []string{"carla", "bruno", "ana"}, names(n.ShortestPath("carla", "ana")))
	assert.Equal(t, []string{"ana"}, names(n.ShortestPath("ana", "ana")))
	assert.Empty(t, n.ShortestPath("ana", "diego"))
	p := n.ShortestPath("ana", "ghost")
	assert.NotNil(t, p)
	assert.Empty(t, p)
}

func TestNetwork_ConnectedComponents(t *testing.T) {
	n := newNetwork(t)

	var got [][]string
	seen := 0
	for _, comp := range n.ConnectedComponents() {
		ns := names(comp)
		slices.Sort(ns)
		got = append(got, ns)
		seen += len(ns)
	}
	assert.Equal(t, [][]string{{"ana", "bruno", "carla"}, {"diego"}, {"eva"}}, got)
	assert.Equal(t, n.Graph().VertexCount(), seen, "partition covers every reader once")
}

func TestNetwork_SuggestedFriends(t *testing.T) {
	n := newNetwork(t)

	assert.Equal(t, []string{"carla"}, names(n.SuggestedFriends("ana")))
	assert.Equal(t, []string{"ana"}, names(n.SuggestedFriends("carla")))
	assert.Empty(t, n.SuggestedFriends("bruno"), "all two-hop readers are direct neighbors or self")
	assert.Empty(t, n.SuggestedFriends("ghost"))

	s := n.SuggestedFriendsWithCounts("ana")
	require.Len(t, s, 1)
	assert.Equal(t, 1, s[0].Mutual)
}

func TestNetwork_SuggestedFriendsRanking(t *testing.T) {
	c := library.NewCatalog()
	for _, u := range []string{"hub", "f1", "f2", "x", "y"} {
		_, err := c.AddReader(library.ReaderInfo{Username: u})
		require.NoError(t, err)
	}
	// hub–f1, hub–f2; y knows f1 and f2, x only f2
	for _, p := range [][2]string{{"hub", "f1"}, {"hub", "f2"}, {"f1", "y"}, {"f2", "y"}, {"f2", "x"}} {
		require.NoError(t, c.Connect(p[0], p[1]))
	}
	b, err := affinity.NewBuilder()
	require.NoError(t, err)
	n := affinity.NewNetwork(c, b)

	s := n.SuggestedFriendsWithCounts("hub")
	require.Len(t, s, 2)
	assert.Equal(t, "y", s[0].Reader.Username)
	assert.Equal(t, 2, s[0].Mutual)
	assert.Equal(t, "x", s[1].Reader.Username)
}

func TestNetwork_MostConnected(t *testing.T) {
	n := newNetwork(t)

	assert.Equal(t, []string{"bruno", "ana"}, names(n.MostConnected(2)))
	assert.Equal(t, []string{"bruno", "ana", "carla", "diego", "eva"}, names(n.MostConnected(10)))
	assert.Empty(t, n.MostConnected(0))
	assert.Empty(t, n.MostConnected(-3))
}

func TestNetwork_Rebuild(t *testing.T) {
	n := newNetwork(t)
	before := n.Graph()
	assert.Equal(t, []string{"bruno"}, names(n.Neighbors("ana")))
	assert.Empty(t, n.Neighbors("ghost"))

	require.NoError(t, n.Catalog().Connect("diego", "eva"))
	assert.Empty(t, n.Neighbors("diego"), "graph is not maintained incrementally")

	rep := n.Rebuild()
	assert.Equal(t, 2, rep.ConnectionEdges)
	assert.Equal(t, rep, n.LastReport())
	assert.NotSame(t, before, n.Graph())
	assert.Equal(t, []string{"eva"}, names(n.Neighbors("diego")))
	assert.Len(t, n.ConnectedComponents(), 2)
}

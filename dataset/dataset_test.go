// SPDX-License-Identifier: MIT

package dataset_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/katalvlaran/bookgraph/affinity"
	"github.com/katalvlaran/bookgraph/dataset"
	"github.com/katalvlaran/bookgraph/library"
)

func TestLoad_Apply(t *testing.T) {
	d, err := dataset.Load("testdata/library.yaml")
	require.NoError(t, err)
	assert.Len(t, d.Readers, 4)
	assert.Equal(t, "1965", d.Books[0].Year, "numbers stay textual")

	cat := library.NewCatalog(library.WithPasswordCost(bcrypt.MinCost))
	sum := d.Apply(cat)
	require.Len(t, sum.Reports, 5)

	want := []struct {
		batch              string
		processed, skipped int
	}{
		{"readers", 3, 1},
		{"books", 3, 1},
		{"loans", 1, 1},
		{"ratings", 6, 1},
		{"connections", 2, 1},
	}
	for i, w := range want {
		assert.Equal(t, w.batch, sum.Reports[i].Batch)
		assert.Equal(t, w.processed, sum.Reports[i].Processed, w.batch)
		assert.Equal(t, w.skipped, sum.Reports[i].Skipped, w.batch)
	}
	total := sum.Total()
	assert.Equal(t, 15, total.Processed)
	assert.Equal(t, 5, total.Skipped)
	assert.Len(t, total.Issues, 5)

	ana, ok := cat.Reader("ana")
	require.True(t, ok)
	assert.True(t, ana.CheckPassword("s3cret"))
	emma, _ := cat.Book("b3")
	assert.Equal(t, library.StatusReserved, emma.Status)

	b, err := affinity.NewBuilder()
	require.NoError(t, err)
	n := affinity.NewNetwork(cat, b)
	rep := n.LastReport()
	assert.Equal(t, 1, rep.SimilarityEdges, "ana and bruno agree on three books")
	assert.Equal(t, 1, rep.ConnectionEdges)
	assert.Equal(t, 1, rep.SkippedConnections)
	assert.Len(t, n.ShortestPath("ana", "carla"), 3)
}

func TestDecode(t *testing.T) {
	d, err := dataset.Decode(strings.NewReader(`{"readers": [{"username": "x", "name": "X"}], "connections": [["x", "y"]]}`))
	require.NoError(t, err, "JSON is YAML")
	assert.Equal(t, "x", d.Readers[0].Username)
	assert.Equal(t, [][]string{{"x", "y"}}, d.Connections)

	d, err = dataset.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, d.Books)

	_, err = dataset.Decode(strings.NewReader("members:\n  - {username: x}\n"))
	assert.ErrorIs(t, err, dataset.ErrDecode)

	_, err = dataset.Decode(strings.NewReader("readers: [unclosed"))
	assert.ErrorIs(t, err, dataset.ErrDecode)

	_, err = dataset.Load("testdata/missing.yaml")
	assert.Error(t, err)
}

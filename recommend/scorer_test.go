// SPDX-License-Identifier: MIT

package recommend_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bookgraph/library"
	"github.com/katalvlaran/bookgraph/recommend"
)

func target(t *testing.T, c *library.Catalog, user string, neighbors ...string) recommend.Target {
	t.Helper()
	r, ok := c.Reader(user)
	require.True(t, ok)
	tg := recommend.Target{Reader: r, Catalog: c}
	for _, n := range neighbors {
		nr, ok := c.Reader(n)
		require.True(t, ok)
		tg.Neighbors = append(tg.Neighbors, nr)
	}
	return tg
}

func TestCollaborative_RunningAverage(t *testing.T) {
	c := potterCatalog(t)
	for _, u := range []string{"n1", "n2"} {
		_, err := c.AddReader(library.ReaderInfo{Username: u})
		require.NoError(t, err)
	}
	rate := func(u, b string, s int) {
		_, err := c.Rate(u, b, s, "")
		require.NoError(t, err)
	}
	rate("n1", "1984", 5)
	rate("n1", "hp2", 3) // below the liked threshold
	rate("n2", "1984", 4)
	rate("n2", "hp1", 5) // target already borrowed it

	got, err := recommend.NewCollaborative(4).Score(context.Background(), target(t, c, "lector", "n1", "n2"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1984", got[0].Book.ID)
	assert.InDelta(t, 4.5/5, got[0].Score, 1e-9)
	assert.Equal(t, "liked by 2 readers with similar taste", got[0].Reason)

	got, err = recommend.NewCollaborative(4).Score(context.Background(), target(t, c, "lector"))
	require.NoError(t, err)
	assert.Empty(t, got, "no neighbors, no candidates")
}

func TestContentBased_Normalization(t *testing.T) {
	c := library.NewCatalog()
	_, err := c.AddReader(library.ReaderInfo{Username: "r"})
	require.NoError(t, err)
	for _, b := range []library.BookInfo{
		{ID: "a1", Title: "A1", Author: "Ann", Year: 2001, Category: "Mystery"},
		{ID: "a2", Title: "A2", Author: "Ann", Year: 2002, Category: "Mystery"},
		{ID: "b1", Title: "B1", Author: "Bob", Year: 2001, Category: "Poetry"},
		{ID: "c1", Title: "C1", Author: "Cid", Year: 1990, Category: "Mystery"},
		{ID: "d1", Title: "D1", Author: "Dee", Year: 1990, Category: "Travel"},
		{ID: "e1", Title: "E1", Author: "Eve", Year: 1980, Category: "Travel"},
	} {
		_, err := c.AddBook(b)
		require.NoError(t, err)
	}
	for _, r := range []struct {
		id    string
		stars int
	}{{"a1", 5}, {"b1", 4}, {"d1", 2}} {
		_, err := c.Rate("r", r.id, r.stars, "")
		require.NoError(t, err)
	}

	cfg := recommend.DefaultConfig()
	got, err := recommend.NewContentBased(cfg.Content, cfg.MinLikedStars).Score(context.Background(), target(t, c, "r"))
	require.NoError(t, err)

	// prefs: author Ann 1, Bob .8; category Mystery 1, Poetry .8; year 2001 1.
	// a2 = .4 + .5 = .9; c1 = .5; e1 = 0 (d1 at 2 stars is not liked)
	require.Len(t, got, 2)
	assert.Equal(t, "a2", got[0].Book.ID)
	assert.InDelta(t, 0.9, got[0].Score, 1e-9)
	assert.Equal(t, "c1", got[1].Book.ID)
	assert.InDelta(t, 0.5, got[1].Score, 1e-9)
	assert.Equal(t, "in Mystery, a category you enjoy", got[1].Reason)
}

func TestContentBased_NoLikedRatings(t *testing.T) {
	c := potterCatalog(t)
	got, err := recommend.NewContentBased(recommend.DefaultConfig().Content, 4).Score(context.Background(), target(t, c, "amiga"))
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestContentBased_UnknownAttributes(t *testing.T) {
	c := library.NewCatalog()
	_, err := c.AddReader(library.ReaderInfo{Username: "r"})
	require.NoError(t, err)
	for _, b := range []library.BookInfo{
		{ID: "a", Title: "Untitled A"},
		{ID: "b", Title: "Untitled B"},
		{ID: "c", Title: "Untitled C"},
		{ID: "p1", Title: "Verses", Category: "Poetry"},
		{ID: "p2", Title: "More Verses", Category: "Poetry"},
	} {
		_, err := c.AddBook(b)
		require.NoError(t, err)
	}
	cfg := recommend.DefaultConfig()
	scorer := recommend.NewContentBased(cfg.Content, cfg.MinLikedStars)

	_, err = c.Rate("r", "a", 5, "")
	require.NoError(t, err)
	got, err := scorer.Score(context.Background(), target(t, c, "r"))
	require.NoError(t, err)
	assert.Empty(t, got, "books without author or category share no taste")

	_, err = c.Rate("r", "p1", 5, "")
	require.NoError(t, err)
	got, err = scorer.Score(context.Background(), target(t, c, "r"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "p2", got[0].Book.ID)
	assert.InDelta(t, 0.5, got[0].Score, 1e-9)
	assert.Equal(t, "in Poetry, a category you enjoy", got[0].Reason)
}

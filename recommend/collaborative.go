// SPDX-License-Identifier: MIT

package recommend

import (
	"context"
	"fmt"

	"github.com/katalvlaran/bookgraph/library"
	"github.com/katalvlaran/bookgraph/sequence"
	"github.com/katalvlaran/bookgraph/table"
)

// Collaborative recommends books liked by the target's direct affinity neighbors.
//
//	score(book) = mean(stars of neighbors' liked ratings of book) / 5
type Collaborative struct {
	minLiked int
}

// NewCollaborative returns a collaborative scorer treating ratings of at
// least minLiked stars as liked.
func NewCollaborative(minLiked int) *Collaborative {
	return &Collaborative{minLiked: minLiked}
}

// Name implements Scorer.
func (c *Collaborative) Name() string { return NameCollaborative }

// tally is the running average for one book.
type tally struct {
	avg float64
	n   int
}

// Score implements Scorer. Candidates follow the order in which books are
// first met walking neighbors (as given) and their ratings.
func (c *Collaborative) Score(ctx context.Context, t Target) ([]Candidate, error) {
	tallies := table.New[*library.Book, *tally]()
	order := sequence.New[*library.Book]()

	for _, nb := range t.Neighbors {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for rt := range nb.Ratings().Values() {
			if rt.Stars < c.minLiked || t.Excluded(rt.Book) {
				continue
			}
			tl, ok := tallies.Get(rt.Book)
			if !ok {
				tl = &tally{}
				tallies.Put(rt.Book, tl)
				order.Append(rt.Book)
			}
			tl.n++
			tl.avg += (float64(rt.Stars) - tl.avg) / float64(tl.n)
		}
	}

	out := make([]Candidate, 0, order.Len())
	for b := range order.Values() {
		tl, _ := tallies.Get(b)
		out = append(out, Candidate{
			Book:   b,
			Score:  tl.avg / float64(library.MaxStars),
			Reason: likedBy(tl.n),
		})
	}
	return out, nil
}

func likedBy(n int) string {
	if n == 1 {
		return "liked by 1 reader with similar taste"
	}
	return fmt.Sprintf("liked by %d readers with similar taste", n)
}

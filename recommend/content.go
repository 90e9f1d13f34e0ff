// SPDX-License-Identifier: MIT

package recommend

import (
	"context"
	"fmt"
	"strconv"

	"github.com/katalvlaran/bookgraph/library"
	"github.com/katalvlaran/bookgraph/table"
)

// ContentBased recommends books whose attributes resemble the target's liked books.
//
// The target's ratings of at least MinLikedStars add their stars to a
// preference per author, per category and per year; each preference map is
// then divided by its own maximum. A book scores
//
//	Author·pref(author) + Category·pref(category) + Year·pref(year)
//	  + HighRatingBonus if its average rating >= HighRatingThreshold
//
// capped at 1. Only scores above MinScore become candidates.
type ContentBased struct {
	cfg      ContentConfig
	minLiked int
}

// NewContentBased returns a content-based scorer.
func NewContentBased(cfg ContentConfig, minLiked int) *ContentBased {
	return &ContentBased{cfg: cfg, minLiked: minLiked}
}

// Name implements Scorer.
func (c *ContentBased) Name() string { return NameContent }

// preferences holds normalized attribute weights. Unknown attributes (empty
// author or category, year 0) are never keys.
type preferences struct {
	author   *table.Table[string, float64]
	category *table.Table[string, float64]
	year     *table.Table[int, float64]
}

func (p preferences) empty() bool {
	return p.author.Len() == 0 && p.category.Len() == 0 && p.year.Len() == 0
}

func (c *ContentBased) profile(r *library.Reader) preferences {
	p := preferences{
		author:   table.New[string, float64](),
		category: table.New[string, float64](),
		year:     table.New[int, float64](),
	}
	for rt := range r.Ratings().Values() {
		if rt.Stars < c.minLiked {
			continue
		}
		w := float64(rt.Stars)
		if rt.Book.Author != "" {
			accumulate(p.author, rt.Book.Author, w)
		}
		if rt.Book.Category != "" {
			accumulate(p.category, rt.Book.Category, w)
		}
		if rt.Book.Year != 0 {
			accumulate(p.year, rt.Book.Year, w)
		}
	}
	normalize(p.author)
	normalize(p.category)
	normalize(p.year)
	return p
}

// Score implements Scorer. Candidates follow catalog order (book id).
func (c *ContentBased) Score(ctx context.Context, t Target) ([]Candidate, error) {
	p := c.profile(t.Reader)
	if p.empty() {
		return []Candidate{}, nil
	}

	out := make([]Candidate, 0)
	for _, b := range t.Catalog.Books() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if t.Excluded(b) {
			continue
		}
		pa, _ := p.author.Get(b.Author)
		pc, _ := p.category.Get(b.Category)
		py, _ := p.year.Get(b.Year)

		score := c.cfg.Author*pa + c.cfg.Category*pc + c.cfg.Year*py
		if b.RatingCount() > 0 && b.AverageRating() >= c.cfg.HighRatingThreshold {
			score += c.cfg.HighRatingBonus
		}
		score = min(score, 1.0)
		if score <= c.cfg.MinScore {
			continue
		}
		out = append(out, Candidate{Book: b, Score: score, Reason: contentReason(b, pa, pc, py)})
	}
	return out, nil
}

// contentReason names the attribute that contributed the strongest preference.
func contentReason(b *library.Book, pa, pc, py float64) string {
	switch {
	case pa > 0 && pa >= pc:
		return fmt.Sprintf("by %s, an author you rate highly", b.Author)
	case pc > 0:
		return fmt.Sprintf("in %s, a category you enjoy", b.Category)
	case py > 0:
		return "published in " + strconv.Itoa(b.Year) + ", like books you enjoyed"
	default:
		return "highly rated by other readers"
	}
}

func accumulate[K comparable](t *table.Table[K, float64], k K, w float64) {
	v, _ := t.Get(k)
	t.Put(k, v+w)
}

// normalize divides every value by the maximum; an all-zero map is left as is.
func normalize[K comparable](t *table.Table[K, float64]) {
	highest := 0.0
	for _, v := range t.All() {
		highest = max(highest, v)
	}
	if highest == 0 {
		return
	}
	for _, k := range t.Keys() {
		v, _ := t.Get(k)
		t.Put(k, v/highest)
	}
}

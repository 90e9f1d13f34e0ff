// SPDX-License-Identifier: MIT

package recommend

import (
	"context"
	"errors"

	"github.com/katalvlaran/bookgraph/library"
)

// Sentinel errors.
var (
	ErrInvalidConfig = errors.New("recommend: invalid config")
	ErrNilScorer     = errors.New("recommend: nil scorer")
)

// Scorer names.
const (
	NameCollaborative = "collaborative"
	NameContent       = "content"
)

// Target is the reader a recommendation is computed for, with the context
// every scorer needs.
type Target struct {
	Reader    *library.Reader
	Neighbors []*library.Reader
	Catalog   *library.Catalog
}

// Excluded reports whether b must not be recommended to the target: it was
// borrowed or already rated.
func (t Target) Excluded(b *library.Book) bool {
	if t.Reader.HasBorrowed(b) {
		return true
	}
	_, rated := t.Reader.RatingFor(b)
	return rated
}

// Candidate is one scorer's opinion of a book, Score in [0,1].
type Candidate struct {
	Book   *library.Book
	Score  float64
	Reason string
}

// Scorer produces candidates for a target.
type Scorer interface {
	// Name identifies the scorer in logs, metrics and Recommendation.Sources.
	Name() string

	// Score returns candidates in a deterministic order. An empty result is
	// not an error.
	Score(ctx context.Context, t Target) ([]Candidate, error)
}

// Recommendation is a merged, weighted result.
type Recommendation struct {
	Book    *library.Book
	Score   float64
	Reason  string
	Sources []string
}

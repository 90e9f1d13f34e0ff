// SPDX-License-Identifier: MIT
//
// File: generate.go
// Role: Synthetic dataset generator for demos, benchmarks and load tests.
//
// Model:
//   - Readers and books are split into taste groups; group g owns the books
//     whose index is ≡ g (mod groups) and gives them one category and a small
//     pool of authors.
//   - Each reader rates RatingsPerReader distinct books. With probability
//     Loyalty the book comes from the reader's own group and gets 4–5 stars,
//     otherwise it is drawn from the whole catalog and gets 1–3 stars.
//   - A draw that hits an already rated book moves to the next unrated book
//     of the same pool. A loyal draw into a fully rated group becomes an
//     out-of-group draw, stars included.
//   - Every rated book is also lent to the reader.
//   - Connections are sampled uniformly among unordered reader pairs.
//
// Determinism:
//   - Same options and seed ⇒ byte-identical dataset. Draw order is fixed:
//     readers asc, then ratings per reader, then connections.

package dataset

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Generator defaults.
const (
	DefaultGenReaders          = 50
	DefaultGenBooks            = 200
	DefaultGenGroups           = 5
	DefaultGenRatingsPerReader = 12
	DefaultGenConnections      = 10
	DefaultGenLoyalty          = 0.8
)

// genConfig aggregates all generator knobs.
type genConfig struct {
	readers, books, groups int
	ratingsPerReader       int
	connections            int
	loyalty                float64
	rng                    *rand.Rand
	readerID, bookID       func(int) string
}

// GenOption customizes Generate. Constructors panic on meaningless values.
type GenOption func(*genConfig)

// WithReaders sets the reader count (n ≥ 1).
func WithReaders(n int) GenOption {
	if n < 1 {
		panic("dataset: WithReaders requires n >= 1")
	}
	return func(c *genConfig) { c.readers = n }
}

// WithBooks sets the book count (n ≥ 1).
func WithBooks(n int) GenOption {
	if n < 1 {
		panic("dataset: WithBooks requires n >= 1")
	}
	return func(c *genConfig) { c.books = n }
}

// WithGroups sets the number of taste groups (n ≥ 1).
func WithGroups(n int) GenOption {
	if n < 1 {
		panic("dataset: WithGroups requires n >= 1")
	}
	return func(c *genConfig) { c.groups = n }
}

// WithRatingsPerReader sets how many books each reader rates (k ≥ 0).
// It is capped at the book count when generating.
func WithRatingsPerReader(k int) GenOption {
	if k < 0 {
		panic("dataset: WithRatingsPerReader requires k >= 0")
	}
	return func(c *genConfig) { c.ratingsPerReader = k }
}

// WithConnections sets how many explicit connections to declare (n ≥ 0).
func WithConnections(n int) GenOption {
	if n < 0 {
		panic("dataset: WithConnections requires n >= 0")
	}
	return func(c *genConfig) { c.connections = n }
}

// WithLoyalty sets the probability that a rating stays inside the reader's group.
func WithLoyalty(p float64) GenOption {
	if p < 0 || p > 1 {
		panic("dataset: WithLoyalty requires p in [0,1]")
	}
	return func(c *genConfig) { c.loyalty = p }
}

// WithSeed makes generation reproducible.
func WithSeed(seed int64) GenOption {
	return func(c *genConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithIDScheme overrides the reader and book id functions (index → id).
func WithIDScheme(readerID, bookID func(int) string) GenOption {
	if readerID == nil || bookID == nil {
		panic("dataset: WithIDScheme(nil)")
	}
	return func(c *genConfig) { c.readerID, c.bookID = readerID, bookID }
}

func defaultReaderID(i int) string { return fmt.Sprintf("reader%03d", i) }
func defaultBookID(i int) string   { return fmt.Sprintf("book%04d", i) }

// Generate returns a synthetic dataset. Without WithSeed it uses seed 1.
// Complexity: O(R·K) for ratings, plus O(C) expected for connections.
func Generate(opts ...GenOption) *Dataset {
	cfg := genConfig{
		readers:          DefaultGenReaders,
		books:            DefaultGenBooks,
		groups:           DefaultGenGroups,
		ratingsPerReader: DefaultGenRatingsPerReader,
		connections:      DefaultGenConnections,
		loyalty:          DefaultGenLoyalty,
		readerID:         defaultReaderID,
		bookID:           defaultBookID,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(1))
	}
	cfg.groups = min(cfg.groups, cfg.books)
	cfg.ratingsPerReader = min(cfg.ratingsPerReader, cfg.books)

	d := &Dataset{}
	for i := 0; i < cfg.books; i++ {
		g := i % cfg.groups
		d.Books = append(d.Books, BookRecord{
			ID:       cfg.bookID(i),
			Title:    fmt.Sprintf("Volume %d", i),
			Author:   fmt.Sprintf("Author %d-%d", g, (i/cfg.groups)%3),
			Year:     strconv.Itoa(1950 + (i*7)%70),
			Category: fmt.Sprintf("Genre %d", g),
		})
	}

	for r := 0; r < cfg.readers; r++ {
		u := cfg.readerID(r)
		d.Readers = append(d.Readers, ReaderRecord{Username: u, Name: fmt.Sprintf("Reader %d", r)})
		group := r % cfg.groups
		rated := make(map[int]bool, cfg.ratingsPerReader)
		for len(rated) < cfg.ratingsPerReader {
			b, stars := cfg.pick(rated, group)
			rated[b] = true
			id := cfg.bookID(b)
			d.Loans = append(d.Loans, LoanRecord{Reader: u, Book: id})
			d.Ratings = append(d.Ratings, RatingRecord{Reader: u, Book: id, Stars: strconv.Itoa(stars)})
		}
	}

	if cfg.readers > 1 {
		for i := 0; i < cfg.connections; i++ {
			a := cfg.rng.Intn(cfg.readers)
			b := cfg.rng.Intn(cfg.readers - 1)
			if b >= a {
				b++
			}
			d.Connections = append(d.Connections, []string{cfg.readerID(a), cfg.readerID(b)})
		}
	}
	return d
}

// groupSize returns how many book indices are ≡ group (mod groups).
func (c *genConfig) groupSize(group int) int {
	return (c.books - group + c.groups - 1) / c.groups
}

// pick draws an unrated book index and its stars for a reader of group.
// Callers guarantee at least one unrated book remains.
func (c *genConfig) pick(rated map[int]bool, group int) (book, stars int) {
	if c.rng.Float64() < c.loyalty {
		size := c.groupSize(group)
		i := c.rng.Intn(size)
		stars = 4 + c.rng.Intn(2)
		for range size {
			if b := group + c.groups*i; !rated[b] {
				return b, stars
			}
			i = (i + 1) % size
		}
	}
	book = c.rng.Intn(c.books)
	for rated[book] {
		book = (book + 1) % c.books
	}
	return book, 1 + c.rng.Intn(3)
}

// Encode writes d as YAML.
func (d *Dataset) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("dataset: encode: %w", err)
	}
	return enc.Close()
}

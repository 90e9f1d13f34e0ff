// SPDX-License-Identifier: MIT
//
// File: builder.go
// Role: Builder turns a catalog snapshot into an undirected reader graph.
// Policy:
//   - Every build starts from an empty graph; there is no incremental path.
//   - Similarity edges are added before explicit connection edges.
//   - Unresolvable connections are reported in BuildReport, never fatal.

package affinity

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/bookgraph/graph"
	"github.com/katalvlaran/bookgraph/library"
	"github.com/katalvlaran/bookgraph/metrics"
)

// Config holds the similarity rule.
type Config struct {
	// MinCommonBooks is how many agreeing books two readers need for an edge.
	MinCommonBooks int `koanf:"min_common_books" validate:"gte=1"`

	// MaxStarDelta is the largest star difference still counted as agreement.
	MaxStarDelta int `koanf:"max_star_delta" validate:"gte=0,lte=4"`
}

// Similarity defaults.
const (
	DefaultMinCommonBooks = 3
	DefaultMaxStarDelta   = 1
)

// DefaultConfig returns the stock similarity rule: three or more shared
// books rated within one star of each other.
func DefaultConfig() Config {
	return Config{MinCommonBooks: DefaultMinCommonBooks, MaxStarDelta: DefaultMaxStarDelta}
}

// Validate checks the configuration ranges.
func (c Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// BuildReport summarizes one build.
type BuildReport struct {
	Readers              int
	PairsCompared        int
	SimilarityEdges      int
	ConnectionEdges      int
	RedundantConnections int
	SkippedConnections   int
	Issues               []library.Issue
	Duration             time.Duration
}

// Edges returns the total number of edges added.
func (r BuildReport) Edges() int { return r.SimilarityEdges + r.ConnectionEdges }

// Option configures a Builder.
type Option func(*Builder)

// WithConfig replaces the similarity rule.
func WithConfig(cfg Config) Option {
	return func(b *Builder) { b.cfg = cfg }
}

// WithMinCommonBooks sets how many agreeing books create a similarity edge.
// Panics when n < 1.
func WithMinCommonBooks(n int) Option {
	if n < 1 {
		panic("affinity: WithMinCommonBooks requires n >= 1")
	}
	return func(b *Builder) { b.cfg.MinCommonBooks = n }
}

// WithMaxStarDelta sets the largest star difference counted as agreement.
// Panics when d is outside 0..4.
func WithMaxStarDelta(d int) Option {
	if d < 0 || d > library.MaxStars-library.MinStars {
		panic("affinity: WithMaxStarDelta out of range")
	}
	return func(b *Builder) { b.cfg.MaxStarDelta = d }
}

// WithLogger sets the build logger.
func WithLogger(l zerolog.Logger) Option {
	return func(b *Builder) { b.logger = l.With().Str("component", "affinity").Logger() }
}

// WithMetrics records build counters and timings into m.
func WithMetrics(m *metrics.Collector) Option {
	return func(b *Builder) { b.metrics = m }
}

// Builder computes affinity graphs. It holds no graph state of its own.
type Builder struct {
	cfg     Config
	logger  zerolog.Logger
	metrics *metrics.Collector
}

// NewBuilder returns a builder, rejecting an invalid Config with ErrInvalidConfig.
func NewBuilder(opts ...Option) (*Builder, error) {
	b := &Builder{cfg: DefaultConfig(), logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(b)
	}
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Config returns the similarity rule in use.
func (b *Builder) Config() Config { return b.cfg }

// Build returns a fresh graph holding every reader of cat, with an edge
// between two readers when their ratings agree on enough books or when the
// catalog declares a connection between them.
//
// Complexity: O(R²·K²) for the similarity scan (R readers, K ratings each),
// plus O(C·R) for connection resolution.
func (b *Builder) Build(cat *library.Catalog) (*graph.Undirected[*library.Reader], BuildReport) {
	start := time.Now()
	g := graph.New(graph.WithOrder(library.CompareReaders))

	readers := cat.Readers()
	rep := BuildReport{Readers: len(readers)}
	for _, r := range readers {
		g.AddVertex(r)
	}

	b.addSimilarityEdges(g, readers, &rep)
	b.addConnectionEdges(g, cat, &rep)

	rep.Duration = time.Since(start)
	b.metrics.ObserveBuild(rep.Duration, rep.SimilarityEdges, rep.ConnectionEdges, rep.SkippedConnections)
	b.logger.Info().
		Int("readers", rep.Readers).
		Int("pairs", rep.PairsCompared).
		Int("similarity_edges", rep.SimilarityEdges).
		Int("connection_edges", rep.ConnectionEdges).
		Int("skipped_connections", rep.SkippedConnections).
		Dur("took", rep.Duration).
		Msg("affinity graph built")

	return g, rep
}

// addSimilarityEdges scans every unordered reader pair once.
func (b *Builder) addSimilarityEdges(g *graph.Undirected[*library.Reader], readers []*library.Reader, rep *BuildReport) {
	for i := 0; i < len(readers); i++ {
		for j := i + 1; j < len(readers); j++ {
			rep.PairsCompared++
			if AgreeingBooks(readers[i], readers[j], b.cfg.MaxStarDelta) < b.cfg.MinCommonBooks {
				continue
			}
			// distinct readers: AddEdge cannot fail
			_ = g.AddEdge(readers[i], readers[j])
			rep.SimilarityEdges++
		}
	}
}

// addConnectionEdges resolves declared connections in declaration order.
func (b *Builder) addConnectionEdges(g *graph.Undirected[*library.Reader], cat *library.Catalog, rep *BuildReport) {
	for i, conn := range cat.Connections() {
		ra, okA := cat.Reader(conn.A)
		rb, okB := cat.Reader(conn.B)
		switch {
		case !okA || !okB:
			missing := conn.A
			if okA {
				missing = conn.B
			}
			rep.SkippedConnections++
			rep.Issues = append(rep.Issues, library.Issue{
				Batch: "connections",
				Row:   i + 1,
				Kind:  library.IssueUnresolved,
				Err:   fmt.Errorf("%w: %q", library.ErrReaderNotFound, missing),
			})
			b.logger.Warn().Str("a", conn.A).Str("b", conn.B).Str("missing", missing).Msg("connection skipped")
		case ra == rb:
			rep.SkippedConnections++
			rep.Issues = append(rep.Issues, library.Issue{
				Batch: "connections",
				Row:   i + 1,
				Kind:  library.IssueInvalid,
				Err:   fmt.Errorf("%w: %q", library.ErrSelfConnection, conn.A),
			})
		case g.HasEdge(ra, rb):
			rep.RedundantConnections++
		default:
			_ = g.AddEdge(ra, rb)
			rep.ConnectionEdges++
		}
	}
}

// AgreeingBooks counts the books rated by both a and b whose star ratings
// differ by at most maxDelta. Ratings are compared pairwise without an index.
func AgreeingBooks(a, b *library.Reader, maxDelta int) int {
	n := 0
	for ra := range a.Ratings().Values() {
		for rb := range b.Ratings().Values() {
			if ra.Book == rb.Book && abs(ra.Stars-rb.Stars) <= maxDelta {
				n++
			}
		}
	}
	return n
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

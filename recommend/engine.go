// SPDX-License-Identifier: MIT

package recommend

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/bookgraph/affinity"
	"github.com/katalvlaran/bookgraph/metrics"
	"github.com/katalvlaran/bookgraph/table"
)

// weighted pairs a scorer with its ensemble weight.
type weighted struct {
	scorer Scorer
	weight float64
}

// Option configures an Engine.
type Option func(*Engine)

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(e *Engine) { e.cfg = cfg }
}

// WithLogger sets the engine logger.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.logger = l.With().Str("component", "recommend").Logger() }
}

// WithMetrics records request metrics into m.
func WithMetrics(m *metrics.Collector) Option {
	return func(e *Engine) { e.metrics = m }
}

// Engine merges scorer output into ranked recommendations for the readers of
// one affinity network. Like the network, it is not safe for concurrent use
// while the catalog is being mutated.
type Engine struct {
	net     *affinity.Network
	cfg     Config
	scorers []weighted
	logger  zerolog.Logger
	metrics *metrics.Collector
}

// NewEngine returns an engine with the collaborative and content-based
// scorers registered, in that order.
func NewEngine(net *affinity.Network, opts ...Option) (*Engine, error) {
	e := &Engine{net: net, cfg: DefaultConfig(), logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.cfg.Validate(); err != nil {
		return nil, err
	}

	e.scorers = []weighted{
		{NewCollaborative(e.cfg.MinLikedStars), e.cfg.Weights.Collaborative},
		{NewContentBased(e.cfg.Content, e.cfg.MinLikedStars), e.cfg.Weights.Content},
	}
	return e, nil
}

// RegisterScorer appends s to the ensemble with the given weight.
// Candidates of later scorers merge into those of earlier ones.
func (e *Engine) RegisterScorer(s Scorer, weight float64) error {
	if s == nil {
		return ErrNilScorer
	}
	if weight < 0 || weight > 1 {
		return fmt.Errorf("%w: weight %v for %s", ErrInvalidConfig, weight, s.Name())
	}
	e.scorers = append(e.scorers, weighted{s, weight})
	e.logger.Info().Str("scorer", s.Name()).Float64("weight", weight).Msg("registered scorer")
	return nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config { return e.cfg }

// Recommend returns up to maxCount books for username, best first, every
// score in [0,1]. An unknown username or a maxCount <= 0 yields an empty
// slice, not an error.
func (e *Engine) Recommend(ctx context.Context, username string, maxCount int) ([]Recommendation, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r, ok := e.net.Catalog().Reader(username)
	if !ok || maxCount <= 0 {
		e.metrics.ObserveRecommendations(0)
		return []Recommendation{}, nil
	}
	t := Target{Reader: r, Neighbors: e.net.Neighbors(username), Catalog: e.net.Catalog()}

	merged := make([]Recommendation, 0)
	index := table.New[string, int]()
	for _, ws := range e.scorers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cands, err := ws.scorer.Score(ctx, t)
		if err != nil {
			return nil, fmt.Errorf("recommend: %s scorer: %w", ws.scorer.Name(), err)
		}
		e.metrics.ObserveCandidates(ws.scorer.Name(), len(cands))
		if ws.weight == 0 {
			continue
		}
		merged = e.merge(merged, index, t, ws, cands)
	}

	slices.SortStableFunc(merged, func(a, b Recommendation) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if len(merged) > maxCount {
		merged = merged[:maxCount]
	}
	for i := range merged {
		merged[i].Score = clamp(merged[i].Score)
	}

	e.metrics.ObserveRecommendations(len(merged))
	e.logger.Debug().
		Str("reader", username).
		Int("neighbors", len(t.Neighbors)).
		Int("returned", len(merged)).
		Dur("took", time.Since(start)).
		Msg("recommendations computed")

	return merged, nil
}

// merge folds weighted candidates into acc, summing scores and joining
// reasons per book id. New books are appended in candidate order. Excluded
// books are dropped whatever the scorer returned.
func (e *Engine) merge(acc []Recommendation, index *table.Table[string, int], t Target, ws weighted, cands []Candidate) []Recommendation {
	for _, c := range cands {
		if c.Book == nil || t.Excluded(c.Book) {
			continue
		}
		score := c.Score * ws.weight
		if i, ok := index.Get(c.Book.ID); ok {
			acc[i].Score += score
			acc[i].Reason = joinReasons(acc[i].Reason, c.Reason, e.cfg.ReasonSeparator)
			acc[i].Sources = append(acc[i].Sources, ws.scorer.Name())
			continue
		}
		index.Put(c.Book.ID, len(acc))
		acc = append(acc, Recommendation{
			Book:    c.Book,
			Score:   score,
			Reason:  c.Reason,
			Sources: []string{ws.scorer.Name()},
		})
	}
	return acc
}

func joinReasons(a, b, sep string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return strings.Join([]string{a, b}, sep)
}

func clamp(s float64) float64 {
	return min(max(s, 0), 1)
}

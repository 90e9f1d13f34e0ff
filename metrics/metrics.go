// SPDX-License-Identifier: MIT

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bookgraph"

// Edge kinds used as the "kind" label of the edges gauge.
const (
	EdgeSimilarity = "similarity"
	EdgeConnection = "connection"
)

// Collector groups every bookgraph metric.
type Collector struct {
	BuildsTotal        prometheus.Counter
	BuildSeconds       prometheus.Histogram
	Edges              *prometheus.GaugeVec
	SkippedConnections prometheus.Counter

	RecommendationsTotal     prometheus.Counter
	RecommendationCandidates *prometheus.HistogramVec
	RecommendationsServed    prometheus.Histogram
}

// New creates the collectors and registers them on reg.
// Registering twice on the same registry panics, as with promauto.
func New(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)
	return &Collector{
		BuildsTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "affinity",
			Name:      "builds_total",
			Help:      "Total number of affinity graph builds",
		}),
		BuildSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "affinity",
			Name:      "build_seconds",
			Help:      "Duration of affinity graph builds in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10), // 0.5ms .. ~131s
		}),
		Edges: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "affinity",
			Name:      "edges",
			Help:      "Edges added by the most recent build, by origin",
		}, []string{"kind"}),
		SkippedConnections: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "affinity",
			Name:      "skipped_connections_total",
			Help:      "Declared connections skipped because a reader could not be resolved",
		}),
		RecommendationsTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommendations_total",
			Help:      "Total number of recommendation requests served",
		}),
		RecommendationCandidates: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recommendation_candidates",
			Help:      "Candidates produced per request, by scorer",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100, 500},
		}, []string{"scorer"}),
		RecommendationsServed: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recommendations_served",
			Help:      "Recommendations returned per request after truncation",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50},
		}),
	}
}

// ObserveBuild records one affinity build.
func (c *Collector) ObserveBuild(took time.Duration, similarityEdges, connectionEdges, skipped int) {
	if c == nil {
		return
	}
	c.BuildsTotal.Inc()
	c.BuildSeconds.Observe(took.Seconds())
	c.Edges.WithLabelValues(EdgeSimilarity).Set(float64(similarityEdges))
	c.Edges.WithLabelValues(EdgeConnection).Set(float64(connectionEdges))
	c.SkippedConnections.Add(float64(skipped))
}

// ObserveCandidates records how many candidates scorer produced for one request.
func (c *Collector) ObserveCandidates(scorer string, n int) {
	if c == nil {
		return
	}
	c.RecommendationCandidates.WithLabelValues(scorer).Observe(float64(n))
}

// ObserveRecommendations records one served request returning n items.
func (c *Collector) ObserveRecommendations(n int) {
	if c == nil {
		return
	}
	c.RecommendationsTotal.Inc()
	c.RecommendationsServed.Observe(float64(n))
}

// SPDX-License-Identifier: MIT

package metrics_test

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bookgraph/metrics"
)

func TestCollector_ObserveBuild(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.ObserveBuild(3*time.Millisecond, 4, 2, 1)
	m.ObserveBuild(time.Millisecond, 5, 1, 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BuildsTotal))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.Edges.WithLabelValues(metrics.EdgeSimilarity)), "gauge keeps the latest build")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Edges.WithLabelValues(metrics.EdgeConnection)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SkippedConnections))

	n, err := testutil.GatherAndCount(reg, "bookgraph_affinity_build_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCollector_ObserveRecommendations(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.ObserveCandidates("collaborative", 3)
	m.ObserveCandidates("content", 0)
	m.ObserveRecommendations(2)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RecommendationsTotal))
	err := testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP bookgraph_recommendations_total Total number of recommendation requests served
# TYPE bookgraph_recommendations_total counter
bookgraph_recommendations_total 1
`), "bookgraph_recommendations_total")
	assert.NoError(t, err)

	n, err := testutil.GatherAndCount(reg, "bookgraph_recommendation_candidates")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "one series per scorer")
}

func TestCollector_NilSafe(t *testing.T) {
	var m *metrics.Collector
	assert.NotPanics(t, func() {
		m.ObserveBuild(time.Second, 1, 1, 1)
		m.ObserveCandidates("content", 1)
		m.ObserveRecommendations(1)
	})
}

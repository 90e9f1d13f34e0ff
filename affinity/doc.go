// Package affinity builds the reader affinity graph from a library.Catalog and
// answers social queries on it.
//
// Two readers become neighbors when either
//
//   - they rated at least MinCommonBooks of the same books with star
//     ratings no more than MaxStarDelta apart (3 and 1 by default), or
//   - the catalog declares a connection between their usernames.
//
// Builder.Build always computes a fresh graph with a full pairwise scan. The
// Network type holds the current graph for a catalog and exposes the queries
// callers need: shortest paths, clusters, friend suggestions and the most
// connected readers. Rebuild discards the graph and recomputes it; call it
// after the catalog changes.
//
// Readers are ordered by username inside the graph, so every query result is
// deterministic.
//
// SPDX-License-Identifier: MIT
package affinity

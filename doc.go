// Package bookgraph is the social side of a library: who reads like whom,
// and what they should read next.
//
// 🚀 What is bookgraph?
//
//	An in-memory affinity graph over the readers of a library catalog, and a
//	hybrid recommender built on it:
//		• Containers: chained hash table, linked sequence, priority queue
//		• Graph: undirected adjacency, BFS, DFS, shortest path, components
//		• Affinity: readers who agree on enough books, plus declared connections
//		• Recommendations: collaborative and content-based scorers, weighted merge
//
// Packages:
//
//	table/     — hash table with a fixed bucket count and a Set on top
//	sequence/  — singly linked sequence and PriorityQueue
//	graph/     — Undirected[T] and its traversals
//	library/   — readers, books, ratings, Catalog and batch ingestion
//	affinity/  — Builder and the Network query facade
//	recommend/ — Scorer, Collaborative, ContentBased, Engine
//	dataset/   — YAML dataset files and the synthetic generator
//	config/, logging/, metrics/ — ambient wiring for the CLI
//	cmd/bookgraph — command line over a dataset file
//
// Quick ASCII example (edges between readers who agree on ≥ 3 books):
//
//	ana───bruno───carla      diego
//
// shortest path ana → carla is [ana bruno carla]; diego is a cluster of one.
//
//	go install github.com/katalvlaran/bookgraph/cmd/bookgraph@latest
package bookgraph

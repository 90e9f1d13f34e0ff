// Package dataset loads library datasets from YAML files and ingests them
// into a library.Catalog.
//
// A dataset file has five optional top-level lists:
//
//	readers:     [{username, name, password}]
//	books:       [{id, title, author, year, category, status}]
//	loans:       [{reader, book}]
//	ratings:     [{reader, book, stars, comment}]   # book: id or title
//	connections: [[username, username]]
//
// JSON files are accepted too, JSON being valid YAML.
//
// SPDX-License-Identifier: MIT
package dataset

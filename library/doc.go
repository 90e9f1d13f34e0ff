// Package library holds the entities the affinity graph and the recommender
// read: readers, books, ratings and declared reader connections, gathered in
// a Catalog that callers construct and pass around explicitly.
//
// Readers are keyed by username and books by id; both live in table.Table
// instances. Loan and rating histories are sequence.Sequence values kept in
// chronological order. Passwords are stored as bcrypt hashes.
//
// Raw records from external loaders enter through the Ingest* methods, which
// skip and report malformed, invalid, unresolvable and duplicate records
// instead of failing the batch.
package library

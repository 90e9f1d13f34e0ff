// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Book, Reader and Rating entities plus sentinel errors.

package library

import (
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/katalvlaran/bookgraph/sequence"
)

// Sentinel errors for catalog operations.
var (
	// ErrDuplicateKey indicates a reader username or book id is already present.
	ErrDuplicateKey = errors.New("library: duplicate key")

	// ErrReaderNotFound indicates an unknown username.
	ErrReaderNotFound = errors.New("library: reader not found")

	// ErrBookNotFound indicates an unknown book id or title.
	ErrBookNotFound = errors.New("library: book not found")

	// ErrInvalidRecord indicates a field failed validation (range, required, …).
	ErrInvalidRecord = errors.New("library: invalid record")

	// ErrMalformedRecord indicates a raw record with missing columns or an
	// unparsable numeric field.
	ErrMalformedRecord = errors.New("library: malformed record")

	// ErrAlreadyRated indicates the reader has already rated the book.
	ErrAlreadyRated = errors.New("library: book already rated by reader")

	// ErrSelfConnection indicates a declared connection from a reader to itself.
	ErrSelfConnection = errors.New("library: reader cannot connect to itself")
)

// Star bounds for a Rating.
const (
	MinStars = 1
	MaxStars = 5
)

// BookStatus is the circulation state of a book.
type BookStatus string

// Circulation states.
const (
	StatusAvailable BookStatus = "available"
	StatusLoaned    BookStatus = "loaned"
	StatusReserved  BookStatus = "reserved"
)

// Book is a catalog entry identified by ID. It keeps a running rating
// aggregate (sum of stars, number of ratings).
type Book struct {
	ID       string
	Title    string
	Author   string
	Year     int
	Category string
	Status   BookStatus

	ratingSum   int
	ratingCount int
}

// AverageRating returns sum/count, or 0 when the book has no ratings.
func (b *Book) AverageRating() float64 {
	if b.ratingCount == 0 {
		return 0
	}
	return float64(b.ratingSum) / float64(b.ratingCount)
}

// RatingCount returns the number of ratings received.
func (b *Book) RatingCount() int { return b.ratingCount }

func (b *Book) addRating(stars int) {
	b.ratingSum += stars
	b.ratingCount++
}

// Rating is one reader's immutable judgement of one book.
type Rating struct {
	ID      uuid.UUID
	Reader  *Reader
	Book    *Book
	Stars   int
	Comment string
}

// Reader is a library member identified by Username.
// Loans and ratings are kept in the order they happened.
type Reader struct {
	Username string
	Name     string

	passwordHash []byte
	loans        *sequence.Sequence[*Book]
	ratings      *sequence.Sequence[*Rating]
}

func newReader(username, name string, hash []byte) *Reader {
	return &Reader{
		Username:     username,
		Name:         name,
		passwordHash: hash,
		loans:        sequence.New[*Book](),
		ratings:      sequence.New[*Rating](),
	}
}

// Loans returns the reader's loan history, oldest first.
// The sequence is owned by the catalog; callers must treat it as read-only.
func (r *Reader) Loans() *sequence.Sequence[*Book] { return r.loans }

// Ratings returns the ratings the reader has given, oldest first.
// The sequence is owned by the catalog; callers must treat it as read-only.
func (r *Reader) Ratings() *sequence.Sequence[*Rating] { return r.ratings }

// HasBorrowed reports whether b appears in the loan history. O(loans).
func (r *Reader) HasBorrowed(b *Book) bool { return r.loans.Contains(b) }

// RatingFor returns the reader's rating of b, if any. O(ratings).
func (r *Reader) RatingFor(b *Book) (*Rating, bool) {
	for rt := range r.ratings.Values() {
		if rt.Book == b {
			return rt, true
		}
	}
	return nil, false
}

// CheckPassword reports whether password matches the stored hash.
// A reader created without a password never matches.
func (r *Reader) CheckPassword(password string) bool {
	if len(r.passwordHash) == 0 {
		return false
	}
	return bcrypt.CompareHashAndPassword(r.passwordHash, []byte(password)) == nil
}

// Connection is an explicitly declared reader-to-reader link by username.
// It is resolved against the catalog only when the affinity graph is built.
type Connection struct {
	A string
	B string
}

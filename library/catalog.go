// SPDX-License-Identifier: MIT
//
// File: catalog.go
// Role: Catalog, the explicitly constructed context holding readers, books,
//       ratings and declared connections for one library session.
// Policy:
//   - Duplicate keys are rejected and the existing entity is kept.
//   - Lookups of unknown usernames/books return sentinel errors; nothing panics.
//   - Not safe for concurrent mutation; one owner serializes access.

package library

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/katalvlaran/bookgraph/sequence"
	"github.com/katalvlaran/bookgraph/table"
)

// ReaderInfo describes a reader to register.
type ReaderInfo struct {
	Username string `validate:"required,max=64"`
	Name     string `validate:"max=128"`
	Password string // at most maxPasswordBytes bytes
}

// maxPasswordBytes is bcrypt's input limit, in bytes rather than runes.
const maxPasswordBytes = 72

// BookInfo describes a book to register.
type BookInfo struct {
	ID       string     `validate:"required,max=64"`
	Title    string     `validate:"required,max=256"`
	Author   string     `validate:"max=128"`
	Year     int        `validate:"gte=0,lte=9999"`
	Category string     `validate:"max=64"`
	Status   BookStatus `validate:"omitempty,oneof=available loaned reserved"`
}

// ratingInput carries the validated part of a rating.
type ratingInput struct {
	Stars   int    `validate:"min=1,max=5"`
	Comment string `validate:"max=1000"`
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger used for ingestion diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Catalog) { c.logger = l.With().Str("component", "catalog").Logger() }
}

// WithPasswordCost sets the bcrypt cost for reader passwords.
// Panics when cost is outside bcrypt's accepted range.
func WithPasswordCost(cost int) Option {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		panic("library: WithPasswordCost out of range")
	}
	return func(c *Catalog) { c.passwordCost = cost }
}

// WithTableOptions forwards options to the reader and book tables.
func WithTableOptions(opts ...table.Option) Option {
	return func(c *Catalog) { c.tableOpts = append(c.tableOpts, opts...) }
}

// Catalog owns every Reader, Book, Rating and declared Connection.
type Catalog struct {
	readers     *table.Table[string, *Reader]
	books       *table.Table[string, *Book]
	connections *sequence.Sequence[Connection]

	validate     *validator.Validate
	logger       zerolog.Logger
	passwordCost int
	tableOpts    []table.Option
}

// NewCatalog returns an empty catalog.
func NewCatalog(opts ...Option) *Catalog {
	c := &Catalog{
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		logger:       zerolog.Nop(),
		passwordCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.readers = table.New[string, *Reader](c.tableOpts...)
	c.books = table.New[string, *Book](c.tableOpts...)
	c.connections = sequence.New[Connection]()

	return c
}

// AddReader registers a reader. A duplicate username returns ErrDuplicateKey
// and leaves the existing reader untouched.
func (c *Catalog) AddReader(info ReaderInfo) (*Reader, error) {
	if err := c.validate.Struct(info); err != nil {
		return nil, fmt.Errorf("%w: reader %q: %v", ErrInvalidRecord, info.Username, err)
	}
	if len(info.Password) > maxPasswordBytes {
		return nil, fmt.Errorf("%w: reader %q: password longer than %d bytes", ErrInvalidRecord, info.Username, maxPasswordBytes)
	}
	if c.readers.ContainsKey(info.Username) {
		return nil, fmt.Errorf("%w: reader %q", ErrDuplicateKey, info.Username)
	}

	var hash []byte
	if info.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(info.Password), c.passwordCost)
		if err != nil {
			return nil, fmt.Errorf("%w: reader %q: %v", ErrInvalidRecord, info.Username, err)
		}
		hash = h
	}
	r := newReader(info.Username, info.Name, hash)
	c.readers.Put(r.Username, r)

	return r, nil
}

// AddBook registers a book. A duplicate id returns ErrDuplicateKey and leaves
// the existing book untouched. An empty status defaults to available.
func (c *Catalog) AddBook(info BookInfo) (*Book, error) {
	if err := c.validate.Struct(info); err != nil {
		return nil, fmt.Errorf("%w: book %q: %v", ErrInvalidRecord, info.ID, err)
	}
	if c.books.ContainsKey(info.ID) {
		return nil, fmt.Errorf("%w: book %q", ErrDuplicateKey, info.ID)
	}
	if info.Status == "" {
		info.Status = StatusAvailable
	}
	b := &Book{
		ID:       info.ID,
		Title:    info.Title,
		Author:   info.Author,
		Year:     info.Year,
		Category: info.Category,
		Status:   info.Status,
	}
	c.books.Put(b.ID, b)

	return b, nil
}

// Reader looks a reader up by username.
func (c *Catalog) Reader(username string) (*Reader, bool) { return c.readers.Get(username) }

// Book looks a book up by id.
func (c *Catalog) Book(id string) (*Book, bool) { return c.books.Get(id) }

// FindBook resolves ref as a book id first, then as a case-insensitive title.
// Title matching scans the catalog and returns the match with the smallest id.
func (c *Catalog) FindBook(ref string) (*Book, error) {
	if b, ok := c.books.Get(ref); ok {
		return b, nil
	}
	var found *Book
	for _, b := range c.books.All() {
		if strings.EqualFold(b.Title, ref) && (found == nil || b.ID < found.ID) {
			found = b
		}
	}
	if found == nil {
		return nil, fmt.Errorf("%w: %q", ErrBookNotFound, ref)
	}
	return found, nil
}

// Readers returns every reader sorted by username.
func (c *Catalog) Readers() []*Reader {
	rs := c.readers.Values()
	slices.SortFunc(rs, CompareReaders)
	return rs
}

// Books returns every book sorted by id.
func (c *Catalog) Books() []*Book {
	bs := c.books.Values()
	slices.SortFunc(bs, func(a, b *Book) int { return cmp.Compare(a.ID, b.ID) })
	return bs
}

// ReaderCount returns the number of registered readers.
func (c *Catalog) ReaderCount() int { return c.readers.Len() }

// BookCount returns the number of registered books.
func (c *Catalog) BookCount() int { return c.books.Len() }

// Lend records a loan of bookID to username and marks the book loaned.
// Lending a book already in the reader's history is a no-op.
func (c *Catalog) Lend(username, bookID string) error {
	r, ok := c.readers.Get(username)
	if !ok {
		return fmt.Errorf("%w: %q", ErrReaderNotFound, username)
	}
	b, ok := c.books.Get(bookID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrBookNotFound, bookID)
	}
	if r.HasBorrowed(b) {
		return nil
	}
	r.loans.Append(b)
	b.Status = StatusLoaned

	return nil
}

// Rate records username's rating of the book resolved from bookRef (id or
// title) and folds the stars into the book's aggregate. Each reader rates a
// book at most once.
func (c *Catalog) Rate(username, bookRef string, stars int, comment string) (*Rating, error) {
	in := ratingInput{Stars: stars, Comment: comment}
	if err := c.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: rating by %q of %q: %v", ErrInvalidRecord, username, bookRef, err)
	}
	r, ok := c.readers.Get(username)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrReaderNotFound, username)
	}
	b, err := c.FindBook(bookRef)
	if err != nil {
		return nil, err
	}
	if _, rated := r.RatingFor(b); rated {
		return nil, fmt.Errorf("%w: %q rated %q", ErrAlreadyRated, username, b.ID)
	}

	rt := &Rating{ID: uuid.New(), Reader: r, Book: b, Stars: stars, Comment: comment}
	r.ratings.Append(rt)
	b.addRating(stars)

	return rt, nil
}

// Connect declares a link between two usernames. Usernames are not resolved
// here; unknown ones are reported when the affinity graph is built.
func (c *Catalog) Connect(a, b string) error {
	if a == "" || b == "" {
		return fmt.Errorf("%w: connection %q–%q", ErrInvalidRecord, a, b)
	}
	if a == b {
		return fmt.Errorf("%w: %q", ErrSelfConnection, a)
	}
	c.connections.Append(Connection{A: a, B: b})
	return nil
}

// Connections returns the declared connections in declaration order.
func (c *Catalog) Connections() []Connection { return c.connections.Slice() }

// CompareReaders orders readers by username.
func CompareReaders(a, b *Reader) int { return cmp.Compare(a.Username, b.Username) }

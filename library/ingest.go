// SPDX-License-Identifier: MIT
//
// File: ingest.go
// Role: Batch ingestion of raw string records produced by external loaders.
// Policy:
//   - A bad record never aborts the batch: it is skipped and reported.
//   - Rows are positional; trailing optional columns may be omitted.
//   - Row numbers in issues are 1-based positions within the batch.

package library

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// IssueKind classifies why a record was skipped.
type IssueKind string

// Issue kinds.
const (
	IssueMalformed  IssueKind = "malformed"  // missing column, bad number
	IssueInvalid    IssueKind = "invalid"    // value out of range, required field empty
	IssueUnresolved IssueKind = "unresolved" // unknown reader or book
	IssueDuplicate  IssueKind = "duplicate"  // key already present
)

// Issue describes one skipped record.
type Issue struct {
	Batch string
	Row   int
	Kind  IssueKind
	Err   error
}

// Error renders the issue with its position.
func (i Issue) Error() string {
	return fmt.Sprintf("%s row %d (%s): %v", i.Batch, i.Row, i.Kind, i.Err)
}

// Unwrap exposes the underlying error to errors.Is.
func (i Issue) Unwrap() error { return i.Err }

// Report summarizes one ingestion batch.
type Report struct {
	Batch     string
	Processed int
	Skipped   int
	Issues    []Issue
}

// Merge folds o into r, keeping r's batch name.
func (r *Report) Merge(o Report) {
	r.Processed += o.Processed
	r.Skipped += o.Skipped
	r.Issues = append(r.Issues, o.Issues...)
}

// Column counts (minimum required) per batch.
const (
	readerColumns     = 2 // username, name[, password]
	bookColumns       = 5 // id, title, author, year, category[, status]
	loanColumns       = 2 // username, book id
	ratingColumns     = 3 // username, book id or title, stars[, comment]
	connectionColumns = 2 // username a, username b
)

// IngestReaders registers readers from rows of username, name[, password].
func (c *Catalog) IngestReaders(rows [][]string) Report {
	return c.ingest("readers", rows, readerColumns, func(f []string) error {
		_, err := c.AddReader(ReaderInfo{Username: f[0], Name: f[1], Password: optional(f, 2)})
		return err
	})
}

// IngestBooks registers books from rows of id, title, author, year, category[, status].
func (c *Catalog) IngestBooks(rows [][]string) Report {
	return c.ingest("books", rows, bookColumns, func(f []string) error {
		year, err := strconv.Atoi(f[3])
		if err != nil {
			return fmt.Errorf("%w: year %q", ErrMalformedRecord, f[3])
		}
		_, err = c.AddBook(BookInfo{
			ID:       f[0],
			Title:    f[1],
			Author:   f[2],
			Year:     year,
			Category: f[4],
			Status:   BookStatus(strings.ToLower(optional(f, 5))),
		})
		return err
	})
}

// IngestLoans records loans from rows of username, book id.
func (c *Catalog) IngestLoans(rows [][]string) Report {
	return c.ingest("loans", rows, loanColumns, func(f []string) error {
		return c.Lend(f[0], f[1])
	})
}

// IngestRatings records ratings from rows of username, book id or title, stars[, comment].
func (c *Catalog) IngestRatings(rows [][]string) Report {
	return c.ingest("ratings", rows, ratingColumns, func(f []string) error {
		stars, err := strconv.Atoi(f[2])
		if err != nil {
			return fmt.Errorf("%w: stars %q", ErrMalformedRecord, f[2])
		}
		_, err = c.Rate(f[0], f[1], stars, optional(f, 3))
		return err
	})
}

// IngestConnections declares connections from rows of username a, username b.
// Unknown usernames are accepted here and reported when the graph is built.
func (c *Catalog) IngestConnections(rows [][]string) Report {
	return c.ingest("connections", rows, connectionColumns, func(f []string) error {
		return c.Connect(f[0], f[1])
	})
}

// ingest runs apply on every row with at least minColumns trimmed fields.
func (c *Catalog) ingest(batch string, rows [][]string, minColumns int, apply func([]string) error) Report {
	rep := Report{Batch: batch}
	for i, row := range rows {
		fields := make([]string, len(row))
		for j, f := range row {
			fields[j] = strings.TrimSpace(f)
		}

		var err error
		if len(fields) < minColumns {
			err = fmt.Errorf("%w: %d columns, need %d", ErrMalformedRecord, len(fields), minColumns)
		} else {
			err = apply(fields)
		}
		if err == nil {
			rep.Processed++
			continue
		}

		issue := Issue{Batch: batch, Row: i + 1, Kind: classify(err), Err: err}
		rep.Skipped++
		rep.Issues = append(rep.Issues, issue)
		c.logger.Warn().
			Str("batch", batch).
			Int("row", issue.Row).
			Str("kind", string(issue.Kind)).
			Err(err).
			Msg("record skipped")
	}

	c.logger.Info().
		Str("batch", batch).
		Int("processed", rep.Processed).
		Int("skipped", rep.Skipped).
		Msg("batch ingested")

	return rep
}

// classify maps a record error onto its IssueKind.
func classify(err error) IssueKind {
	switch {
	case errors.Is(err, ErrMalformedRecord):
		return IssueMalformed
	case errors.Is(err, ErrDuplicateKey), errors.Is(err, ErrAlreadyRated):
		return IssueDuplicate
	case errors.Is(err, ErrReaderNotFound), errors.Is(err, ErrBookNotFound):
		return IssueUnresolved
	default:
		return IssueInvalid
	}
}

// optional returns f[i] or "" when the column is absent.
func optional(f []string, i int) string {
	if i < len(f) {
		return f[i]
	}
	return ""
}

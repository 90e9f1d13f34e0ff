// SPDX-License-Identifier: MIT
//
// File: dataset.go
// Role: Loader boundary. Decodes a YAML (or JSON) dataset file into raw
//       string records and feeds them to the catalog's batch ingestion.
// Policy:
//   - Numeric fields are decoded as text so that bad values surface as
//     malformed records in the ingestion report, not as decode failures.
//   - Only structural problems (unreadable file, invalid YAML, unknown keys)
//     are returned as errors.

package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bookgraph/library"
)

// ErrDecode wraps every structural decoding failure.
var ErrDecode = errors.New("dataset: decode")

// ReaderRecord is one reader entry.
type ReaderRecord struct {
	Username string `yaml:"username"`
	Name     string `yaml:"name"`
	Password string `yaml:"password,omitempty"`
}

// BookRecord is one book entry. Year stays textual until ingestion.
type BookRecord struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Author   string `yaml:"author"`
	Year     string `yaml:"year"`
	Category string `yaml:"category"`
	Status   string `yaml:"status,omitempty"`
}

// LoanRecord is one loan entry.
type LoanRecord struct {
	Reader string `yaml:"reader"`
	Book   string `yaml:"book"`
}

// RatingRecord is one rating entry. Book is a book id or title.
type RatingRecord struct {
	Reader  string `yaml:"reader"`
	Book    string `yaml:"book"`
	Stars   string `yaml:"stars"`
	Comment string `yaml:"comment,omitempty"`
}

// Dataset is the decoded content of a dataset file.
type Dataset struct {
	Readers     []ReaderRecord `yaml:"readers"`
	Books       []BookRecord   `yaml:"books"`
	Loans       []LoanRecord   `yaml:"loans"`
	Ratings     []RatingRecord `yaml:"ratings"`
	Connections [][]string     `yaml:"connections"`
}

// Decode reads a dataset from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Dataset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var d Dataset
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return &d, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return &d, nil
}

// Load reads and decodes the dataset file at path.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}
	return Decode(bytes.NewReader(data))
}

// Summary holds one report per ingested batch, in ingestion order.
type Summary struct {
	Reports []library.Report
}

// Total folds every batch report into one.
func (s Summary) Total() library.Report {
	total := library.Report{Batch: "total"}
	for _, r := range s.Reports {
		total.Merge(r)
	}
	return total
}

// Apply ingests the dataset into cat: readers, books, loans, ratings, then
// connections, so that later batches can reference earlier ones.
func (d *Dataset) Apply(cat *library.Catalog) Summary {
	return Summary{Reports: []library.Report{
		cat.IngestReaders(d.readerRows()),
		cat.IngestBooks(d.bookRows()),
		cat.IngestLoans(d.loanRows()),
		cat.IngestRatings(d.ratingRows()),
		cat.IngestConnections(d.Connections),
	}}
}

func (d *Dataset) readerRows() [][]string {
	rows := make([][]string, len(d.Readers))
	for i, r := range d.Readers {
		rows[i] = []string{r.Username, r.Name, r.Password}
	}
	return rows
}

func (d *Dataset) bookRows() [][]string {
	rows := make([][]string, len(d.Books))
	for i, b := range d.Books {
		rows[i] = []string{b.ID, b.Title, b.Author, b.Year, b.Category, b.Status}
	}
	return rows
}

func (d *Dataset) loanRows() [][]string {
	rows := make([][]string, len(d.Loans))
	for i, l := range d.Loans {
		rows[i] = []string{l.Reader, l.Book}
	}
	return rows
}

func (d *Dataset) ratingRows() [][]string {
	rows := make([][]string, len(d.Ratings))
	for i, r := range d.Ratings {
		rows[i] = []string{r.Reader, r.Book, r.Stars, r.Comment}
	}
	return rows
}

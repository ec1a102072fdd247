// Package catalog loads reference collections from tab-separated or FASTA
// files.
//
// A TSV catalog needs a header row with a GeneID column and a sequence
// column; other columns are ignored. Sequences are kept exactly as read
// (apart from surrounding whitespace) and validated later by the scanner.
package catalog

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aria-lang/genematch/internal/scan"
	"github.com/aria-lang/genematch/internal/stats"
	"github.com/google/uuid"
)

// Required TSV column names.
const (
	IDColumn       = "GeneID"
	SequenceColumn = "sequence"
)

// Format identifies a catalog file format.
type Format int

const (
	TSV Format = iota
	FASTA
)

func (f Format) String() string {
	switch f {
	case TSV:
		return "tsv"
	case FASTA:
		return "fasta"
	default:
		return "unknown"
	}
}

// DetectFormat guesses the format from the file name. Anything that is not
// a FASTA extension is read as TSV. A trailing .gz is ignored.
func DetectFormat(path string) Format {
	name := strings.TrimSuffix(strings.ToLower(path), ".gz")
	switch filepath.Ext(name) {
	case ".fa", ".fasta", ".fna", ".fas":
		return FASTA
	default:
		return TSV
	}
}

// Catalog is one loaded snapshot of a reference collection.
type Catalog struct {
	ID      uuid.UUID
	Source  string
	Format  Format
	Records []scan.Record
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.Records)
}

// Summary returns collection statistics for the catalog.
func (c *Catalog) Summary() (*stats.CollectionStats, error) {
	return stats.FromRecords(c.Records)
}

// Load reads the catalog at path. "-" reads from standard input as TSV.
func Load(path string) (*Catalog, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer rc.Close()

	format := DetectFormat(path)
	c, err := Read(rc, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.Source = path
	return c, nil
}

// Read parses a catalog of the given format from r.
func Read(r io.Reader, format Format) (*Catalog, error) {
	var (
		records []scan.Record
		err     error
	)
	switch format {
	case FASTA:
		records, err = ParseFASTA(r)
	default:
		records, err = ParseTSV(r)
	}
	if err != nil {
		return nil, err
	}

	return &Catalog{
		ID:      uuid.New(),
		Format:  format,
		Records: records,
	}, nil
}

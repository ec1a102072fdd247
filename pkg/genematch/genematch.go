// Package genematch finds the reference sequence that best matches a query
// under global alignment.
//
// Example usage:
//
//	cat, err := genematch.LoadCatalog("covid.tsv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	query, err := genematch.NewSequence("ATGTTTGTTTTTCTTG")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := genematch.FindBestMatch(cat.Records, query)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Best != nil {
//	    fmt.Println(res.Best.ID, res.Best.Score)
//	    fmt.Println(res.Best.Alignment.Format())
//	}
package genematch

import (
	"context"
	"fmt"

	"github.com/aria-lang/genematch/internal/alignment"
	"github.com/aria-lang/genematch/internal/catalog"
	"github.com/aria-lang/genematch/internal/scan"
	"github.com/aria-lang/genematch/internal/sequence"
)

// Re-export types for convenience
type (
	Sequence          = sequence.Sequence
	Alignment         = alignment.Alignment
	ScoringScheme     = alignment.ScoringScheme
	InvalidInputError = alignment.InvalidInputError
	Record            = scan.Record
	BestMatch         = scan.BestMatch
	Result            = scan.Result
	Policy            = scan.Policy
	ScanOption        = scan.Option
	RecordError       = scan.RecordError
	Catalog           = catalog.Catalog
)

// Malformed record policies
const (
	SkipInvalid = scan.SkipInvalid
	RejectRun   = scan.RejectRun
)

// Scanner options
var (
	WithWorkers  = scan.WithWorkers
	WithPolicy   = scan.WithPolicy
	WithLogger   = scan.WithLogger
	WithProgress = scan.WithProgress
)

// NewSequence creates a validated sequence.
func NewSequence(bases string) (*Sequence, error) {
	return sequence.New(bases)
}

// DefaultScheme returns the default scoring scheme.
func DefaultScheme() ScoringScheme {
	return alignment.DefaultScheme()
}

// NewScoringScheme creates a validated scoring scheme.
func NewScoringScheme(match, mismatch, gap int) (ScoringScheme, error) {
	return alignment.NewScoringScheme(match, mismatch, gap)
}

// AlignGlobal globally aligns two sequences with the default scheme.
func AlignGlobal(query, target *Sequence) (*Alignment, error) {
	return alignment.Global(query, target, alignment.DefaultScheme())
}

// AlignWithScheme globally aligns two sequences with a custom scheme.
func AlignWithScheme(query, target *Sequence, scheme ScoringScheme) (*Alignment, error) {
	return alignment.Global(query, target, scheme)
}

// LoadCatalog reads a TSV or FASTA reference catalog.
func LoadCatalog(path string) (*Catalog, error) {
	return catalog.Load(path)
}

// FindBestMatch scans records sequentially with the default scheme,
// skipping malformed records.
func FindBestMatch(records []Record, query *Sequence) (*Result, error) {
	return scan.FindBest(records, query, alignment.DefaultScheme())
}

// FindBestMatchWith scans records with a custom scheme and scanner options.
func FindBestMatchWith(ctx context.Context, records []Record, query *Sequence,
	scheme ScoringScheme, opts ...ScanOption) (*Result, error) {
	return scan.New(opts...).Best(ctx, records, query, scheme)
}

// Version returns the GeneMatch version.
func Version() string {
	return "1.0.0"
}

// Info returns information about GeneMatch.
func Info() string {
	return fmt.Sprintf(`GeneMatch v%s - Best Global Alignment Search

Finds the catalog entry that best matches a nucleotide query.

Features:
  - A/T/C/G sequence validation
  - Needleman-Wunsch global alignment with linear gap cost
  - Parallel best-match scan with first-occurrence tie-breaking
  - TSV (GeneID, sequence) and FASTA catalogs, optionally gzipped
  - Text and JSON reports

For more information, see: https://github.com/aria-lang/genematch
`, Version())
}

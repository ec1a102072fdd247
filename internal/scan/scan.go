// Package scan finds the reference record that best globally aligns with a
// query sequence.
//
// Every record is aligned exactly once. The winner is the record with the
// highest score; among equal scores the record that comes first in the
// collection wins, no matter how many workers are used.
//
// Records whose sequence is empty or holds symbols outside A, T, C, G are
// handled by the scanner's Policy. The default, SkipInvalid, leaves them out
// of the comparison and reports them in Result.Skipped; RejectRun fails the
// whole run on the first such record in collection order.
package scan

import (
	"context"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/aria-lang/genematch/internal/alignment"
	"github.com/aria-lang/genematch/internal/sequence"
)

// Record is one catalog entry. Bases is kept raw; it is validated when the
// record is scanned.
type Record struct {
	ID    string
	Bases string
}

// BestMatch is the winning record of a scan.
type BestMatch struct {
	ID        string
	Index     int
	Score     int
	Alignment *alignment.Alignment
}

// better reports whether m should replace cur as the running best.
func (m *BestMatch) better(cur *BestMatch) bool {
	if cur == nil {
		return true
	}
	if m.Score != cur.Score {
		return m.Score > cur.Score
	}
	return m.Index < cur.Index
}

// Skipped describes a record left out of a scan.
type Skipped struct {
	Index int
	ID    string
	Err   error
}

// Result is the outcome of a scan. Best is nil when no record could be
// compared, either because the collection was empty or because every record
// was skipped.
type Result struct {
	Best    *BestMatch
	Scanned int
	Skipped []Skipped
}

// Policy selects how malformed records are treated.
type Policy int

const (
	// SkipInvalid excludes malformed records and logs them.
	SkipInvalid Policy = iota
	// RejectRun fails the scan on the first malformed record.
	RejectRun
)

func (p Policy) String() string {
	switch p {
	case SkipInvalid:
		return "skip"
	case RejectRun:
		return "reject"
	default:
		return "unknown"
	}
}

// RecordError is returned under RejectRun when a record is malformed.
type RecordError struct {
	Index int
	ID    string
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d (%s): %v", e.Index, e.ID, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// Scanner runs best-match searches. The zero value is not usable; create
// one with New. A Scanner holds no per-run state and may be shared.
type Scanner struct {
	workers  int
	policy   Policy
	logger   *log.Logger
	progress func(done, total int)
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithWorkers sets the number of alignment goroutines (minimum 1).
func WithWorkers(n int) Option {
	return func(s *Scanner) {
		if n < 1 {
			n = 1
		}
		s.workers = n
	}
}

// WithPolicy sets the malformed record policy.
func WithPolicy(p Policy) Option {
	return func(s *Scanner) { s.policy = p }
}

// WithLogger sets the logger used to report skipped records.
func WithLogger(l *log.Logger) Option {
	return func(s *Scanner) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithProgress registers a callback invoked after each record is handled,
// from the reducing goroutine only.
func WithProgress(fn func(done, total int)) Option {
	return func(s *Scanner) { s.progress = fn }
}

// New creates a scanner. By default it uses one worker, SkipInvalid and a
// logger that discards output.
func New(opts ...Option) *Scanner {
	s := &Scanner{
		workers: 1,
		policy:  SkipInvalid,
		logger:  log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Workers returns the configured number of workers.
func (s *Scanner) Workers() int { return s.workers }

// Policy returns the configured malformed record policy.
func (s *Scanner) Policy() Policy { return s.policy }

// outcome is what a worker reports for one record.
type outcome struct {
	index int
	match *BestMatch
	err   error // record validation failure
}

// Best aligns query against every record and returns the best match.
//
// An invalid query fails with *alignment.InvalidInputError before any record
// is aligned. An empty collection yields a Result with a nil Best and no
// error. A ctx that is already done fails immediately; cancelling it during
// the scan stops the scan. Both return ctx.Err().
func (s *Scanner) Best(ctx context.Context, records []Record, query *sequence.Sequence,
	scheme alignment.ScoringScheme) (*Result, error) {
	if err := alignment.CheckInput("query", query); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{}
	if len(records) == 0 {
		return res, nil
	}

	if s.policy == RejectRun {
		for i, rec := range records {
			if err := sequence.Validate(strings.ToUpper(rec.Bases)); err != nil {
				return nil, &RecordError{Index: i, ID: rec.ID, Err: err}
			}
		}
	}

	workers := s.workers
	if workers > len(records) {
		workers = len(records)
	}

	jobs := make(chan int, workers*2)
	outcomes := make(chan outcome, workers*2)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			aligner := alignment.NewAligner(scheme)
			for i := range jobs {
				o := evaluate(aligner, query, records[i], i)
				select {
				case outcomes <- o:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i := range records {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	done := 0
	for o := range outcomes {
		done++
		if o.err != nil {
			rec := records[o.index]
			s.logger.Printf("skipping record %d (%s): %v", o.index, rec.ID, o.err)
			res.Skipped = append(res.Skipped, Skipped{Index: o.index, ID: rec.ID, Err: o.err})
		} else {
			res.Scanned++
			if o.match.better(res.Best) {
				res.Best = o.match
			}
		}
		if s.progress != nil {
			s.progress(done, len(records))
		}
	}

	if done < len(records) {
		return nil, ctx.Err()
	}

	sort.Slice(res.Skipped, func(i, j int) bool {
		return res.Skipped[i].Index < res.Skipped[j].Index
	})
	return res, nil
}

// evaluate validates and aligns a single record.
func evaluate(aligner *alignment.Aligner, query *sequence.Sequence, rec Record, index int) outcome {
	target, err := sequence.New(rec.Bases)
	if err != nil {
		return outcome{index: index, err: err}
	}
	a, err := aligner.Align(query, target)
	if err != nil {
		return outcome{index: index, err: err}
	}
	return outcome{
		index: index,
		match: &BestMatch{ID: rec.ID, Index: index, Score: a.Score, Alignment: a},
	}
}

// FindBest scans records sequentially with the default policy.
func FindBest(records []Record, query *sequence.Sequence, scheme alignment.ScoringScheme) (*Result, error) {
	return New().Best(context.Background(), records, query, scheme)
}

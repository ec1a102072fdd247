// Package stats summarizes reference collections.
package stats

import (
	"fmt"
	"sort"

	"github.com/aria-lang/genematch/internal/scan"
	"github.com/aria-lang/genematch/internal/sequence"
)

// CollectionStats holds aggregate figures for a reference collection.
//
// Length figures cover every record, valid or not. GC content is averaged
// over valid records only.
type CollectionStats struct {
	Count         int     `json:"count"`
	Valid         int     `json:"valid"`
	Invalid       int     `json:"invalid"`
	TotalBases    int     `json:"total_bases"`
	MinLength     int     `json:"min_length"`
	MaxLength     int     `json:"max_length"`
	MeanLength    float64 `json:"mean_length"`
	MedianLength  int     `json:"median_length"`
	MeanGCContent float64 `json:"mean_gc_content"`
	N50           int     `json:"n50"`
}

// FromRecords calculates statistics for a collection.
func FromRecords(records []scan.Record) (*CollectionStats, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("record list cannot be empty")
	}

	count := len(records)
	lengths := make([]int, count)
	totalBases := 0
	gcSum := 0.0
	valid := 0

	for i, rec := range records {
		lengths[i] = len(rec.Bases)
		totalBases += lengths[i]

		seq, err := sequence.New(rec.Bases)
		if err != nil {
			continue
		}
		valid++
		gcSum += seq.GCContent()
	}

	sorted := make([]int, count)
	copy(sorted, lengths)
	sort.Ints(sorted)

	mid := count / 2
	var medianLen int
	if count%2 == 0 {
		medianLen = (sorted[mid-1] + sorted[mid]) / 2
	} else {
		medianLen = sorted[mid]
	}

	meanGC := 0.0
	if valid > 0 {
		meanGC = gcSum / float64(valid)
	}

	return &CollectionStats{
		Count:         count,
		Valid:         valid,
		Invalid:       count - valid,
		TotalBases:    totalBases,
		MinLength:     sorted[0],
		MaxLength:     sorted[count-1],
		MeanLength:    float64(totalBases) / float64(count),
		MedianLength:  medianLen,
		MeanGCContent: meanGC,
		N50:           n50(sorted, totalBases),
	}, nil
}

// n50 returns the length L such that records of length >= L hold at least
// half of all bases. ascending must be sorted in increasing order.
func n50(ascending []int, totalBases int) int {
	half := (totalBases + 1) / 2
	running := 0
	for i := len(ascending) - 1; i >= 0; i-- {
		running += ascending[i]
		if running >= half {
			return ascending[i]
		}
	}
	return 0
}

func (s *CollectionStats) String() string {
	return fmt.Sprintf(`CollectionStats {
  count: %d (valid: %d, invalid: %d)
  total_bases: %d
  length range: %d - %d
  mean length: %.1f
  median length: %d
  mean GC: %.1f%%
  N50: %d
}`, s.Count, s.Valid, s.Invalid, s.TotalBases, s.MinLength, s.MaxLength,
		s.MeanLength, s.MedianLength, s.MeanGCContent*100, s.N50)
}

// Package report renders scan results for people and for programs.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aria-lang/genematch/internal/scan"
	"github.com/aria-lang/genematch/internal/stats"
	"github.com/dustin/go-humanize"
)

// NoMatchMessage is printed when a scan produced no best match.
const NoMatchMessage = "No matching sequence found."

// Text writes the best match in human readable form.
func Text(w io.Writer, m *scan.BestMatch) error {
	if m == nil {
		_, err := fmt.Fprintln(w, NoMatchMessage)
		return err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Best Matching GeneID: %s\n", m.ID)
	fmt.Fprintf(&sb, "Alignment Score: %d\n", m.Score)
	sb.WriteString("\nBest Alignment Result:\n")
	sb.WriteString(m.Alignment.Format())
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}

// Skipped writes one line per skipped record. Nothing is written when no
// record was skipped.
func Skipped(w io.Writer, skipped []scan.Skipped) error {
	if len(skipped) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "Skipped %s invalid record(s):\n", humanize.Comma(int64(len(skipped)))); err != nil {
		return err
	}
	for _, s := range skipped {
		if _, err := fmt.Fprintf(w, "  #%d %s: %v\n", s.Index, s.ID, s.Err); err != nil {
			return err
		}
	}
	return nil
}

// Summary writes collection statistics with thousands separators.
func Summary(w io.Writer, s *stats.CollectionStats) error {
	var sb strings.Builder
	sb.WriteString("Catalog Statistics\n")
	sb.WriteString(strings.Repeat("-", 40) + "\n")
	fmt.Fprintf(&sb, "Records: %s (%s valid, %s invalid)\n",
		humanize.Comma(int64(s.Count)), humanize.Comma(int64(s.Valid)), humanize.Comma(int64(s.Invalid)))
	fmt.Fprintf(&sb, "Total bases: %s\n", humanize.Comma(int64(s.TotalBases)))
	fmt.Fprintf(&sb, "Length range: %s - %s bp\n",
		humanize.Comma(int64(s.MinLength)), humanize.Comma(int64(s.MaxLength)))
	fmt.Fprintf(&sb, "Mean length: %.1f bp\n", s.MeanLength)
	fmt.Fprintf(&sb, "Median length: %s bp\n", humanize.Comma(int64(s.MedianLength)))
	fmt.Fprintf(&sb, "N50: %s bp\n", humanize.Comma(int64(s.N50)))
	fmt.Fprintf(&sb, "Mean GC content: %.2f%%\n", s.MeanGCContent*100)

	_, err := io.WriteString(w, sb.String())
	return err
}

// Match is the JSON form of a best match.
type Match struct {
	GeneID        string  `json:"gene_id"`
	Index         int     `json:"index"`
	Score         int     `json:"score"`
	AlignedQuery  string  `json:"aligned_query"`
	AlignedTarget string  `json:"aligned_target"`
	CIGAR         string  `json:"cigar"`
	Identity      float64 `json:"identity"`
	Matches       int     `json:"matches"`
	Mismatches    int     `json:"mismatches"`
	Gaps          int     `json:"gaps"`
}

// SkippedRecord is the JSON form of a skipped record.
type SkippedRecord struct {
	Index  int    `json:"index"`
	GeneID string `json:"gene_id"`
	Reason string `json:"reason"`
}

// MatchResult is the JSON form of a scan result. Match is null when nothing
// matched.
type MatchResult struct {
	Match   *Match          `json:"match"`
	Scanned int             `json:"scanned"`
	Skipped []SkippedRecord `json:"skipped"`
}

// ToMatch converts a best match to its JSON form.
func ToMatch(m *scan.BestMatch) *Match {
	if m == nil {
		return nil
	}
	a := m.Alignment
	return &Match{
		GeneID:        m.ID,
		Index:         m.Index,
		Score:         m.Score,
		AlignedQuery:  a.AlignedQuery,
		AlignedTarget: a.AlignedTarget,
		CIGAR:         a.ToCIGAR(),
		Identity:      a.Identity,
		Matches:       a.MatchCount(),
		Mismatches:    a.MismatchCount(),
		Gaps:          a.TotalGaps(),
	}
}

// ToMatchResult converts a scan result to its JSON form.
func ToMatchResult(r *scan.Result) MatchResult {
	out := MatchResult{
		Match:   ToMatch(r.Best),
		Scanned: r.Scanned,
		Skipped: make([]SkippedRecord, 0, len(r.Skipped)),
	}
	for _, s := range r.Skipped {
		out.Skipped = append(out.Skipped, SkippedRecord{Index: s.Index, GeneID: s.ID, Reason: s.Err.Error()})
	}
	return out
}

// JSON writes r as an indented JSON document.
func JSON(w io.Writer, r *scan.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToMatchResult(r))
}

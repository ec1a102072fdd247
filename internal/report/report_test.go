package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aria-lang/genematch/internal/alignment"
	"github.com/aria-lang/genematch/internal/scan"
	"github.com/aria-lang/genematch/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMatch(t *testing.T) *scan.BestMatch {
	t.Helper()
	a, err := alignment.NewAlignment("AT-GC", "ATGAC", 1)
	require.NoError(t, err)
	return &scan.BestMatch{ID: "g7", Index: 3, Score: 1, Alignment: a}
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, sampleMatch(t)))

	want := "Best Matching GeneID: g7\n" +
		"Alignment Score: 1\n" +
		"\nBest Alignment Result:\n" +
		"Query:  AT-GC\n" +
		"        || .|\n" +
		"Target: ATGAC\n" +
		"Score: 1\n" +
		"Identity: 60.0%\n" +
		"CIGAR: 2M1D1X1M\n"
	assert.Equal(t, want, buf.String())
}

func TestTextNoMatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, nil))
	assert.Equal(t, NoMatchMessage+"\n", buf.String())
}

func TestSkipped(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Skipped(&buf, nil))
	assert.Empty(t, buf.String())

	require.NoError(t, Skipped(&buf, []scan.Skipped{{Index: 2, ID: "bad", Err: errors.New("boom")}}))
	assert.Equal(t, "Skipped 1 invalid record(s):\n  #2 bad: boom\n", buf.String())
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Summary(&buf, &stats.CollectionStats{
		Count:         12345,
		Valid:         12340,
		Invalid:       5,
		TotalBases:    3456789,
		MinLength:     10,
		MaxLength:     29903,
		MeanLength:    280.02,
		MedianLength:  1200,
		MeanGCContent: 0.38,
		N50:           2500,
	}))

	out := buf.String()
	assert.Contains(t, out, "Records: 12,345 (12,340 valid, 5 invalid)")
	assert.Contains(t, out, "Total bases: 3,456,789")
	assert.Contains(t, out, "Length range: 10 - 29,903 bp")
	assert.Contains(t, out, "N50: 2,500 bp")
	assert.Contains(t, out, "Mean GC content: 38.00%")
}

func TestJSON(t *testing.T) {
	res := &scan.Result{
		Best:    sampleMatch(t),
		Scanned: 4,
		Skipped: []scan.Skipped{{Index: 1, ID: "x", Err: errors.New("invalid base 'X' at position 0")}},
	}

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, res))

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	match := got["match"].(map[string]interface{})
	assert.Equal(t, "g7", match["gene_id"])
	assert.Equal(t, float64(1), match["score"])
	assert.Equal(t, "AT-GC", match["aligned_query"])
	assert.Equal(t, "2M1D1X1M", match["cigar"])
	assert.Equal(t, float64(4), got["scanned"])

	skipped := got["skipped"].([]interface{})
	require.Len(t, skipped, 1)
	assert.Equal(t, "x", skipped[0].(map[string]interface{})["gene_id"])
}

func TestJSONNoMatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, &scan.Result{}))
	assert.JSONEq(t, `{"match": null, "scanned": 0, "skipped": []}`, buf.String())
}

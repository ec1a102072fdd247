package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aria-lang/genematch/internal/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "covid.tsv")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const testCatalog = "GeneID\tsequence\ng1\tATCG\ng2\tATAG\ng3\tTTTT\n"

func TestMatchCmd(t *testing.T) {
	path := writeCatalog(t, testCatalog)

	var stdout, stderr bytes.Buffer
	err := matchCmd([]string{"-catalog", path, "-seq", "atcg", "-match", "1", "-mismatch", "-1", "-gap", "-2"},
		strings.NewReader(""), &stdout, &stderr)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "Best Matching GeneID: g1")
	assert.Contains(t, stdout.String(), "Alignment Score: 4")
	assert.Contains(t, stderr.String(), "loaded 3 records")
}

func TestMatchCmdPrompt(t *testing.T) {
	path := writeCatalog(t, testCatalog)

	var stdout, stderr bytes.Buffer
	err := matchCmd([]string{"-catalog", path, "-quiet"}, strings.NewReader("ataG\n"), &stdout, &stderr)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout.String(), "Enter your sequence (A, T, C, G): "))
	assert.Contains(t, stdout.String(), "Best Matching GeneID: g2")
	assert.Empty(t, stderr.String())
}

func TestMatchCmdInvalidQuery(t *testing.T) {
	path := writeCatalog(t, testCatalog)

	var stdout, stderr bytes.Buffer
	err := matchCmd([]string{"-catalog", path, "-seq", "ATXG"}, strings.NewReader(""), &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid sequence")
	assert.NotContains(t, stdout.String(), "Best Matching")
}

func TestMatchCmdEmptyCatalog(t *testing.T) {
	path := writeCatalog(t, "GeneID\tsequence\n")

	var stdout, stderr bytes.Buffer
	err := matchCmd([]string{"-catalog", path, "-seq", "ACGT", "-progress"}, strings.NewReader(""), &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "No matching sequence found.")
}

func TestMatchCmdJSON(t *testing.T) {
	path := writeCatalog(t, testCatalog+"bad\tAXXA\n")

	var stdout, stderr bytes.Buffer
	err := matchCmd([]string{"-catalog", path, "-seq", "ATCG", "-json", "-workers", "3"},
		strings.NewReader(""), &stdout, &stderr)
	require.NoError(t, err)

	var got struct {
		Match struct {
			GeneID string `json:"gene_id"`
			Score  int    `json:"score"`
		} `json:"match"`
		Scanned int `json:"scanned"`
		Skipped []struct {
			GeneID string `json:"gene_id"`
		} `json:"skipped"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	assert.Equal(t, "g1", got.Match.GeneID)
	assert.Equal(t, 4, got.Match.Score)
	assert.Equal(t, 3, got.Scanned)
	require.Len(t, got.Skipped, 1)
	assert.Equal(t, "bad", got.Skipped[0].GeneID)
	assert.Contains(t, stderr.String(), "skipping record 3 (bad)")
}

func TestMatchCmdStrict(t *testing.T) {
	path := writeCatalog(t, testCatalog+"bad\tAXXA\n")

	var stdout, stderr bytes.Buffer
	err := matchCmd([]string{"-catalog", path, "-seq", "ATCG", "-strict"}, strings.NewReader(""), &stdout, &stderr)
	require.Error(t, err)

	var recErr *scan.RecordError
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, "bad", recErr.ID)
}

func TestMatchCmdMissingColumn(t *testing.T) {
	path := writeCatalog(t, "ID\tsequence\ng1\tATCG\n")

	var stdout, stderr bytes.Buffer
	err := matchCmd([]string{"-catalog", path, "-seq", "ATCG"}, strings.NewReader(""), &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"GeneID"`)
}

func TestMatchCmdBadScheme(t *testing.T) {
	path := writeCatalog(t, testCatalog)

	var stdout, stderr bytes.Buffer
	err := matchCmd([]string{"-catalog", path, "-seq", "ATCG", "-match", "0", "-mismatch", "0", "-gap", "0"},
		strings.NewReader(""), &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-zero")

	stdout.Reset()
	err = matchCmd([]string{"-catalog", path, "-seq", "ATCG", "-mismatch", "2", "-gap", "1"},
		strings.NewReader(""), &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Best Matching GeneID:")
}

func TestMatchCmdProgress(t *testing.T) {
	path := writeCatalog(t, testCatalog)

	var stdout, stderr bytes.Buffer
	err := matchCmd([]string{"-catalog", path, "-seq", "ATCG", "-progress", "-workers", "4", "-quiet"},
		strings.NewReader(""), &stdout, &stderr)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "Best Matching GeneID: g1")
	assert.Contains(t, stdout.String(), "Alignment Score: 4")
}

func TestMatchCmdProgressStrict(t *testing.T) {
	path := writeCatalog(t, testCatalog+"bad\tAXXA\n")

	var stdout, stderr bytes.Buffer
	err := matchCmd([]string{"-catalog", path, "-seq", "ATCG", "-progress", "-strict", "-workers", "4"},
		strings.NewReader(""), &stdout, &stderr)
	require.Error(t, err)

	var recErr *scan.RecordError
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, 3, recErr.Index)
	assert.Equal(t, "bad", recErr.ID)
	assert.NotContains(t, stdout.String(), "Best Matching")
}

func TestAlignCmd(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := alignCmd([]string{"-seq1", "GATTACA", "-seq2", "GCATGCT", "-match", "1", "-mismatch", "-1", "-gap", "-1"},
		&stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Score: 0")

	err = alignCmd([]string{"-seq1", "ACGT"}, &stdout, &stderr)
	require.Error(t, err)
}

func TestCatalogCmd(t *testing.T) {
	path := writeCatalog(t, testCatalog)

	var stdout, stderr bytes.Buffer
	require.NoError(t, catalogCmd([]string{"-catalog", path}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "(tsv)")
	assert.Contains(t, stdout.String(), "Records: 3 (3 valid, 0 invalid)")
}

func TestReadQuery(t *testing.T) {
	var out bytes.Buffer

	q, err := readQuery(strings.NewReader("  acgt  \nmore\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "acgt", q)

	q, err = readQuery(strings.NewReader("ACGT"), &out)
	require.NoError(t, err)
	assert.Equal(t, "ACGT", q)

	_, err = readQuery(strings.NewReader(""), &out)
	require.Error(t, err)
}

package catalog

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aria-lang/genematch/internal/scan"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const covidTSV = "GeneID\tSymbol\tsequence\n" +
	"43740568\tS\tATGTTTGTTTTTCTTGTT\n" +
	"43740575\tN\tatgtctgataatggacc\n" +
	"43740578\tORF1ab\t  ATGGAGAGCCTTGTC  \n"

func TestParseTSV(t *testing.T) {
	records, err := ParseTSV(strings.NewReader(covidTSV))
	require.NoError(t, err)

	assert.Equal(t, []scan.Record{
		{ID: "43740568", Bases: "ATGTTTGTTTTTCTTGTT"},
		{ID: "43740575", Bases: "atgtctgataatggacc"},
		{ID: "43740578", Bases: "ATGGAGAGCCTTGTC"},
	}, records)
}

func TestParseTSVColumnOrder(t *testing.T) {
	in := "sequence\tnote\tGeneID\nACGT\tx\tg1\nTTTT\t\tg2\n"

	records, err := ParseTSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, scan.Record{ID: "g1", Bases: "ACGT"}, records[0])
	assert.Equal(t, scan.Record{ID: "g2", Bases: "TTTT"}, records[1])
}

func TestParseTSVHeaderOnly(t *testing.T) {
	records, err := ParseTSV(strings.NewReader("GeneID\tsequence\n"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseTSVBOM(t *testing.T) {
	records, err := ParseTSV(strings.NewReader("\ufeffGeneID\tsequence\ng1\tACGT\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "g1", records[0].ID)
}

func TestParseTSVErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		missing string
	}{
		{"missing GeneID", "ID\tsequence\ng1\tACGT\n", IDColumn},
		{"missing sequence", "GeneID\tseq\ng1\tACGT\n", SequenceColumn},
		{"case matters", "geneid\tSequence\n", IDColumn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTSV(strings.NewReader(tt.input))
			require.Error(t, err)

			var colErr *MissingColumnError
			require.ErrorAs(t, err, &colErr)
			assert.Equal(t, tt.missing, colErr.Column)
		})
	}

	t.Run("empty input", func(t *testing.T) {
		_, err := ParseTSV(strings.NewReader(""))
		require.Error(t, err)
	})

	t.Run("ragged row", func(t *testing.T) {
		_, err := ParseTSV(strings.NewReader("GeneID\tsequence\ng1\tACGT\tEXTRA\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
	})
}

func TestParseFASTA(t *testing.T) {
	in := ">g1 spike protein\nATGC\nATGC\n\n>g2\nttaa\n>g3 empty\n"

	records, err := ParseFASTA(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []scan.Record{
		{ID: "g1", Bases: "ATGCATGC"},
		{ID: "g2", Bases: "ttaa"},
		{ID: "g3", Bases: ""},
	}, records)
}

func TestParseFASTAErrors(t *testing.T) {
	_, err := ParseFASTA(strings.NewReader("ACGT\n>g1\nACGT\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")

	_, err = ParseFASTA(strings.NewReader(">\nACGT\n"))
	require.Error(t, err)
}

func TestDetectFormat(t *testing.T) {
	tests := map[string]Format{
		"covid.tsv":         TSV,
		"covid.txt":         TSV,
		"refs.fa":           FASTA,
		"refs.FASTA":        FASTA,
		"refs.fna.gz":       FASTA,
		"catalog.tsv.gz":    TSV,
		"dir.fa/genes.tsv":  TSV,
		"no_extension_file": TSV,
	}
	for path, want := range tests {
		assert.Equal(t, want, DetectFormat(path), path)
	}
	assert.Equal(t, "fasta", FASTA.String())
	assert.Equal(t, "tsv", TSV.String())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("tsv", func(t *testing.T) {
		path := filepath.Join(dir, "covid.tsv")
		require.NoError(t, os.WriteFile(path, []byte(covidTSV), 0o644))

		c, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, path, c.Source)
		assert.Equal(t, TSV, c.Format)
		assert.Equal(t, 3, c.Len())
		assert.NotEqual(t, uuid.Nil, c.ID)
	})

	t.Run("gzip fasta", func(t *testing.T) {
		path := filepath.Join(dir, "refs.fa.gz")
		f, err := os.Create(path)
		require.NoError(t, err)
		zw := gzip.NewWriter(f)
		_, err = zw.Write([]byte(">g1\nACGT\n>g2\nGGCC\n"))
		require.NoError(t, err)
		require.NoError(t, zw.Close())
		require.NoError(t, f.Close())

		c, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, FASTA, c.Format)
		require.Equal(t, 2, c.Len())
		assert.Equal(t, "GGCC", c.Records[1].Bases)
	})

	t.Run("missing column names the file", func(t *testing.T) {
		path := filepath.Join(dir, "bad.tsv")
		require.NoError(t, os.WriteFile(path, []byte("Gene\tsequence\n"), 0o644))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), path)

		var colErr *MissingColumnError
		assert.ErrorAs(t, err, &colErr)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.tsv"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestLoadsGetDistinctIDs(t *testing.T) {
	a, err := Read(strings.NewReader(covidTSV), TSV)
	require.NoError(t, err)
	b, err := Read(strings.NewReader(covidTSV), TSV)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.Records, b.Records)
}

func TestCatalogSummary(t *testing.T) {
	c, err := Read(strings.NewReader(covidTSV), TSV)
	require.NoError(t, err)

	s, err := c.Summary()
	require.NoError(t, err)
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, 3, s.Valid)
	assert.Equal(t, 18, s.MaxLength)
}

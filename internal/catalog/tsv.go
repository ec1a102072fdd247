package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aria-lang/genematch/internal/scan"
)

// MissingColumnError is returned when a required TSV column is absent.
type MissingColumnError struct {
	Column string
	Header []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("required column %q not found in header %v", e.Column, e.Header)
}

// ParseTSV reads a tab-separated catalog. The first row is the header.
func ParseTSV(r io.Reader) ([]scan.Record, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("catalog is empty: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = strings.TrimSpace(h)
	}
	if len(cols) > 0 {
		cols[0] = strings.TrimPrefix(cols[0], "\ufeff")
	}

	idCol, seqCol := -1, -1
	for i, name := range cols {
		switch {
		case name == IDColumn && idCol < 0:
			idCol = i
		case name == SequenceColumn && seqCol < 0:
			seqCol = i
		}
	}
	if idCol < 0 {
		return nil, &MissingColumnError{Column: IDColumn, Header: cols}
	}
	if seqCol < 0 {
		return nil, &MissingColumnError{Column: SequenceColumn, Header: cols}
	}

	records := make([]scan.Record, 0)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading catalog: %w", err)
		}
		records = append(records, scan.Record{
			ID:    strings.TrimSpace(row[idCol]),
			Bases: strings.TrimSpace(row[seqCol]),
		})
	}

	return records, nil
}

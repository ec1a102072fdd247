package catalog

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/aria-lang/genematch/internal/scan"
)

// ParseFASTA reads a FASTA catalog. The first word of each header is the
// record ID.
func ParseFASTA(r io.Reader) ([]scan.Record, error) {
	records := make([]scan.Record, 0)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	var (
		currentID    string
		inRecord     bool
		currentBases strings.Builder
		lineNum      int
	)

	flush := func() {
		if inRecord {
			records = append(records, scan.Record{ID: currentID, Bases: currentBases.String()})
			currentBases.Reset()
		}
	}

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if len(line) == 0 || line[0] == ';' {
			continue
		}

		if line[0] == '>' {
			flush()
			fields := strings.Fields(line[1:])
			if len(fields) == 0 {
				return nil, fmt.Errorf("line %d: empty FASTA header", lineNum)
			}
			currentID = fields[0]
			inRecord = true
			continue
		}

		if !inRecord {
			return nil, fmt.Errorf("line %d: sequence data before first header", lineNum)
		}
		currentBases.WriteString(line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading FASTA: %w", err)
	}
	flush()

	return records, nil
}

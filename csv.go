package colfmt

import (
	"encoding/csv"
	"fmt"
	"io"
	"unicode/utf8"
)

// ParseDelimiter parses a delimiter flag value: exactly one character,
// with `\t` accepted as an escape for tab.
func ParseDelimiter(s string) (rune, error) {
	if s == `\t` {
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError {
		return 0, fmt.Errorf("%w: expected one character, got %q", ErrBadDelimiter, s)
	}
	return r, nil
}

// ReadRecords reads delimited text into rows of raw cells. Ragged input
// is tolerated: short rows are padded with empty cells to the widest row
// so that a later transpose into columns is total.
func ReadRecords(r io.Reader, delim rune) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}
	cols := 0
	for _, rec := range records {
		if len(rec) > cols {
			cols = len(rec)
		}
	}
	for i, rec := range records {
		for len(rec) < cols {
			rec = append(rec, "")
		}
		records[i] = rec
	}
	return records, nil
}

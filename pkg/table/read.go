package table

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/tabwrap/tabwrap/pkg/errors"
)

// ReadOptions configure how delimiter-separated input is turned into a
// table.
type ReadOptions struct {
	// Delimiter separates fields within a line.
	Delimiter string

	// DecodeEscapes enables echo -e style backslash escapes in fields.
	DecodeEscapes bool
}

// DefaultReadOptions returns the reader defaults: tab-delimited fields,
// no escape decoding.
func DefaultReadOptions() ReadOptions {
	return ReadOptions{Delimiter: "\t"}
}

// ReadFrom builds a string table from delimiter-separated lines. Rows
// with fewer fields than the widest row are padded with empty cells, so
// the result is always rectangular. An input with no lines, or whose
// every line is empty, yields an EMPTY_TABLE error.
func ReadFrom(r io.Reader, opts *ReadOptions) (*Table[string], error) {
	sep := opts.Delimiter
	if sep == "" {
		sep = "\t"
	}

	var rows [][]string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		var row []string
		if line != "" {
			row = strings.Split(line, sep)
			if opts.DecodeEscapes {
				for i, field := range row {
					decoded := decodeEscapes(field)
					if !utf8.ValidString(decoded) {
						return nil, errors.New(errors.ErrCodeInvalidInput,
							"decoded field %q is not valid UTF-8", field)
					}
					row[i] = decoded
				}
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read input")
	}

	maxFields := 0
	for _, row := range rows {
		if len(row) > maxFields {
			maxFields = len(row)
		}
	}
	if maxFields == 0 {
		return nil, errors.New(errors.ErrCodeEmptyTable, "the input table is empty")
	}

	cells := make([]string, 0, len(rows)*maxFields)
	for _, row := range rows {
		cells = append(cells, row...)
		for i := len(row); i < maxFields; i++ {
			cells = append(cells, "")
		}
	}
	return New(cells, len(rows))
}

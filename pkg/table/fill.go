package table

import (
	"strings"

	"github.com/tabwrap/tabwrap/pkg/errors"
	"github.com/tabwrap/tabwrap/pkg/textwrap"
)

// WrapTable wraps every cell of a row-major string table at the width
// of its column. The result maps each cell to its display lines.
func WrapTable(t *Table[string], widths []int, vw *textwrap.VarWidths) *Table[[]string] {
	nrows := t.NRows()
	wrapped := make([][]string, 0, t.NCells())
	for r := 0; r < nrows; r++ {
		for c, cell := range t.Row(r) {
			wrapped = append(wrapped, textwrap.Wrap(cell, vw.AtWidth(widths[c])))
		}
	}
	out, err := New(wrapped, nrows)
	if err != nil {
		// t was rectangular, so the wrapped table is too.
		panic(err)
	}
	return out
}

// EnsureRowWithinWidths reports the first cell in the given wrapped row
// whose lines exceed the corresponding column width. The row index is
// needed to prepare the error coordinate.
func EnsureRowWithinWidths(rowIdx int, wrappedRow [][]string, widths []int) error {
	for colIdx, cell := range wrappedRow {
		for _, line := range cell {
			if textwrap.Width(line) > widths[colIdx] {
				return errors.NewAt(errors.ErrCodeColumnTooNarrow, rowIdx, colIdx,
					"column is not wide enough at row=%d column=%d", rowIdx+1, colIdx+1)
			}
		}
	}
	return nil
}

// fillCell right-pads every line of a wrapped cell to width and appends
// blank lines until the cell is maxLines tall. maxLines is the height
// of the tallest cell in the row.
func fillCell(cell []string, width, maxLines int) []string {
	for i, line := range cell {
		if pad := width - textwrap.Width(line); pad > 0 {
			cell[i] = line + strings.Repeat(" ", pad)
		}
	}
	blank := strings.Repeat(" ", width)
	for len(cell) < maxLines {
		cell = append(cell, blank)
	}
	return cell
}

// FillTable pads a wrapped table in place so that, within each row,
// every cell has the same number of lines and every line is exactly its
// column's width. The table must be non-empty.
func FillTable(t *Table[[]string], widths []int) {
	for r := 0; r < t.NRows(); r++ {
		row := t.Row(r)
		maxLines := 0
		for _, cell := range row {
			if len(cell) > maxLines {
				maxLines = len(cell)
			}
		}
		for c := range row {
			row[c] = fillCell(row[c], widths[c], maxLines)
		}
	}
}

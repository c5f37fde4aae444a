package render

import (
	"strings"

	"github.com/tabwrap/tabwrap/pkg/table"
)

// Grid renders the table inside a full ASCII frame:
//
//	+------+----+
//	| name | id |
//	+======+====+
//	| ...  | 7  |
//	+------+----+
//
// With HeaderRule set, the rule below the first row is drawn with '='
// to mark it as a header.
type Grid struct {
	HeaderRule bool
}

// LayoutWidth accounts for "| " before every column, " " after it, and
// the closing "|": 3 cells per column plus one.
func (g *Grid) LayoutWidth(ncols int) int {
	return 3*ncols + 1
}

func (g *Grid) rule(widths []int, filler string) string {
	var b strings.Builder
	for _, w := range widths {
		b.WriteString("+")
		b.WriteString(strings.Repeat(filler, w+2))
	}
	b.WriteString("+\n")
	return b.String()
}

func (g *Grid) Render(t *table.Table[[]string], widths []int) string {
	rowRule := g.rule(widths, "-")
	var b strings.Builder
	b.WriteString(rowRule)
	for r := 0; r < t.NRows(); r++ {
		row := t.Row(r)
		// Filled cells share one height per row.
		height := len(row[0])
		for li := 0; li < height; li++ {
			for _, cell := range row {
				b.WriteString("| ")
				b.WriteString(cell[li])
				b.WriteString(" ")
			}
			b.WriteString("|\n")
		}
		if r == 0 && g.HeaderRule {
			b.WriteString(g.rule(widths, "="))
		} else {
			b.WriteString(rowRule)
		}
	}
	return b.String()
}

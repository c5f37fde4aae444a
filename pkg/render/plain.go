package render

import (
	"strings"

	"github.com/tabwrap/tabwrap/pkg/table"
)

// Plain renders the table without any frame, separating columns with
// two spaces and trimming trailing padding from each line.
type Plain struct{}

// LayoutWidth accounts for the two-space separator between adjacent
// columns.
func (p *Plain) LayoutWidth(ncols int) int {
	if ncols == 0 {
		return 0
	}
	return 2 * (ncols - 1)
}

func (p *Plain) Render(t *table.Table[[]string], widths []int) string {
	var b strings.Builder
	for r := 0; r < t.NRows(); r++ {
		row := t.Row(r)
		height := len(row[0])
		for li := 0; li < height; li++ {
			parts := make([]string, len(row))
			for c, cell := range row {
				parts[c] = cell[li]
			}
			b.WriteString(strings.TrimRight(strings.Join(parts, "  "), " "))
			b.WriteString("\n")
		}
	}
	return b.String()
}

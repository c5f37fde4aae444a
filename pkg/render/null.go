package render

import "github.com/tabwrap/tabwrap/pkg/table"

// Null is a renderer without decoration or output. It gives the
// planner a zero-overhead layout, which is handy when column widths are
// wanted without a rendered table.
type Null struct{}

func (Null) LayoutWidth(int) int { return 0 }

func (Null) Render(*table.Table[[]string], []int) string { return "" }

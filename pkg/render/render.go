// Package render turns a wrapped, filled table into its final textual
// form.
//
// A renderer contributes to width planning through LayoutWidth, which
// reports how many cells of the total width its decoration consumes,
// and consumes the planner's output through Render. Renderers assume
// the table has been filled: within each row every cell has the same
// number of lines and every line is padded to its column's width.
package render

import (
	"sort"

	"github.com/tabwrap/tabwrap/pkg/errors"
	"github.com/tabwrap/tabwrap/pkg/table"
)

// Renderer lays out a wrapped table as text.
type Renderer interface {
	// LayoutWidth returns the decoration width added around ncols
	// columns: borders, padding, separators.
	LayoutWidth(ncols int) int

	// Render returns the textual table, including a trailing newline.
	// widths must match the table's column count.
	Render(t *table.Table[[]string], widths []int) string
}

var layouts = map[string]func() Renderer{
	"grid":           func() Renderer { return &Grid{HeaderRule: true} },
	"grid_no_header": func() Renderer { return &Grid{} },
	"plain":          func() Renderer { return &Plain{} },
}

// New returns the renderer registered under name.
func New(name string) (Renderer, error) {
	mk, ok := layouts[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidLayout, "unknown layout %q", name)
	}
	return mk(), nil
}

// Names returns the registered layout names in sorted order.
func Names() []string {
	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

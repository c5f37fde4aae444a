// Package pkg provides the core libraries of tabwrap.
//
// # Overview
//
// Tabwrap formats delimiter-separated text as fixed-width, word-wrapped
// tables. The pkg directory is organized along the formatting pipeline:
//
//	stdin / file
//	     ↓
//	[table] package (read cells, transpose)
//	     ↓
//	[planner] package (assign column widths under a total-width budget)
//	     ↓
//	[table] package (wrap, validate, fill)
//	     ↓
//	[render] package (grid / plain layouts)
//	     ↓
//	stdout / file
//
// # Main Packages
//
// [table] - The rectangular cell container with in-place transpose, the
// delimiter-separated reader with echo -e style escape decoding, and the
// wrap/validate/fill helpers that prepare a table for rendering.
//
// [textwrap] - Word wrapping and display-width measurement on top of
// muesli/reflow, plus terminal-width detection.
//
// [planner] - The column-width optimizer: a dynamic program over the
// width budget whose transitions are resolved by bisection on wrap-cost
// totals, with a verified fallback scan. Minimizes the rendered table's
// total line count.
//
// [render] - Table layouts. Renderers report their decoration width to
// the planner and consume its widths.
//
// [pipeline] - Orchestration of read → plan → wrap → validate → fill →
// render, used by the CLI.
//
// [errors] - Coded structured errors shared by all packages.
//
// [observability] - Hook points for pipeline and planner instrumentation.
//
// # Quick Start
//
// Plan widths and render a table:
//
//	t, _ := table.ReadFrom(os.Stdin, &table.ReadOptions{Delimiter: "\t"})
//	vw := textwrap.NewVarWidths(textwrap.DefaultOptions())
//	r, _ := render.New("grid")
//
//	widths := make([]int, t.NCols())
//	for i := range widths {
//	    widths[i] = planner.Auto
//	}
//	t.Transpose()
//	widths, _ = planner.CompleteWidths(widths, 80, t, r, vw)
//	t.Transpose()
//
//	wrapped := table.WrapTable(t, widths, vw)
//	table.FillTable(wrapped, widths)
//	fmt.Print(r.Render(wrapped, widths))
//
// [table]: https://pkg.go.dev/github.com/tabwrap/tabwrap/pkg/table
// [textwrap]: https://pkg.go.dev/github.com/tabwrap/tabwrap/pkg/textwrap
// [planner]: https://pkg.go.dev/github.com/tabwrap/tabwrap/pkg/planner
// [render]: https://pkg.go.dev/github.com/tabwrap/tabwrap/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/tabwrap/tabwrap/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/tabwrap/tabwrap/pkg/errors
// [observability]: https://pkg.go.dev/github.com/tabwrap/tabwrap/pkg/observability
package pkg

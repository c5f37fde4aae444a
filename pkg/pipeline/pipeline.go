// Package pipeline orchestrates a complete formatting run: read the
// input table, plan column widths, wrap, validate, fill, render.
//
// The stages are pure library calls from pkg/table, pkg/planner and
// pkg/render; this package only sequences them, checks the context
// between stages, and reports stage events to the observability hooks.
package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tabwrap/tabwrap/pkg/errors"
	"github.com/tabwrap/tabwrap/pkg/observability"
	"github.com/tabwrap/tabwrap/pkg/planner"
	"github.com/tabwrap/tabwrap/pkg/render"
	"github.com/tabwrap/tabwrap/pkg/table"
	"github.com/tabwrap/tabwrap/pkg/textwrap"
)

// Options configure a formatting run.
type Options struct {
	// Layout is the renderer name, see render.Names.
	Layout string

	// Delimiter separates input fields. Empty means TAB.
	Delimiter string

	// DecodeEscapes enables echo -e style escapes in input fields.
	DecodeEscapes bool

	// Widths is the per-column width list; planner.Auto entries are
	// decided by the planner. A nil or short list is padded with Auto,
	// a long list is truncated, both with a warning.
	Widths []int

	// TotalWidth is the width budget of the rendered table. Negative
	// means the current terminal width.
	TotalWidth int

	// BreakWords hard-breaks words longer than their column.
	BreakWords bool

	// Strict turns cell-overflow warnings after wrapping into errors.
	Strict bool
}

// DefaultOptions returns the CLI defaults: tab-delimited input, frame
// without header rule, terminal-wide output, all widths planned.
func DefaultOptions() Options {
	return Options{
		Layout:     "grid_no_header",
		TotalWidth: -1,
	}
}

// Runner executes formatting runs with a fixed logger and options.
type Runner struct {
	log  *log.Logger
	opts Options
}

// New creates a Runner. A nil logger defaults to the package default
// logger.
func New(logger *log.Logger, opts Options) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{log: logger, opts: opts}
}

// stage runs one named pipeline stage, bailing out if the context is
// already done.
func (r *Runner) stage(ctx context.Context, name string, f func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	hooks := observability.Pipeline()
	hooks.OnStageStart(ctx, name)
	start := time.Now()
	err := f()
	hooks.OnStageEnd(ctx, name, err)
	r.log.Debug("stage finished", "stage", name, "duration", time.Since(start))
	return err
}

// normalizeWidths fits the configured width list to the table's column
// count: missing entries become Auto, surplus entries are dropped.
func (r *Runner) normalizeWidths(ncols int) []int {
	widths := make([]int, ncols)
	for i := range widths {
		widths[i] = planner.Auto
	}
	n := copy(widths, r.opts.Widths)
	if len(r.opts.Widths) > ncols {
		r.log.Warn("ignoring surplus width entries", "given", len(r.opts.Widths), "columns", ncols)
	} else if r.opts.Widths != nil && n < ncols {
		r.log.Warn("width list is shorter than the table, remaining columns are planned",
			"given", len(r.opts.Widths), "columns", ncols)
	}
	return widths
}

// Run reads a table from in and writes the rendered result to out.
func (r *Runner) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	renderer, err := render.New(r.opts.Layout)
	if err != nil {
		return err
	}
	vw := textwrap.NewVarWidths(textwrap.Options{
		KeepNewlines: true,
		BreakWords:   r.opts.BreakWords,
	})

	var t *table.Table[string]
	if err := r.stage(ctx, "read", func() error {
		readOpts := table.ReadOptions{
			Delimiter:     r.opts.Delimiter,
			DecodeEscapes: r.opts.DecodeEscapes,
		}
		if readOpts.Delimiter == "" {
			readOpts.Delimiter = "\t"
		}
		t, err = table.ReadFrom(in, &readOpts)
		return err
	}); err != nil {
		return err
	}
	r.log.Debug("table read", "rows", t.NRows(), "columns", t.NCols())

	var widths []int
	if err := r.stage(ctx, "plan", func() error {
		widths = r.normalizeWidths(t.NCols())
		t.Transpose()
		widths, err = planner.CompleteWidths(widths, r.opts.TotalWidth, t, renderer, vw)
		t.Transpose()
		return err
	}); err != nil {
		return err
	}
	r.log.Debug("widths planned", "widths", widths)

	var wrapped *table.Table[[]string]
	if err := r.stage(ctx, "wrap", func() error {
		wrapped = table.WrapTable(t, widths, vw)
		return nil
	}); err != nil {
		return err
	}

	if err := r.stage(ctx, "validate", func() error {
		for rowIdx := 0; rowIdx < wrapped.NRows(); rowIdx++ {
			if err := table.EnsureRowWithinWidths(rowIdx, wrapped.Row(rowIdx), widths); err != nil {
				if r.opts.Strict {
					return err
				}
				if cell, ok := errors.CellOf(err); ok {
					r.log.Warn("cell is wider than its column",
						"row", cell.Row+1, "column", cell.Col+1)
				}
			}
		}
		return nil
	}); err != nil {
		return err
	}

	return r.stage(ctx, "render", func() error {
		table.FillTable(wrapped, widths)
		if _, err := io.WriteString(out, renderer.Render(wrapped, widths)); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "write output")
		}
		return nil
	})
}

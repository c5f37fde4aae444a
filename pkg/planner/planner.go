// Package planner assigns widths to table columns so that the rendered
// table is as short as possible.
//
// The input is a column-major string table, a width list in which some
// entries are user-fixed and the rest are [Auto], and a total width the
// rendered table must not exceed. After subtracting the fixed widths
// and the layout decoration, the remaining budget is distributed over
// the undecided columns by dynamic programming: dp(w, k) is the minimal
// per-row line-count vector achievable when the first k undecided
// columns share exactly w cells of width. Each transition is resolved
// by bisection on scalar totals with a verified-or-corrected fallback,
// rather than by scanning every split.
package planner

import (
	"slices"

	"github.com/tabwrap/tabwrap/pkg/errors"
	"github.com/tabwrap/tabwrap/pkg/observability"
	"github.com/tabwrap/tabwrap/pkg/table"
	"github.com/tabwrap/tabwrap/pkg/textwrap"
)

// Auto marks a width entry the planner should decide. Any nonnegative
// entry is treated as user-fixed, including zero.
const Auto = -1

// Layout reports the fixed decoration width a renderer adds around the
// columns, such as borders and padding.
type Layout interface {
	// LayoutWidth returns the total decoration width for a table with
	// ncols columns.
	LayoutWidth(ncols int) int
}

// CompleteWidths replaces every [Auto] entry of userWidths with a
// planned width and returns the completed list. Fixed entries are
// passed through untouched, so a list without Auto entries is returned
// as-is (modulo cloning). transposed is the column-major table:
// Row(i) of it is column i of the user-visible table.
//
// A negative totalWidth means the current terminal width.
func CompleteWidths(userWidths []int, totalWidth int, transposed *table.Table[string], layout Layout, vw *textwrap.VarWidths) ([]int, error) {
	ncols := transposed.NRows()
	nrows := transposed.NCols()
	if len(userWidths) != ncols {
		return nil, errors.New(errors.ErrCodeWidthsMismatch,
			"width list has %d entries but the table has %d columns", len(userWidths), ncols)
	}

	var undecided []int
	fixed := 0
	for c, w := range userWidths {
		if w == Auto {
			undecided = append(undecided, c)
		} else {
			fixed += w
		}
	}
	if len(undecided) == 0 {
		return slices.Clone(userWidths), nil
	}

	if totalWidth < 0 {
		totalWidth = textwrap.TermWidth()
	}
	overhead := layout.LayoutWidth(ncols)
	budget := totalWidth - overhead - fixed
	if budget < 0 {
		return nil, errors.New(errors.ErrCodeTableTooNarrow,
			"total width %d cannot fit %d cells of fixed columns plus %d cells of layout decoration",
			totalWidth, fixed, overhead)
	}

	// Fold the fixed columns into the DP baseline. Their cost is
	// evaluated once; content wider than a user-fixed width is a
	// reportable condition, not a search dead end, so it is surfaced
	// here with its coordinate.
	base := zeroVector(nrows)
	for c, w := range userWidths {
		if w == Auto {
			continue
		}
		if row, over := overflowCell(transposed.Row(c), vw, w); over {
			return nil, errors.NewAt(errors.ErrCodeColumnTooNarrow, row, c,
				"column is not wide enough at row=%d column=%d", row+1, c+1)
		}
		cost := columnCost(transposed.Row(c), vw, w, true)
		base.maxWith(&cost)
	}

	s := newSearch(transposed, vw, nrows, budget, len(undecided), base)
	for n, colIdx := range undecided {
		first := n == 0
		for w := 0; w <= budget; w++ {
			c, d := s.step(w, colIdx, first)
			s.next[w] = c
			s.decisions[n*(budget+1)+w] = d
		}
		s.memo, s.next = s.next, s.memo
		observability.Planner().OnColumnPlanned(colIdx, s.evals)
	}

	if s.memo[budget].isInf() {
		return nil, errors.New(errors.ErrCodeColumnTooNarrow,
			"%d cells of width do not fit the %d undecided columns", budget, len(undecided))
	}

	// Walk the decisions back from the full budget. Every state on the
	// optimal path is finite, so every decision read here was set.
	chosen := make([]int, len(undecided))
	w := budget
	for n := len(undecided) - 1; n >= 0; n-- {
		d := s.decisions[n*(budget+1)+w]
		if d == noDecision {
			panic("planner: backtrack read an unset decision")
		}
		chosen[n] = d
		w -= d
	}

	out := slices.Clone(userWidths)
	for n, colIdx := range undecided {
		out[colIdx] = chosen[n]
	}
	return out, nil
}

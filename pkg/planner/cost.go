package planner

import (
	"math"
	"slices"

	"github.com/tabwrap/tabwrap/pkg/textwrap"
)

// infTotal is the scalar total of an infinite cost vector. It is never
// summed into anything; comparisons against it are exact.
const infTotal = math.MaxInt

// costVector holds the number of wrapped lines each row of a column (or
// column group) takes under a particular width assignment. A vector is
// either entirely finite or flagged infinite as a whole; the infinite
// state marks an assignment under which some cell cannot fit, and is a
// tag rather than a numeric sentinel so that totals never overflow.
type costVector struct {
	lines []int
	inf   bool
}

func infVector() costVector {
	return costVector{inf: true}
}

func zeroVector(nrows int) costVector {
	return costVector{lines: make([]int, nrows)}
}

func (v *costVector) isInf() bool { return v.inf }

func (v *costVector) clone() costVector {
	if v.inf {
		return infVector()
	}
	return costVector{lines: slices.Clone(v.lines)}
}

// maxWith folds other into v element-wise. The element-wise max models
// that a row's printed height is its tallest cell. Infinity absorbs.
func (v *costVector) maxWith(other *costVector) {
	if v.inf {
		return
	}
	if other.inf {
		v.lines = nil
		v.inf = true
		return
	}
	for i, y := range other.lines {
		if y > v.lines[i] {
			v.lines[i] = y
		}
	}
}

// total returns the total number of wrapped lines, or infTotal for the
// infinite state.
func (v *costVector) total() int {
	if v.inf {
		return infTotal
	}
	sum := 0
	for _, x := range v.lines {
		sum += x
	}
	return sum
}

// columnCost wraps every cell of a column at the given width and
// returns the per-row line counts. When the width was generated during
// search (userDefined false), any wrapped line wider than the column
// collapses the whole result to infinity, excluding the candidate from
// the minimization. A user-fixed width is never masked; the caller
// surfaces overflow with its coordinate instead.
func columnCost(col []string, vw *textwrap.VarWidths, width int, userDefined bool) costVector {
	counts := make([]int, len(col))
	for i, cell := range col {
		lineWidths := textwrap.LineWidths(cell, vw.AtWidth(width))
		if !userDefined {
			for _, lw := range lineWidths {
				if lw > width {
					return infVector()
				}
			}
		}
		counts[i] = len(lineWidths)
	}
	return costVector{lines: counts}
}

// overflowCell returns the first row of the column whose content cannot
// fit within width, for diagnosing user-fixed columns.
func overflowCell(col []string, vw *textwrap.VarWidths, width int) (int, bool) {
	for row, cell := range col {
		for _, lw := range textwrap.LineWidths(cell, vw.AtWidth(width)) {
			if lw > width {
				return row, true
			}
		}
	}
	return 0, false
}

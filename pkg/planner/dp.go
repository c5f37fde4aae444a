package planner

import (
	"github.com/tabwrap/tabwrap/pkg/table"
	"github.com/tabwrap/tabwrap/pkg/textwrap"
)

// noDecision marks a DP boundary state that holds no width assignment.
// Backtracking must never read one; doing so indicates a defect in the
// recurrence and aborts loudly.
const noDecision = -1

// search carries the rolling state of the width DP for one planner
// invocation. dp(w, k) is the minimal cost vector achievable by the
// first k undecided columns using exactly w width; since dp(_, k)
// depends only on dp(_, k-1), two alternating buffers indexed by budget
// suffice. The decision table is kept whole for backtracking.
type search struct {
	transposed *table.Table[string]
	vw         *textwrap.VarWidths
	nrows      int
	budget     int

	// base is dp(_, 0): the fixed columns' folded contribution.
	base costVector

	// memo holds dp(w, k-1) and next receives dp(w, k); they swap
	// after each column.
	memo []costVector
	next []costVector

	// decisions is a flat arena indexed by n*(budget+1)+w, where n is
	// the position among undecided columns.
	decisions []int

	evals     int // cost evaluations performed
	fallbacks int // bisection states that needed the local scan
}

func newSearch(transposed *table.Table[string], vw *textwrap.VarWidths, nrows, budget, undecided int, base costVector) *search {
	return &search{
		transposed: transposed,
		vw:         vw,
		nrows:      nrows,
		budget:     budget,
		base:       base,
		memo:       make([]costVector, budget+1),
		next:       make([]costVector, budget+1),
		decisions:  make([]int, undecided*(budget+1)),
	}
}

// cost evaluates the wrap cost of a column at the given width.
func (s *search) cost(colIdx, width int, userDefined bool) costVector {
	s.evals++
	return columnCost(s.transposed.Row(colIdx), s.vw, width, userDefined)
}

// step computes dp(w, k) for the undecided column colIdx and returns
// the cost vector together with the width decision taken. first marks
// the base transition, where the previous layer is the fixed-column
// baseline and the only possible split gives the column all of w.
func (s *search) step(w, colIdx int, first bool) (costVector, int) {
	if w == 0 {
		// No budget left for a remaining column.
		return infVector(), noDecision
	}
	if first {
		nl := s.cost(colIdx, w, false)
		nl.maxWith(&s.base)
		return nl, w
	}
	return s.bisectStep(w, colIdx)
}

// bruteStep is the exhaustive reference transition: scan every split
// i in [1, w] and keep the first minimal total. It is the ground truth
// the bisection step is differentially tested against.
func (s *search) bruteStep(w, colIdx int) (costVector, int) {
	var best costVector
	bestWidth := noDecision
	bestTotal := -1
	for i := 1; i <= w; i++ {
		prev := &s.memo[w-i]
		var cand costVector
		if prev.isInf() {
			// The result is infinite regardless of the column cost.
			cand = infVector()
		} else {
			cand = s.cost(colIdx, i, false)
			cand.maxWith(prev)
		}
		if bestTotal == -1 || cand.total() < bestTotal {
			best, bestWidth, bestTotal = cand, i, cand.total()
		}
	}
	return best, bestWidth
}

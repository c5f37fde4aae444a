package planner

import "github.com/tabwrap/tabwrap/pkg/observability"

// tightness classifies the scalar lower bound of a combined DP state.
type tightness int

const (
	// tightInf: at least one side is infinite, so the bound is trivially
	// tight and the state is infinite.
	tightInf tightness = iota
	// tightYes: the bound equals the combined total; the state is exact.
	tightYes
	// tightNo: the totals agree with neither side; the element-wise max
	// exceeded the bound row by row.
	tightNo
)

// lowerBound combines a previous DP vector with a column cost vector
// and reports whether max(prev.total(), nl.total()) is a tight bound on
// the combined total. The combined vector is returned for reuse; it is
// meaningless when the result is tightInf.
func lowerBound(prev, nl *costVector) (costVector, tightness) {
	if prev.isInf() || nl.isInf() {
		return costVector{}, tightInf
	}
	lb := max(prev.total(), nl.total())
	dp := prev.clone()
	dp.maxWith(nl)
	if dp.total() == lb {
		return dp, tightYes
	}
	return dp, tightNo
}

// bisectStep computes dp(w, k) without scanning every split. As the
// column width i grows, the column cost total is non-increasing while
// dp(w-i) is non-decreasing, so their pointwise max is a valley around
// the crossing point. The step runs in three phases: search the
// crossing by bisection on scalar totals, verify the scalar lower bound
// is tight there, and if not, correct by a bounded outward scan.
func (s *search) bisectStep(w, colIdx int) (costVector, int) {
	// Cost evaluations performed during this state, memoized by width
	// so no candidate is ever wrapped twice.
	nls := make([]*costVector, w+1)
	costAt := func(i int) *costVector {
		if nls[i] == nil {
			c := s.cost(colIdx, i, false)
			nls[i] = &c
		}
		return nls[i]
	}

	// Search phase: find the largest i in [0, w] where dp(w-i) has not
	// yet overtaken cost(i), using totals only.
	lo, hi := 0, w
	for lo < hi {
		i := lo + (hi-lo+1)/2
		prev := &s.memo[w-i]
		if prev.isInf() {
			hi = i - 1
			continue
		}
		nl := costAt(i)
		if nl.isInf() || prev.total() <= nl.total() {
			lo = i
		} else {
			hi = i - 1
		}
	}

	// The crossing lies at lo or lo+1; infinite sides there mean every
	// split is infinite.
	prev := &s.memo[w-lo]
	if prev.isInf() {
		return infVector(), lo
	}
	approx := lo
	nl := costAt(lo)
	if nl.isInf() {
		if lo == w {
			return infVector(), lo
		}
		if s.memo[w-lo-1].isInf() {
			return infVector(), lo + 1
		}
		approx = lo + 1
	} else if lo < w {
		prevPlus := &s.memo[w-lo-1]
		if !prevPlus.isInf() {
			nlPlus := costAt(lo + 1)
			if max(prevPlus.total(), nlPlus.total()) < max(prev.total(), nl.total()) {
				approx = lo + 1
			}
		}
	}

	// Verify phase.
	cand, t := lowerBound(&s.memo[w-approx], costAt(approx))
	switch t {
	case tightInf:
		// approx was chosen with both sides finite.
		panic("planner: bisection landed on an infinite split")
	case tightYes:
		return cand, approx
	}

	// Correct phase: totals of two vectors can agree while their
	// element-wise max differs row by row, so the bound may be loose.
	// Scan outward from approx, downward then upward, tracking the best
	// total seen; each direction stops as soon as tightness is
	// recovered, which is guaranteed once a side goes infinite.
	best, bestWidth, bestTotal := cand, approx, cand.total()
	scanned := 0
	probe := func(i int) bool {
		scanned++
		dp, t := lowerBound(&s.memo[w-i], costAt(i))
		if t == tightInf {
			return true
		}
		if dp.total() < bestTotal {
			best, bestWidth, bestTotal = dp, i, dp.total()
		}
		return t == tightYes
	}
	for i := approx - 1; i >= 0; i-- {
		if probe(i) {
			break
		}
	}
	for i := approx + 1; i <= w; i++ {
		if probe(i) {
			break
		}
	}
	s.fallbacks++
	observability.Planner().OnBisectFallback(colIdx, w, scanned)
	return best, bestWidth
}

// Package table provides the flat two-dimensional cell container shared
// by the input reader, the width planner, and the renderers.
//
// A [Table] stores its cells in one contiguous slice in row-major order,
// giving O(1) cell addressing and cheap row slicing. Transposing swaps
// the roles of rows and columns by physically reordering the backing
// slice, so a transposed table of strings is a column-major view of the
// original: Row(i) of the transposed table is column i of the original.
// The planner works on such a transposed table; the renderers work on
// the row-major original.
package table

import (
	"github.com/tabwrap/tabwrap/pkg/errors"
)

// Table is a rectangular grid of cells backed by a flat slice.
// The zero value is not usable; construct with [New].
type Table[T any] struct {
	cells []T
	nrows int
}

// New constructs a table from a flat row-major cell slice. The number
// of cells must be a positive multiple of nrows.
func New[T any](cells []T, nrows int) (*Table[T], error) {
	if nrows <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "row count must be positive, got %d", nrows)
	}
	if len(cells)%nrows != 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"cell count %d is not divisible by row count %d", len(cells), nrows)
	}
	return &Table[T]{cells: cells, nrows: nrows}, nil
}

// NRows returns the number of rows.
func (t *Table[T]) NRows() int { return t.nrows }

// NCells returns the number of cells.
func (t *Table[T]) NCells() int { return len(t.cells) }

// NCols returns the number of columns.
func (t *Table[T]) NCols() int { return len(t.cells) / t.nrows }

// Get returns the cell at (row, col) and whether the coordinate is in
// range.
func (t *Table[T]) Get(row, col int) (T, bool) {
	var zero T
	if row < 0 || row >= t.nrows || col < 0 || col >= t.NCols() {
		return zero, false
	}
	return t.cells[row*t.NCols()+col], true
}

// Row returns the cells of the given row as a slice view into the
// table, or nil if row is out of range. Mutating the returned slice
// mutates the table.
func (t *Table[T]) Row(row int) []T {
	if row < 0 || row >= t.nrows {
		return nil
	}
	ncols := t.NCols()
	return t.cells[row*ncols : (row+1)*ncols]
}

// Cells returns the backing slice in row-major order.
func (t *Table[T]) Cells() []T { return t.cells }

// Transpose swaps rows and columns in place by reordering the backing
// slice. The cell at (r, c) moves to flat index c*nrows + r, which is
// (c, r) in the transposed shape. Runs in O(n) cells with one scratch
// slice; transposing twice restores the original table.
func (t *Table[T]) Transpose() {
	nrows, ncols := t.nrows, t.NCols()
	scratch := make([]T, len(t.cells))
	for r := 0; r < nrows; r++ {
		for c := 0; c < ncols; c++ {
			scratch[c*nrows+r] = t.cells[r*ncols+c]
		}
	}
	copy(t.cells, scratch)
	t.nrows = ncols
}

// SPDX-License-Identifier: MIT

// Package matrix - Mask: a Dense with an explicit "missing" bit per cell.
//
// Purpose:
//   - Replace NaN-as-missing arithmetic with an explicit sentinel.
//   - Provide the mask-aware folds the engines need (row/column sums, counts)
//     so "sum ignoring missing" is spelled out instead of implied.
//
// Determinism:
//   - Folds iterate i→j in fixed order; the same Mask always yields the same sums.

package matrix

import "fmt"

// Mask pairs a Dense value buffer with a per-cell missing flag.
// A missing cell reads as (0, false) from Value and is skipped by every fold.
type Mask struct {
	vals    *Dense
	missing []bool // len == r*c, row-major, true = missing
}

// NewMask allocates an r×c Mask with every cell missing.
func NewMask(rows, cols int) (*Mask, error) {
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	miss := make([]bool, rows*cols)
	for k := range miss {
		miss[k] = true
	}

	return &Mask{vals: d, missing: miss}, nil
}

// Rows returns the number of rows.
func (m *Mask) Rows() int { return m.vals.r }

// Cols returns the number of columns.
func (m *Mask) Cols() int { return m.vals.c }

// Value returns the cell value and whether it is present.
// Out-of-range indices read as missing.
func (m *Mask) Value(i, j int) (float64, bool) {
	if i < 0 || i >= m.vals.r || j < 0 || j >= m.vals.c {
		return 0, false
	}
	k := i*m.vals.c + j
	if m.missing[k] {
		return 0, false
	}

	return m.vals.data[k], true
}

// Present reports whether (i,j) holds a value.
func (m *Mask) Present(i, j int) bool {
	_, ok := m.Value(i, j)
	return ok
}

// Set stores v at (i,j) and marks the cell present.
func (m *Mask) Set(i, j int, v float64) error {
	if err := m.vals.Set(i, j, v); err != nil {
		return fmt.Errorf("Mask: %w", err)
	}
	m.missing[i*m.vals.c+j] = false

	return nil
}

// Clear marks (i,j) missing; its stored value is reset to 0.
func (m *Mask) Clear(i, j int) error {
	if i < 0 || i >= m.vals.r || j < 0 || j >= m.vals.c {
		return denseErrorf("Clear", i, j, ErrOutOfRange)
	}
	k := i*m.vals.c + j
	m.vals.data[k] = 0
	m.missing[k] = true

	return nil
}

// RowSums returns Σ_j v(i,j) over present cells of each row.
func (m *Mask) RowSums() []float64 {
	r, c := m.vals.r, m.vals.c
	out := make([]float64, r)
	var i, j int
	for i = 0; i < r; i++ {
		off := i * c
		for j = 0; j < c; j++ {
			if !m.missing[off+j] {
				out[i] += m.vals.data[off+j]
			}
		}
	}

	return out
}

// ColSums returns Σ_i v(i,j) over present cells of each column.
func (m *Mask) ColSums() []float64 {
	r, c := m.vals.r, m.vals.c
	out := make([]float64, c)
	var i, j int
	for i = 0; i < r; i++ {
		off := i * c
		for j = 0; j < c; j++ {
			if !m.missing[off+j] {
				out[j] += m.vals.data[off+j]
			}
		}
	}

	return out
}

// RowCounts returns the number of present cells in each row.
func (m *Mask) RowCounts() []int {
	r, c := m.vals.r, m.vals.c
	out := make([]int, r)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if !m.missing[i*c+j] {
				out[i]++
			}
		}
	}

	return out
}

// MatVec returns y[i] = Σ_j v(i,j)·x[j] over present cells.
// len(x) must equal Cols(); otherwise ErrDimensionMismatch.
func (m *Mask) MatVec(x []float64) ([]float64, error) {
	r, c := m.vals.r, m.vals.c
	if len(x) != c {
		return nil, fmt.Errorf("Mask.MatVec: len(x)=%d, cols=%d: %w", len(x), c, ErrDimensionMismatch)
	}
	out := make([]float64, r)
	var i, j int
	for i = 0; i < r; i++ {
		off := i * c
		for j = 0; j < c; j++ {
			if !m.missing[off+j] {
				out[i] += m.vals.data[off+j] * x[j]
			}
		}
	}

	return out, nil
}

// Transpose returns a new Mask with cells (and presence bits) mirrored.
func (m *Mask) Transpose() *Mask {
	r, c := m.vals.r, m.vals.c
	t := &Mask{
		vals:    &Dense{r: c, c: r, data: make([]float64, r*c)},
		missing: make([]bool, r*c),
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			t.vals.data[j*r+i] = m.vals.data[i*c+j]
			t.missing[j*r+i] = m.missing[i*c+j]
		}
	}

	return t
}

// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Offer RowView for hot loops in the engines; mutations through a view reflect in the base.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); RowView: O(1); SwapSymmetric: O(n).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"      // method tag used in error wrappers
	ctxSet     = "Set"     // method tag used in error wrappers
	ctxRowView = "RowView" // method tag used in error wrappers
	ctxSwap    = "Swap"    // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//   - Stage 1: format "Dense.<method>(row,col): %w".
//   - Stage 2: return wrapped error; the sentinel survives for errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is the read-only surface shared by Dense and derived views.
// Engines accept Matrix where they only read values.
type Matrix interface {
	Rows() int
	Cols() int
	At(row, col int) (float64, error)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (>0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewSquare creates an n×n zero matrix. It is a thin alias of NewDense.
func NewSquare(n int) (*Dense, error) {
	return NewDense(n, n)
}

// FromRows copies a slice-of-rows literal into a new Dense.
//
// Implementation:
//   - Stage 1: reject empty input (ErrInvalidDimensions) and ragged rows (ErrRagged).
//   - Stage 2: reject NaN/±Inf (ErrNaNInf) while copying row by row.
//
// Behavior highlights:
//   - The caller's slices are never retained; later edits to rows do not leak in.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	d := &Dense{r: r, c: c, data: make([]float64, r*c)}
	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("FromRows: row %d has %d columns, want %d: %w", i, len(rows[i]), c, ErrRagged)
		}
		for j = 0; j < c; j++ {
			v := rows[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, denseErrorf(ctxSet, i, j, ErrNaNInf)
			}
			d.data[i*c+j] = v
		}
	}

	return d, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col). NaN and ±Inf are rejected with ErrNaNInf.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// RowView returns row i as a slice aliasing the backing buffer.
// Writes through the view mutate m; use Clone first when m must stay intact.
// Complexity: O(1).
func (m *Dense) RowView(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRowView, i, 0, ErrOutOfRange)
	}

	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c], nil
}

// ToRows materializes m as a fresh slice of rows.
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() *Dense {
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// SwapSymmetric exchanges rows i and j and then columns i and j, i.e. it
// applies the transposition (i j) to both axes of a square matrix.
// Reordering searches use it to move an agent without touching any other pair.
//
// Complexity: O(n).
func (m *Dense) SwapSymmetric(i, j int) error {
	if m.r != m.c {
		return fmt.Errorf("SwapSymmetric: %w", ErrNonSquare)
	}
	if i < 0 || i >= m.r || j < 0 || j >= m.r {
		return denseErrorf(ctxSwap, i, j, ErrOutOfRange)
	}
	if i == j {
		return nil
	}
	n := m.c
	// Stage 1: swap rows i and j.
	ri := m.data[i*n : (i+1)*n]
	rj := m.data[j*n : (j+1)*n]
	for k := 0; k < n; k++ {
		ri[k], rj[k] = rj[k], ri[k]
	}
	// Stage 2: swap columns i and j.
	for k := 0; k < n; k++ {
		off := k * n
		m.data[off+i], m.data[off+j] = m.data[off+j], m.data[off+i]
	}

	return nil
}

// String implements fmt.Stringer for easy debugging.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			sb.WriteString(fmt.Sprintf("%g", m.data[i*m.c+j]))
			if j < m.c-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

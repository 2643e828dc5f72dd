// SPDX-License-Identifier: MIT

// Package matrix - element-wise kernels over Dense.
//
// Contract:
//   - Every kernel allocates a fresh result; inputs are never written.
//   - Shapes are validated up front (ErrDimensionMismatch / ErrNonSquare).
//   - Loops run i→j in row-major order.

package matrix

import "fmt"

// Transpose returns Aᵀ as a new Dense.
// Complexity: O(r*c).
func Transpose(a *Dense) (*Dense, error) {
	if a == nil {
		return nil, fmt.Errorf("Transpose: %w", ErrNilMatrix)
	}
	out := &Dense{r: a.c, c: a.r, data: make([]float64, len(a.data))}
	var i, j int
	for i = 0; i < a.r; i++ {
		for j = 0; j < a.c; j++ {
			out.data[j*a.r+i] = a.data[i*a.c+j]
		}
	}

	return out, nil
}

// Sub returns A - B.
// Complexity: O(r*c).
func Sub(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("Sub: %w", ErrNilMatrix)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, fmt.Errorf("Sub: %w", err)
	}
	out := &Dense{r: a.r, c: a.c, data: make([]float64, len(a.data))}
	for k := range a.data {
		out.data[k] = a.data[k] - b.data[k]
	}

	return out, nil
}

// ClampMin returns a copy of A with every entry below lo raised to lo.
// ClampMin(Sub(M, Mᵀ), 0) yields the net-wins matrix max(0, Mij-Mji).
func ClampMin(a *Dense, lo float64) (*Dense, error) {
	if a == nil {
		return nil, fmt.Errorf("ClampMin: %w", ErrNilMatrix)
	}
	out := a.Clone()
	for k, v := range out.data {
		if v < lo {
			out.data[k] = lo
		}
	}

	return out, nil
}

// RowSums returns Σ_j A[i][j] for each row.
func RowSums(a *Dense) []float64 {
	out := make([]float64, a.r)
	var i, j int
	for i = 0; i < a.r; i++ {
		for j = 0; j < a.c; j++ {
			out[i] += a.data[i*a.c+j]
		}
	}

	return out
}

// ColSums returns Σ_i A[i][j] for each column.
func ColSums(a *Dense) []float64 {
	out := make([]float64, a.c)
	var i, j int
	for i = 0; i < a.r; i++ {
		for j = 0; j < a.c; j++ {
			out[j] += a.data[i*a.c+j]
		}
	}

	return out
}

// OffDiagonalSum returns Σ A[i][j] over i≠j of a square matrix.
func OffDiagonalSum(a *Dense) (float64, error) {
	if err := ValidateSquare(a); err != nil {
		return 0, err
	}
	var s float64
	var i, j int
	for i = 0; i < a.r; i++ {
		for j = 0; j < a.c; j++ {
			if i != j {
				s += a.data[i*a.c+j]
			}
		}
	}

	return s, nil
}

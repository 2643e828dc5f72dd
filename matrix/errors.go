// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every exported function returns these sentinels (possibly wrapped
// with call-site context) and tests check them via errors.Is.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX) when
// context is essential; callers still match with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrRagged signals that row slices handed to FromRows differ in length.
	ErrRagged = errors.New("matrix: rows have different lengths")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegative signals a negative entry where counts are required.
	ErrNegative = errors.New("matrix: negative entry")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for the checks every
//    dominance matrix must pass before an engine touches it.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    match with errors.Is and still see which guard fired.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Square → Finite → NonNegative).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil, including a typed nil *Dense.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrNonSquare if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf anywhere in m.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	r, c := m.Rows(), m.Cols()
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf(fmt.Sprintf("ValidateFinite(%d,%d)", i, j), ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateNonNegative rejects any negative entry.
// NaN compares false against 0 and is left to ValidateFinite.
// Complexity: O(r*c).
func ValidateNonNegative(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	r, c := m.Rows(), m.Cols()
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			if v < 0 {
				return validatorErrorf(fmt.Sprintf("ValidateNonNegative(%d,%d)", i, j), ErrNegative)
			}
		}
	}

	return nil
}

// ValidateCounts is the composite guard for interaction-count matrices:
// NotNil → Square → Finite → NonNegative.
func ValidateCounts(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if err := ValidateFinite(m); err != nil {
		return err
	}

	return ValidateNonNegative(m)
}

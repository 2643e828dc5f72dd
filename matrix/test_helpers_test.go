// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hierarchia/matrix"
)

// MustFromRows builds a Dense from literal rows or fails the test.
func MustFromRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	d, err := matrix.FromRows(rows)
	require.NoError(tb, err)

	return d
}

// MustAt reads (i,j) or fails the test.
func MustAt(tb testing.TB, m matrix.Matrix, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

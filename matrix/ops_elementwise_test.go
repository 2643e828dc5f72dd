// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hierarchia/matrix"
)

func TestNetWins(t *testing.T) {
	t.Parallel()
	m := MustFromRows(t, [][]float64{
		{0, 3, 1},
		{1, 0, 4},
		{1, 0, 0},
	})
	mt, err := matrix.Transpose(m)
	require.NoError(t, err)
	diff, err := matrix.Sub(m, mt)
	require.NoError(t, err)
	net, err := matrix.ClampMin(diff, 0)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{
		{0, 2, 0},
		{0, 0, 4},
		{0, 0, 0},
	}, net.ToRows())
	// Inputs untouched.
	assert.Equal(t, 3.0, MustAt(t, m, 0, 1))
	assert.Equal(t, -2.0, MustAt(t, diff, 1, 0))
}

func TestSums(t *testing.T) {
	t.Parallel()
	m := MustFromRows(t, [][]float64{{5, 1}, {2, 7}})
	assert.Equal(t, []float64{6, 9}, matrix.RowSums(m))
	assert.Equal(t, []float64{7, 8}, matrix.ColSums(m))

	off, err := matrix.OffDiagonalSum(m)
	require.NoError(t, err)
	assert.Equal(t, 3.0, off)
}

func TestElementwise_Errors(t *testing.T) {
	t.Parallel()
	a, _ := matrix.NewDense(2, 2)
	b, _ := matrix.NewDense(2, 3)
	_, err := matrix.Sub(a, b)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(nil, a)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Transpose(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.OffDiagonalSum(b)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

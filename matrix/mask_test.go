// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hierarchia/matrix"
)

func newMask(t *testing.T) *matrix.Mask {
	t.Helper()
	m, err := matrix.NewMask(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1))
	require.NoError(t, m.Set(0, 2, 0.5))
	require.NoError(t, m.Set(1, 1, 2))

	return m
}

func TestMask_StartsMissing(t *testing.T) {
	t.Parallel()
	m, err := matrix.NewMask(2, 2)
	require.NoError(t, err)
	_, ok := m.Value(0, 1)
	assert.False(t, ok)
	assert.Equal(t, []float64{0, 0}, m.RowSums())
	assert.Equal(t, []int{0, 0}, m.RowCounts())
}

func TestMask_Folds(t *testing.T) {
	t.Parallel()
	m := newMask(t)
	assert.Equal(t, []float64{1.5, 2}, m.RowSums())
	assert.Equal(t, []float64{1, 2, 0.5}, m.ColSums())
	assert.Equal(t, []int{2, 1}, m.RowCounts())

	y, err := m.MatVec([]float64{2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 6}, y)

	_, err = m.MatVec([]float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMask_PresentZeroIsNotMissing(t *testing.T) {
	t.Parallel()
	m, err := matrix.NewMask(1, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 0))
	assert.True(t, m.Present(0, 1))
	assert.False(t, m.Present(0, 0))
	assert.Equal(t, []int{1}, m.RowCounts())
}

func TestMask_TransposeAndClear(t *testing.T) {
	t.Parallel()
	m := newMask(t)
	tr := m.Transpose()
	assert.Equal(t, 3, tr.Rows())
	v, ok := tr.Value(2, 0)
	assert.True(t, ok)
	assert.Equal(t, 0.5, v)
	assert.False(t, tr.Present(0, 1))

	require.NoError(t, m.Clear(0, 2))
	assert.False(t, m.Present(0, 2))
	assert.ErrorIs(t, m.Clear(5, 0), matrix.ErrOutOfRange)
}

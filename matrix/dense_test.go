// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hierarchia/matrix"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := matrix.NewDense(dims[0], dims[1])
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "dims=%v", dims)
	}
}

func TestFromRows_Validation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		rows [][]float64
		want error
	}{
		{"empty", nil, matrix.ErrInvalidDimensions},
		{"ragged", [][]float64{{1, 2}, {3}}, matrix.ErrRagged},
		{"nan", [][]float64{{1, math.NaN()}, {0, 0}}, matrix.ErrNaNInf},
		{"inf", [][]float64{{1, 0}, {math.Inf(-1), 0}}, matrix.ErrNaNInf},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.FromRows(tc.rows)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFromRows_DoesNotAliasInput(t *testing.T) {
	t.Parallel()
	rows := [][]float64{{1, 2}, {3, 4}}
	d := MustFromRows(t, rows)
	rows[0][0] = 99
	assert.Equal(t, 1.0, MustAt(t, d, 0, 0))
}

func TestDense_AtSet_Bounds(t *testing.T) {
	t.Parallel()
	d, err := matrix.NewSquare(2)
	require.NoError(t, err)

	require.NoError(t, d.Set(1, 0, 5))
	assert.Equal(t, 5.0, MustAt(t, d, 1, 0))

	_, err = d.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, d.Set(0, -1, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, d.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
}

func TestDense_RowViewAliases(t *testing.T) {
	t.Parallel()
	d := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	row, err := d.RowView(1)
	require.NoError(t, err)
	row[0] = 30
	assert.Equal(t, 30.0, MustAt(t, d, 1, 0))

	_, err = d.RowView(2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_CloneIsDeep(t *testing.T) {
	t.Parallel()
	d := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	c := d.Clone()
	require.NoError(t, c.Set(0, 1, 7))
	assert.Equal(t, 2.0, MustAt(t, d, 0, 1))
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, d.ToRows())
}

func TestDense_SwapSymmetric(t *testing.T) {
	t.Parallel()
	d := MustFromRows(t, [][]float64{
		{0, 1, 2},
		{3, 0, 4},
		{5, 6, 0},
	})
	require.NoError(t, d.SwapSymmetric(0, 2))
	// Agent order becomes (2,1,0): every dyad keeps its counts.
	assert.Equal(t, [][]float64{
		{0, 6, 5},
		{4, 0, 3},
		{2, 1, 0},
	}, d.ToRows())

	require.NoError(t, d.SwapSymmetric(1, 1))
	assert.ErrorIs(t, d.SwapSymmetric(0, 3), matrix.ErrOutOfRange)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.ErrorIs(t, rect.SwapSymmetric(0, 1), matrix.ErrNonSquare)
}

func TestDense_String(t *testing.T) {
	t.Parallel()
	d := MustFromRows(t, [][]float64{{1, 2.5}, {0, 4}})
	assert.Equal(t, "[1, 2.5]\n[0, 4]\n", d.String())
}

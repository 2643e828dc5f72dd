// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/hierarchia/matrix"
)

func TestValidateCounts(t *testing.T) {
	t.Parallel()
	var nilDense *matrix.Dense
	rect, _ := matrix.NewDense(2, 3)
	tests := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"nil interface", nil, matrix.ErrNilMatrix},
		{"typed nil", nilDense, matrix.ErrNilMatrix},
		{"rectangular", rect, matrix.ErrNonSquare},
		{"negative", MustFromRows(t, [][]float64{{0, -1}, {2, 0}}), matrix.ErrNegative},
		{"ok", MustFromRows(t, [][]float64{{0, 1}, {2, 0}}), nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateCounts(tc.m)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidateSameShape(t *testing.T) {
	t.Parallel()
	a, _ := matrix.NewDense(2, 3)
	b, _ := matrix.NewDense(3, 2)
	assert.ErrorIs(t, matrix.ValidateSameShape(a, b), matrix.ErrDimensionMismatch)
	assert.NoError(t, matrix.ValidateSameShape(a, a))
}

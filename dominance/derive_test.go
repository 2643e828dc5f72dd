package dominance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hierarchia/dominance"
	"github.com/katalvlaran/hierarchia/internal/fixtures"
)

func hemelrijk(t *testing.T) *dominance.Store {
	t.Helper()
	s, err := dominance.FromMatrix(fixtures.Hemelrijk(), fixtures.HemelrijkNames)
	require.NoError(t, err)

	return s
}

func TestDijMatrix(t *testing.T) {
	t.Parallel()
	d := hemelrijk(t).DijMatrix()
	v, _ := d.At(1, 2)
	assert.Equal(t, 0.6429, v)
	v, _ = d.At(0, 1)
	assert.Equal(t, 0.9286, v)
	v, _ = d.At(0, 0)
	assert.Equal(t, 0.0, v)
}

func TestDijMatrix_EmptyDyadIsZero(t *testing.T) {
	t.Parallel()
	s, err := dominance.FromMatrix(fixtures.Appleby(), nil)
	require.NoError(t, err)
	d := s.DijMatrix()
	v, _ := d.At(2, 3)
	assert.Equal(t, 0.0, v)
}

func TestProportions_ComplementAndMask(t *testing.T) {
	t.Parallel()
	s, err := dominance.FromMatrix(fixtures.Appleby(), nil)
	require.NoError(t, err)
	p := s.Proportions()
	d := s.ChanceCorrected()
	n := s.N()
	for i := 0; i < n; i++ {
		assert.False(t, p.Present(i, i))
		for j := i + 1; j < n; j++ {
			pij, ok := p.Value(i, j)
			if s.Total(i, j) == 0 {
				assert.False(t, ok, "(%d,%d) should be missing", i, j)
				continue
			}
			require.True(t, ok)
			pji, _ := p.Value(j, i)
			assert.InDelta(t, 1.0, pij+pji, 1e-12)
			dij, _ := d.Value(i, j)
			dji, _ := d.Value(j, i)
			assert.InDelta(t, 1.0, dij+dji, 1e-12)
		}
	}
}

func TestOutcomes(t *testing.T) {
	t.Parallel()
	s, err := dominance.FromMatrix([][]float64{
		{0, 2, 1, 0},
		{1, 0, 0, 0},
		{1, 3, 0, 0},
		{0, 0, 0, 0},
	}, []string{"a", "b", "c", "d"})
	require.NoError(t, err)
	out, unknown := s.Outcomes()
	assert.Equal(t, [][]float64{
		{0, 1, 0.5, 0},
		{0, 0, 0, 0},
		{0.5, 1, 0, 0},
		{0, 0, 0, 0},
	}, out.ToRows())
	assert.Equal(t, []dominance.Dyad{{I: 0, J: 3}, {I: 1, J: 3}, {I: 2, J: 3}}, unknown)

	b := s.Binary()
	assert.Equal(t, [][]float64{
		{0, 1, 0, 0},
		{0, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 0},
	}, b.ToRows())
}

func TestParseMethod(t *testing.T) {
	t.Parallel()
	m, err := dominance.ParseMethod("dij")
	require.NoError(t, err)
	assert.Equal(t, dominance.Dij, m)

	_, err = dominance.ParseMethod("Xij")
	assert.ErrorIs(t, err, dominance.ErrUnknownMethod)
	assert.ErrorIs(t, err, dominance.ErrPrecondition)
	assert.ErrorIs(t, dominance.Method("").Validate(), dominance.ErrUnknownMethod)
}

func TestRanksAndScoresMap(t *testing.T) {
	t.Parallel()
	r := dominance.Ranks{{Agent: "x", Rank: 1}, {Agent: "y", Rank: 0}}
	assert.Equal(t, map[string]int{"x": 1, "y": 0}, r.Map())
	s := dominance.Scores{{Agent: "x", Value: 1.5}}
	assert.Equal(t, map[string]float64{"x": 1.5}, s.Map())
	assert.Equal(t, []float64{1.5}, s.Values())
	assert.Equal(t, 0.6429, dominance.Round(0.642857, 4))
	assert.Equal(t, -2.0714, dominance.Round(-2.071428, 4))
}

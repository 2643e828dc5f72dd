package isi_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hierarchia/dominance"
	"github.com/katalvlaran/hierarchia/internal/fixtures"
	"github.com/katalvlaran/hierarchia/isi"
	"github.com/katalvlaran/hierarchia/trial"
)

func deVries(t testing.TB) *dominance.Store {
	t.Helper()
	s, err := dominance.FromMatrix(fixtures.DeVries(), fixtures.DeVriesNames)
	require.NoError(t, err)

	return s
}

func TestISI98_DeVries(t *testing.T) {
	t.Parallel()
	want := map[string]int{"a": 0, "b": 1, "v": 2, "g": 3, "w": 4, "h": 5, "k": 6, "e": 7, "c": 8, "y": 9}
	for _, seed := range []uint64{1, 2, 42} {
		ranks, res, err := isi.ISI98(deVries(t), isi.DefaultRuns, trial.WithSeed(seed))
		require.NoError(t, err)
		assert.Equal(t, want, ranks.Map(), "seed %d", seed)
		assert.Equal(t, 2, res.Inconsistencies)
		assert.Equal(t, 7, res.Strength)
		assert.Equal(t, []string{"a", "b", "v", "g", "w", "h", "k", "e", "c", "y"}, res.Sequence)
	}
}

func TestISI98_SingleRunIsDeterministic(t *testing.T) {
	t.Parallel()
	// One run never perturbs, so the seed is irrelevant.
	ranks, res, err := isi.ISI98(deVries(t), 1)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 0, "b": 1, "h": 2, "v": 3, "g": 4, "w": 5, "k": 6, "e": 7, "c": 8, "y": 9}, ranks.Map())
	assert.Equal(t, 3, res.Inconsistencies)
	assert.Equal(t, 10, res.Strength)
}

func TestISI98_Bijection(t *testing.T) {
	t.Parallel()
	for _, rows := range [][][]float64{fixtures.Hemelrijk(), fixtures.Appleby(), fixtures.Adagio6()} {
		s, err := dominance.FromMatrix(rows, dominance.PositionalNames(len(rows)))
		require.NoError(t, err)
		ranks, _, err := isi.ISI98(s, 50, trial.WithSeed(5))
		require.NoError(t, err)
		seen := make(map[int]bool)
		for _, r := range ranks {
			assert.False(t, seen[r.Rank])
			seen[r.Rank] = true
		}
		assert.Len(t, seen, s.N())
		for k := 0; k < s.N(); k++ {
			assert.True(t, seen[k])
		}
	}
}

func TestISI98_LinearOrderUntouched(t *testing.T) {
	t.Parallel()
	s, err := dominance.FromMatrix(fixtures.Landau3(), []string{"x", "y", "z"})
	require.NoError(t, err)
	_, res, err := isi.ISI98(s, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z"}, res.Sequence)
	assert.Zero(t, res.Inconsistencies)
	assert.Zero(t, res.Strength)
}

func TestISI98_RunCount(t *testing.T) {
	t.Parallel()
	_, _, err := isi.ISI98(deVries(t), 0)
	assert.ErrorIs(t, err, dominance.ErrPrecondition)
	assert.ErrorIs(t, err, dominance.ErrTrialCount)
}

func TestISI98_VerboseTrace(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	_, _, err := isi.ISI98(deVries(t), 20, trial.WithSeed(1), trial.WithLogger(logger))
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, `"phase":"initial"`)
	assert.Contains(t, out, `"phase":"final"`)
	assert.Contains(t, out, `"strength"`)
}

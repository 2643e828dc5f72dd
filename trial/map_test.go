package trial_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hierarchia/trial"
)

func draw(rng *rand.Rand, i int) (float64, error) {
	return rng.Float64() + float64(i), nil
}

func TestMap_DeterministicAcrossWorkers(t *testing.T) {
	t.Parallel()
	one, err := trial.Map(257, draw, trial.WithSeed(7), trial.WithWorkers(1))
	require.NoError(t, err)
	many, err := trial.Map(257, draw, trial.WithSeed(7), trial.WithWorkers(8))
	require.NoError(t, err)
	assert.Equal(t, one, many)

	other, err := trial.Map(257, draw, trial.WithSeed(8), trial.WithWorkers(8))
	require.NoError(t, err)
	assert.NotEqual(t, one, other)
}

func TestMap_OrderedByTrial(t *testing.T) {
	t.Parallel()
	got, err := trial.Map(10, func(_ *rand.Rand, i int) (int, error) { return i * i, nil }, trial.WithWorkers(3))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 4, 9, 16, 25, 36, 49, 64, 81}, got)
}

func TestMap_ErrorAborts(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	_, err := trial.Map(100, func(_ *rand.Rand, i int) (int, error) {
		if i == 42 {
			return 0, boom
		}
		return i, nil
	}, trial.WithWorkers(4))
	assert.ErrorIs(t, err, boom)
}

func TestMap_Cancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := trial.Map(5, draw, trial.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMap_Counts(t *testing.T) {
	t.Parallel()
	got, err := trial.Map(0, draw)
	require.NoError(t, err)
	assert.Empty(t, got)
	_, err = trial.Map(-1, draw)
	assert.ErrorIs(t, err, trial.ErrNegativeCount)
}

func TestApply_Defaults(t *testing.T) {
	t.Parallel()
	c := trial.Apply(nil)
	assert.GreaterOrEqual(t, c.Workers, 1)
	assert.NotNil(t, c.Ctx)
	assert.False(t, c.Seeded())

	c = trial.Apply([]trial.Option{trial.WithSeed(3), trial.WithWorkers(0), trial.WithContext(nil)})
	assert.Equal(t, uint64(3), c.Seed)
	assert.True(t, c.Seeded())
	assert.GreaterOrEqual(t, c.Workers, 1)
	assert.Equal(t, c.Stream(2).Uint64(), trial.Stream(3, 2).Uint64())
}

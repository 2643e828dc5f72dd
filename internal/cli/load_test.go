package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRecords(t *testing.T) {
	in := "winner,loser,site\na,b,x\n c , a ,y\n"
	recs, err := LoadRecords(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "a", recs[0]["winner"])
	assert.Equal(t, "c", recs[1]["winner"])
	assert.Equal(t, "a", recs[1]["loser"])
	assert.Equal(t, "y", recs[1]["site"])

	_, err = LoadRecords(strings.NewReader("winner,loser\n"))
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestLoadMatrix(t *testing.T) {
	t.Run("header row", func(t *testing.T) {
		rows, names, err := LoadMatrix(strings.NewReader("x,y\n0,2\n1,0\n"), nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"x", "y"}, names)
		assert.Equal(t, [][]float64{{0, 2}, {1, 0}}, rows)
	})

	t.Run("explicit names win", func(t *testing.T) {
		_, names, err := LoadMatrix(strings.NewReader("x,y\n0,2\n1,0\n"), []string{"p", "q"})
		require.NoError(t, err)
		assert.Equal(t, []string{"p", "q"}, names)
	})

	t.Run("no header", func(t *testing.T) {
		rows, names, err := LoadMatrix(strings.NewReader("0,2\n1,0\n"), nil)
		require.NoError(t, err)
		assert.Nil(t, names)
		assert.Len(t, rows, 2)
	})

	t.Run("bad cell", func(t *testing.T) {
		_, _, err := LoadMatrix(strings.NewReader("0,2\n1,zz\n"), nil)
		assert.ErrorContains(t, err, "matrix row 2")
	})

	t.Run("header only", func(t *testing.T) {
		_, _, err := LoadMatrix(strings.NewReader("x,y\n"), nil)
		assert.ErrorIs(t, err, ErrEmptyInput)
	})
}

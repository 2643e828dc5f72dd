package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/hierarchia/dfs"
)

func TestReverse(t *testing.T) {
	in := []string{"a", "b", "c"}
	assert.Equal(t, []string{"c", "b", "a"}, dfs.Reverse(in))
	assert.Equal(t, []string{"a", "b", "c"}, in, "input untouched")
	assert.Empty(t, dfs.Reverse(nil))
}

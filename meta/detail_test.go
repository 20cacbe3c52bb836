package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDetailLevel(t *testing.T) {
	for n, want := range map[int]DetailLevel{
		0: CheckOnly,
		1: Simple,
		2: Exhaustive,
	} {
		got, err := ParseDetailLevel(n)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	for _, n := range []int{-1, 3, 42} {
		_, err := ParseDetailLevel(n)
		assert.Error(t, err, "detail %d", n)
	}
}

func TestDetailLevelString(t *testing.T) {
	assert.Equal(t, "check", CheckOnly.String())
	assert.Equal(t, "simple", Simple.String())
	assert.Equal(t, "exhaustive", Exhaustive.String())
}

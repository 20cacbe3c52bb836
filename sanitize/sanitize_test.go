package sanitize

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree_BytesAsHex(t *testing.T) {
	raw := []byte{0x00, 0xde, 0xad, 0xbe, 0xef, 0xff}

	got, err := Tree(raw, true)
	require.NoError(t, err)
	require.Equal(t, "00deadbeefff", got)

	// Hex output must round-trip to the original bytes.
	decoded, err := hex.DecodeString(got.(string))
	require.NoError(t, err)
	assert.Equal(t, raw, decoded)
}

func TestTree_BytesAsUTF8(t *testing.T) {
	got, err := Tree([]byte("snappy"), false)
	require.NoError(t, err)
	assert.Equal(t, "snappy", got)
}

func TestTree_InvalidUTF8IsAnError(t *testing.T) {
	_, err := Tree([]byte{0xff, 0xfe, 0xfd}, false)
	require.Error(t, err)
}

func TestTree_InvalidUTF8NestedIsAnError(t *testing.T) {
	_, err := Tree(map[string]any{"stats": []any{[]byte{0xff}}}, false)
	require.Error(t, err)
}

func TestTree_ScalarsBecomeText(t *testing.T) {
	for _, tc := range []struct {
		in   any
		want any
	}{
		{int32(42), "42"},
		{int64(-7), "-7"},
		{3.5, "3.5"},
		{true, "true"},
		{"already text", "already text"},
	} {
		got, err := Tree(tc.in, true)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "input %#v", tc.in)
	}
}

func TestTree_NilBecomesNil(t *testing.T) {
	var p *int
	got, err := Tree(p, true)
	require.NoError(t, err)
	assert.Nil(t, got)

	var s []int
	got, err = Tree(s, true)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = Tree(nil, true)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTree_SequenceOrderPreserved(t *testing.T) {
	got, err := Tree([]int{3, 1, 2}, true)
	require.NoError(t, err)
	assert.Equal(t, []any{"3", "1", "2"}, got)
}

func TestTree_StructsBecomeMappings(t *testing.T) {
	type stats struct {
		Min       []byte
		Max       []byte
		NullCount int64
	}
	type chunk struct {
		Path   []string
		Stats  stats
		hidden int
	}
	in := chunk{
		Path:  []string{"a", "b"},
		Stats: stats{Min: []byte{0x01}, Max: []byte{0xff}, NullCount: 0},
	}

	got, err := Tree(in, true)
	require.NoError(t, err)
	want := map[string]any{
		"Path": []any{"a", "b"},
		"Stats": map[string]any{
			"Min":       "01",
			"Max":       "ff",
			"NullCount": "0",
		},
	}
	assert.Equal(t, want, got)
	_ = in.hidden
}

func TestTree_MapKeysKept(t *testing.T) {
	got, err := Tree(map[int][]byte{1: {0xab}, 2: nil}, true)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"1": "ab", "2": nil}, got)
}

func TestTree_DeepNestingTerminates(t *testing.T) {
	v := any("leaf")
	for i := 0; i < 500; i++ {
		v = []any{v}
	}
	_, err := Tree(v, true)
	require.NoError(t, err)
}

func TestTree_Idempotent(t *testing.T) {
	type inner struct {
		Raw    []byte
		Counts []int64
	}
	in := map[string]any{
		"version": int32(2),
		"inner":   inner{Raw: []byte{0xca, 0xfe}, Counts: []int64{1, 2, 3}},
		"tags":    []any{"x", 9, []byte("y")},
	}

	once, err := Tree(in, true)
	require.NoError(t, err)
	twice, err := Tree(once, true)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

package itemset_test

import (
	"testing"

	"github.com/katalvlaran/mtv/itemset"
	"github.com/stretchr/testify/require"
)

func TestContains(t *testing.T) {
	require.True(t, itemset.Contains(0b111, 0b011))
	require.False(t, itemset.Contains(0b101, 0b011))
	require.True(t, itemset.Contains(0b101, 0))
}

func TestUnionOf(t *testing.T) {
	require.Equal(t, itemset.Mask(0), itemset.UnionOf(nil))
	require.Equal(t, itemset.Mask(0b111), itemset.UnionOf([]itemset.Mask{0b001, 0b010, 0b100}))
}

func TestPopcount(t *testing.T) {
	require.Equal(t, 0, itemset.Popcount(0))
	require.Equal(t, 3, itemset.Popcount(0b111))
}

func TestIsSingleton(t *testing.T) {
	require.False(t, itemset.IsSingleton(0))
	require.True(t, itemset.IsSingleton(0b0001))
	require.True(t, itemset.IsSingleton(0b1000))
	require.False(t, itemset.IsSingleton(0b0011))
}

func TestSingletons(t *testing.T) {
	D := []itemset.Mask{0b01, 0b10, 0b11}
	got := itemset.Singletons(D)
	require.Equal(t, []itemset.Mask{0b01, 0b10}, got)
}

func TestToIndexList(t *testing.T) {
	headers := []string{"a", "b", "c"}
	require.Equal(t, []string{"a", "c"}, itemset.ToIndexList(0b101, headers))
	require.Equal(t, []string{"3"}, itemset.ToIndexList(0b1000, headers))
}

func TestForHeaders(t *testing.T) {
	headers := []string{"a", "b", "c"}
	x, err := itemset.ForHeaders([]string{"a", "c"}, headers)
	require.NoError(t, err)
	require.Equal(t, itemset.Mask(0b101), x)

	_, err = itemset.ForHeaders([]string{"nope"}, headers)
	require.Error(t, err)
}

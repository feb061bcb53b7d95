package indepgraph_test

import (
	"testing"

	"github.com/katalvlaran/mtv/dataset"
	"github.com/katalvlaran/mtv/indepgraph"
	"github.com/stretchr/testify/require"
)

func newOracle(t *testing.T, raw []indepgraph.Mask) *dataset.FrequencyOracle {
	t.Helper()
	d, err := dataset.New(raw, nil)
	require.NoError(t, err)

	return dataset.NewFrequencyOracle(d)
}

func TestAddNodesSingleComponent(t *testing.T) {
	oracle := newOracle(t, []indepgraph.Mask{0b111, 0b110, 0b011})
	g := indepgraph.New(oracle, []indepgraph.Mask{0b001, 0b010, 0b100})

	_, comps, err := g.AddNodes(0b011)
	require.NoError(t, err)
	require.Len(t, comps, 1)
	require.Equal(t, indepgraph.Mask(0b011), comps[0].Attrs)
}

func TestAddNodesDisjointThenMerge(t *testing.T) {
	// spec.md §8 scenario 4: seed 0b011 and 0b1100 -> 2 disjoint components
	// (bits {0,1} and {2,3}); then 0b0110 bridges them into one.
	oracle := newOracle(t, []indepgraph.Mask{0b1111})
	g := indepgraph.New(oracle, []indepgraph.Mask{0b0001, 0b0010, 0b0100, 0b1000})

	_, _, err := g.AddNodes(0b0011)
	require.NoError(t, err)
	_, comps, err := g.AddNodes(0b1100)
	require.NoError(t, err)
	require.Len(t, comps, 2)

	var attrsSeen []indepgraph.Mask
	for _, c := range comps {
		attrsSeen = append(attrsSeen, c.Attrs)
	}
	require.ElementsMatch(t, []indepgraph.Mask{0b0011, 0b1100}, attrsSeen)

	merged, comps, err := g.AddNodes(0b0110)
	require.NoError(t, err)
	require.Len(t, comps, 1)
	require.Equal(t, indepgraph.Mask(0b1111), comps[0].Attrs)
	require.ElementsMatch(t, []indepgraph.Mask{0b0011, 0b1100, 0b0110}, comps[0].Constraints)
	require.Same(t, merged, comps[0])
}

func TestComponentsPartitionAndConnectivityAgree(t *testing.T) {
	oracle := newOracle(t, []indepgraph.Mask{0b1111})
	g := indepgraph.New(oracle, []indepgraph.Mask{0b0001, 0b0010, 0b0100, 0b1000})

	g.AddNodes(0b0011)
	g.AddNodes(0b1100)

	cc := g.ConnectedComponents()
	require.Len(t, cc, 2)
	for _, comp := range cc {
		require.True(t, len(comp) == 2)
	}
}

func TestAddNodesRejectsAlreadyPresentItemset(t *testing.T) {
	oracle := newOracle(t, []indepgraph.Mask{0b111, 0b110, 0b011})
	g := indepgraph.New(oracle, []indepgraph.Mask{0b001, 0b010, 0b100})

	_, _, err := g.AddNodes(0b011)
	require.NoError(t, err)

	_, comps, err := g.AddNodes(0b011)
	require.ErrorIs(t, err, indepgraph.ErrAlreadyPresent)
	require.Nil(t, comps)
	require.Len(t, g.Components(), 1)
}

func TestStats(t *testing.T) {
	oracle := newOracle(t, []indepgraph.Mask{0b1111})
	g := indepgraph.New(oracle, nil)
	g.AddNodes(0b0011)
	g.AddNodes(0b1100)

	count, sizes := g.Stats()
	require.Equal(t, 2, count)
	require.Equal(t, []int{1, 1}, sizes)
}

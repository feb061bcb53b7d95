package model_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mtv/dataset"
	"github.com/katalvlaran/mtv/itemset"
	"github.com/katalvlaran/mtv/model"
	"github.com/stretchr/testify/require"
)

func newGlobal(t *testing.T, raw []itemset.Mask) (*model.Global, *dataset.Dataset) {
	t.Helper()
	d, err := dataset.New(raw, nil)
	require.NoError(t, err)
	oracle := dataset.NewFrequencyOracle(d)
	g, err := model.New(d, oracle, itemset.Singletons(d.Transactions()))
	require.NoError(t, err)

	return g, d
}

func TestGlobalQueryEmptySetIsOne(t *testing.T) {
	g, _ := newGlobal(t, []itemset.Mask{0b111, 0b110, 0b011, 0b101})
	require.InDelta(t, 1.0, g.Query(0), 1e-9)
}

func TestGlobalQueryFullWorldMatchesMarginalProduct(t *testing.T) {
	// spec.md §8: over the full attribute set, Query(universe) is the joint
	// probability of that single exact world, which for an unconstrained
	// (independent-singletons) model is the product of each bit's marginal.
	g, _ := newGlobal(t, []itemset.Mask{0b11, 0b10, 0b01})
	full := itemset.Mask(0b11)
	joint := g.Query(full)
	factored := g.Query(0b01) * g.Query(0b10)
	require.InDelta(t, factored, joint, 1e-6)
}

func TestGlobalQueryContainmentMonotone(t *testing.T) {
	g, _ := newGlobal(t, []itemset.Mask{0b111, 0b110, 0b011})
	require.GreaterOrEqual(t, g.Query(0b001), g.Query(0b011))
	require.GreaterOrEqual(t, g.Query(0b011), g.Query(0b111))
}

func TestGlobalAddItemsetFactorizesDisjointComponents(t *testing.T) {
	// spec.md §8 scenario 3: two disjoint groups of correlated attributes
	// factorize independently once both are added as itemsets.
	raw := []itemset.Mask{
		0b0011, 0b0011, 0b0011, 0b1100, 0b1100, 0b1100, 0b1111, 0b0001,
	}
	g, _ := newGlobal(t, raw)

	_, err := g.AddItemset(0b0011)
	require.NoError(t, err)
	_, err = g.AddItemset(0b1100)
	require.NoError(t, err)

	require.Len(t, g.Graph().Components(), 2)

	joint := g.Query(0b1111)
	factored := g.Query(0b0011) * g.Query(0b1100)
	require.InDelta(t, factored, joint, 1e-6)
}

func TestGlobalScoreChangesAfterAddItemset(t *testing.T) {
	g, _ := newGlobal(t, []itemset.Mask{0b11, 0b10, 0b01, 0b01})
	base := g.Score(0)
	require.False(t, math.IsNaN(base))

	_, err := g.AddItemset(0b11)
	require.NoError(t, err)
	withItemset := g.Score(1)

	require.NotEqual(t, base, withItemset)
}

func TestGlobalQueryHeadersUnknownName(t *testing.T) {
	g, _ := newGlobal(t, []itemset.Mask{0b11, 0b10})
	_, err := g.QueryHeaders([]string{"nope"})
	require.Error(t, err)
}

func TestGlobalU0PositiveAfterFit(t *testing.T) {
	g, _ := newGlobal(t, []itemset.Mask{0b111, 0b110, 0b011})
	require.Greater(t, g.U0(), 0.0)
}

func TestGlobalAddItemsetConstraintsCountExcludesSingletonMarginals(t *testing.T) {
	// spec.md §4.9's |C_sub| gate must count only the itemsets bound to a
	// component, not the free-singleton marginals AddNodes folds into the
	// submodel so it has a per-attribute constraint to fit against. A
	// two-bit itemset's merged component starts with |C_sub| = 1, never 3
	// (1 itemset + 2 singletons), however many attributes it spans.
	raw := []itemset.Mask{0b011, 0b011, 0b110, 0b110, 0b001}
	g, _ := newGlobal(t, raw)

	merged, err := g.AddItemset(0b011)
	require.NoError(t, err)
	require.Len(t, merged.Constraints, 1)
	require.Greater(t, len(merged.Model.Constraints()), len(merged.Constraints))

	// 0b110 shares bit 1 with the existing component, so it merges rather
	// than forming a second component: |C_sub| becomes 2 for q=2 to gate on.
	merged, err = g.AddItemset(0b110)
	require.NoError(t, err)
	require.Len(t, merged.Constraints, 2)
}

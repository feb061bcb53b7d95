package search_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mtv/dataset"
	"github.com/katalvlaran/mtv/itemset"
	"github.com/katalvlaran/mtv/model"
	"github.com/katalvlaran/mtv/search"
	"github.com/stretchr/testify/require"
)

func newSetup(t *testing.T, raw []itemset.Mask) (*dataset.FrequencyOracle, *model.Global, []itemset.Mask) {
	t.Helper()
	d, err := dataset.New(raw, nil)
	require.NoError(t, err)
	oracle := dataset.NewFrequencyOracle(d)
	singletons := itemset.Singletons(d.Transactions())
	g, err := model.New(d, oracle, singletons)
	require.NoError(t, err)

	return oracle, g, singletons
}

func TestHeuristicZeroWhenFrequencyMatchesModel(t *testing.T) {
	require.Equal(t, 0.0, search.Heuristic(0.5, 0.5))
}

func TestHeuristicInfiniteOnPerfectSurprise(t *testing.T) {
	require.True(t, math.IsInf(search.Heuristic(0.5, 0), 1))
}

func TestHeuristicNonNegative(t *testing.T) {
	require.GreaterOrEqual(t, search.Heuristic(0.3, 0.6), 0.0)
}

func TestFindBestEmptyTrivialScenario(t *testing.T) {
	// spec.md §8 scenario 1.
	oracle, g, Y := newSetup(t, []itemset.Mask{0b01, 0b10, 0b11})
	cands, nodes, err := search.FindBest(oracle, g, Y, nil, search.Options{MinSupport: 0.1, Z: 5})
	require.NoError(t, err)
	require.NotEmpty(t, cands)
	require.Greater(t, nodes, 0)

	best, ok := search.Best(cands)
	require.True(t, ok)
	require.Equal(t, itemset.Mask(0b11), best)
	require.InDelta(t, 1.0/3.0, oracle.Fr(0b11), 1e-9)
}

func TestFindBestPerfectCorrelationScenario(t *testing.T) {
	// spec.md §8 scenario 2, with 0b001 substituted for the literal
	// all-absent rows (dataset.New filters empty transactions on
	// construction — see DESIGN.md for this Open Question resolution).
	raw := make([]itemset.Mask, 0, 200)
	for i := 0; i < 100; i++ {
		raw = append(raw, 0b111, 0b001)
	}
	oracle, g, Y := newSetup(t, raw)
	cands, _, err := search.FindBest(oracle, g, Y, nil, search.Options{MinSupport: 0.1, Z: 5})
	require.NoError(t, err)

	best, ok := search.Best(cands)
	require.True(t, ok)
	require.Equal(t, itemset.Mask(0b111), best)
}

func TestFindBestRespectsMinSupport(t *testing.T) {
	oracle, g, Y := newSetup(t, []itemset.Mask{0b001, 0b001, 0b001, 0b110})
	cands, _, err := search.FindBest(oracle, g, Y, nil, search.Options{MinSupport: 0.5, Z: 5})
	require.NoError(t, err)
	for _, c := range cands {
		require.GreaterOrEqual(t, oracle.Fr(c.X), 0.5)
	}
}

func TestFindBestSkipsItemsetsAlreadyInSummary(t *testing.T) {
	oracle, g, Y := newSetup(t, []itemset.Mask{0b11, 0b11, 0b01})
	cands, _, err := search.FindBest(oracle, g, Y, []itemset.Mask{0b11}, search.Options{MinSupport: 0.1, Z: 5})
	require.NoError(t, err)
	for _, c := range cands {
		require.NotEqual(t, itemset.Mask(0b11), c.X)
	}
}

func TestFindBestEmptySearchSpace(t *testing.T) {
	oracle, g, _ := newSetup(t, []itemset.Mask{0b1})
	_, _, err := search.FindBest(oracle, g, nil, nil, search.Options{MinSupport: 0.1, Z: 5})
	require.ErrorIs(t, err, search.ErrEmptySearchSpace)
}

func TestFindBestDepthCap(t *testing.T) {
	oracle, g, Y := newSetup(t, []itemset.Mask{0b111, 0b111, 0b011})
	cands, _, err := search.FindBest(oracle, g, Y, nil, search.Options{MinSupport: 0.1, Z: 10, M: 1})
	require.NoError(t, err)
	for _, c := range cands {
		require.LessOrEqual(t, itemset.Popcount(c.X), 1)
	}
}

func TestFindBestNegationValidityRule(t *testing.T) {
	// spec.md §8 scenario 5: n=2 positive attrs, doubled to 4 total bits.
	raw := []itemset.Mask{0b1111, 0b1001, 0b0110}
	oracle, g, Y := newSetup(t, raw)
	cands, _, err := search.FindBest(oracle, g, Y, nil, search.Options{
		MinSupport: 0.0, Z: 20, AddNegated: true, NumPositive: 2,
	})
	require.NoError(t, err)
	for _, c := range cands {
		// No candidate should carry both bit 0 (positive attr 0) and bit 2
		// (negated attr 0), nor both bit 1 and bit 3.
		require.False(t, c.X&0b0101 == 0b0101)
		require.False(t, c.X&0b1010 == 0b1010)
	}
}

func TestFindBestParallelMatchesSequential(t *testing.T) {
	raw := []itemset.Mask{0b111, 0b110, 0b011, 0b101, 0b111, 0b001}
	oracle, g, Y := newSetup(t, raw)
	opts := search.Options{MinSupport: 0.1, Z: 5}

	seq, seqNodes, err := search.FindBest(oracle, g, Y, nil, opts)
	require.NoError(t, err)

	par, parNodes, err := search.FindBestParallel(oracle, g, Y, nil, opts, 4)
	require.NoError(t, err)

	require.Equal(t, seqNodes, parNodes)
	require.Equal(t, len(seq), len(par))
	for i := range seq {
		require.Equal(t, seq[i].X, par[i].X)
		require.InDelta(t, seq[i].H, par[i].H, 1e-9)
	}
}

func TestBestEmptyListReportsNotOK(t *testing.T) {
	cands := []search.Candidate{}
	_, ok := search.Best(cands)
	require.False(t, ok)
}

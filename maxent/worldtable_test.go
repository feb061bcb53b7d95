package maxent_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mtv/maxent"
	"github.com/stretchr/testify/require"
)

func TestWorldTableGetSet(t *testing.T) {
	tbl := maxent.NewWorldTable([]int{0, 2})
	tbl.Set(0, 0.25)
	tbl.Set(0b001, 0.25)
	tbl.Set(0b100, 0.25)
	tbl.Set(0b101, 0.25)

	require.InDelta(t, 0.25, tbl.Get(0b101), 1e-12)
	require.InDelta(t, 1.0, tbl.Sum(), 1e-12)
	require.InDelta(t, 0.5, tbl.Marginal(0b001), 1e-12)
}

func TestWorldTableSetPanicsOnNonFinite(t *testing.T) {
	tbl := maxent.NewWorldTable([]int{0})
	require.Panics(t, func() {
		tbl.Set(0, math.NaN())
	})
}

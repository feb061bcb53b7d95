package maxent_test

import (
	"testing"

	"github.com/katalvlaran/mtv/dataset"
	"github.com/katalvlaran/mtv/maxent"
	"github.com/stretchr/testify/require"
)

func TestSubmodelEmptyQuery(t *testing.T) {
	m := maxent.New()
	require.NoError(t, m.Fit())
	require.InDelta(t, 1.0, m.Query(0), 1e-9)
}

func TestSubmodelIndependentConstraintsConverge(t *testing.T) {
	m := maxent.New()
	m.AddConstraint(0b01, 0.5)
	m.AddConstraint(0b10, 0.5)
	m.AddConstraint(0b11, 0.25) // independent baseline

	require.NoError(t, m.Fit())
	require.InDelta(t, 0.5, m.Query(0b01), 1e-2)
	require.InDelta(t, 0.5, m.Query(0b10), 1e-2)
	require.InDelta(t, 0.25, m.Query(0b11), 1e-2)
}

func TestSubmodelPerfectCorrelationScenario(t *testing.T) {
	// spec.md §8 scenario 2: 100 copies of 0b111, 100 copies of 0b000.
	raw := make([]maxent.Mask, 0, 200)
	for i := 0; i < 100; i++ {
		raw = append(raw, 0b111)
	}
	for i := 0; i < 100; i++ {
		raw = append(raw, 0b001) // dataset.New filters literal zeros
	}
	d, err := dataset.New(raw, nil)
	require.NoError(t, err)

	oracle := dataset.NewFrequencyOracle(d)

	m := maxent.New()
	m.AddConstraint(0b001, oracle.Fr(0b001))
	m.AddConstraint(0b010, oracle.Fr(0b010))
	m.AddConstraint(0b100, oracle.Fr(0b100))
	require.NoError(t, m.Fit())

	// Independent singleton model under-predicts the correlated itemset.
	require.Less(t, m.Query(0b111), oracle.Fr(0b111))
}

func TestSubmodelQuerySumsToOne(t *testing.T) {
	m := maxent.New()
	m.AddConstraint(0b01, 0.3)
	m.AddConstraint(0b10, 0.6)
	require.NoError(t, m.Fit())

	require.InDelta(t, 1.0, m.TotalMass(), 1e-9)
	require.InDelta(t, 1.0, m.Query(0), 1e-9)
}

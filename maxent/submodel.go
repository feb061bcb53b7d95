package maxent

import (
	"math"
	"sort"

	"github.com/katalvlaran/mtv/dataset"
	"github.com/katalvlaran/mtv/itemset"
)

// Mask is a local alias for itemset.Mask, kept so this package's exported
// signatures don't force every caller to import itemset just to spell the
// type.
type Mask = itemset.Mask

// MaxAttributes bounds exact enumeration: a submodel with more attributes
// than this cannot be Fit (spec.md §4.3 "For submodels with ≤ K attributes
// (K ≈ 20), enumerate all 2^K worlds").
const MaxAttributes = 20

// Default iterative-scaling parameters (spec.md §4.3).
const (
	DefaultEpsilon      = 1e-3
	DefaultMaxIterations = 1000
)

// clampWeight bounds a multiplicative weight away from 0/+Inf when a
// constraint's target or current estimate sits at a boundary (spec.md
// §4.3's "guarded against division by zero ... weight is clamped to a
// large/small constant").
const (
	minWeight = 1e-12
	maxWeight = 1e12
)

// constraint is one itemset-frequency pair the submodel must satisfy.
type constraint struct {
	Y      Mask
	target float64
}

// Submodel is the MaxEnt model over one independence-graph component
// (spec.md §4.3). Csub is the subset of the global summary lying in this
// component; Isub is the singleton marginal of every attribute in the
// component (indepgraph.AddNodes adds one per attribute of the merged group).
type Submodel struct {
	attrs Mask // union of this submodel's attribute group

	constraints []constraint    // ordered: Csub itemsets, then Isub singletons
	weights     map[Mask]float64 // U: constrained itemset -> multiplicative weight
	u0          float64

	bits  []int       // ascending attribute bit positions in attrs
	table *WorldTable // populated by Fit; nil before the first Fit

	epsilon    float64
	maxIters   int
	lastDelta  float64
	lastIters  int
}

// New constructs an empty Submodel. Constraints are added with AddConstraint
// before calling Fit.
func New() *Submodel {
	return &Submodel{
		weights:  make(map[Mask]float64),
		u0:       1.0,
		epsilon:  DefaultEpsilon,
		maxIters: DefaultMaxIterations,
	}
}

// AddConstraint registers an itemset-frequency constraint (a C_sub member
// or a free singleton's own marginal). target is fr(Y). AddConstraint must
// be called before Fit; calling it afterwards requires a new Fit to take
// effect.
func (m *Submodel) AddConstraint(Y Mask, target float64) {
	m.constraints = append(m.constraints, constraint{Y: Y, target: target})
	m.weights[Y] = 1.0
	m.attrs |= Y
}

// Attrs returns the union of this submodel's attribute group.
func (m *Submodel) Attrs() Mask {
	return m.attrs
}

// Constraints returns the constrained itemsets, in the fixed order they
// were added (iterative scaling cycles through them in this order).
func (m *Submodel) Constraints() []Mask {
	out := make([]Mask, len(m.constraints))
	for i, c := range m.constraints {
		out[i] = c.Y
	}

	return out
}

// bitPositions returns the ascending list of set bit positions in x.
func bitPositions(x Mask) []int {
	var out []int
	for b := 0; b < 64; b++ {
		if x&(Mask(1)<<uint(b)) != 0 {
			out = append(out, b)
		}
	}
	sort.Ints(out)

	return out
}

// Fit runs iterative scaling (spec.md §4.3) until every constraint's
// predicted marginal is within Epsilon of its target, or MaxIterations is
// reached (in which case it returns ErrDidNotConverge, having kept the last
// weights — the caller decides whether to proceed).
//
// Complexity: O(iterations · constraints · 2^K).
func (m *Submodel) Fit() error {
	m.bits = bitPositions(m.attrs)
	if len(m.bits) > MaxAttributes {
		return ErrTooManyAttributes
	}

	m.table = NewWorldTable(m.bits)
	m.rebuildTable()

	if len(m.constraints) == 0 {
		return nil
	}

	for iter := 1; iter <= m.maxIters; iter++ {
		for _, c := range m.constraints {
			p := m.table.Marginal(c.Y)
			theta := c.target

			w := m.weights[c.Y]
			switch {
			case p <= 0 && theta > 0:
				w = maxWeight
			case theta <= 0 && p > 0:
				w = minWeight
			case p >= 1 && theta < 1:
				w = minWeight
			case theta >= 1 && p < 1:
				w = maxWeight
			case p <= 0 || p >= 1 || theta <= 0 || theta >= 1:
				// Both sides at the same boundary: already satisfied.
			default:
				w *= (theta * (1 - p)) / (p * (1 - theta))
			}
			w = clamp(w, minWeight, maxWeight)
			m.weights[c.Y] = w

			m.rebuildTable()
		}

		// Measure every constraint after the full pass: a later constraint's
		// update can pull an earlier one away from its target.
		maxDelta := 0.0
		for _, c := range m.constraints {
			if delta := math.Abs(m.table.Marginal(c.Y) - c.target); delta > maxDelta {
				maxDelta = delta
			}
		}

		m.lastDelta = maxDelta
		m.lastIters = iter
		if maxDelta < m.epsilon {
			return nil
		}
	}

	return ErrDidNotConverge
}

// rebuildTable recomputes u0 and the world-probability table from the
// current weights. u0 is rescaled so the table sums to 1 over the
// submodel's subspace (spec.md §4.3's "Rescale u0 to keep total mass = 1").
func (m *Submodel) rebuildTable() {
	numWorlds := 1 << uint(len(m.bits))
	raw := make([]float64, numWorlds)
	var total float64
	for idx := 0; idx < numWorlds; idx++ {
		x := m.table.worldMask(idx)
		w := m.unnormalizedWeight(x)
		raw[idx] = w
		total += w
	}

	u0 := 1.0
	if total > 0 {
		u0 = 1.0 / total
	}
	m.u0 = u0

	for idx := 0; idx < numWorlds; idx++ {
		m.table.data[idx] = u0 * raw[idx]
	}
}

// unnormalizedWeight computes u0-free weight of world x: the product of
// U[Y] over every constrained Y contained in x (spec.md §3 invariant 4).
func (m *Submodel) unnormalizedWeight(x Mask) float64 {
	w := 1.0
	for _, c := range m.constraints {
		if x&c.Y == c.Y {
			w *= m.weights[c.Y]
		}
	}

	return w
}

// Query returns the marginal probability that a sample from this submodel
// contains X. X must be a subset of Attrs(); Fit must have been called.
//
// Complexity: O(2^K).
func (m *Submodel) Query(X Mask) float64 {
	if m.table == nil {
		return 0
	}

	return m.table.Marginal(X & m.attrs)
}

// TotalMass returns the sum of probability over every complete world in
// this submodel's subspace. After a converged Fit this should be 1 within
// Epsilon (spec.md §8 "Global query over all 2^n worlds sums to 1").
func (m *Submodel) TotalMass() float64 {
	if m.table == nil {
		return 0
	}

	return m.table.Sum()
}

// U0 returns the normalizing constant.
func (m *Submodel) U0() float64 {
	return m.u0
}

// Weights returns a copy of the constraint weight table U.
func (m *Submodel) Weights() map[Mask]float64 {
	out := make(map[Mask]float64, len(m.weights))
	for k, v := range m.weights {
		out[k] = v
	}

	return out
}

// LastFitStats reports the final per-constraint delta and iteration count
// of the most recent Fit, for diagnostics/stats.
func (m *Submodel) LastFitStats() (delta float64, iterations int) {
	return m.lastDelta, m.lastIters
}

// Score returns the submodel's log-likelihood over D, restricted to this
// submodel's attribute group (spec.md §4.3 "Score").
//
// Complexity: O(|D|).
func (m *Submodel) Score(d *dataset.Dataset) float64 {
	if m.table == nil {
		return 0
	}

	var total float64
	for _, t := range d.Transactions() {
		x := Mask(t) & m.attrs
		p := m.table.Get(x)
		if p <= 0 {
			// A world with zero predicted probability but observed in D is a
			// fit failure (DidNotConverge territory); treat its
			// log-likelihood contribution as a very large penalty rather
			// than -Inf so Score stays comparable across submodels.
			total += math.Log(minWeight)
			continue
		}
		total += math.Log(p)
	}

	return total
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

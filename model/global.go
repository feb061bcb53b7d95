package model

import (
	"math"

	"github.com/katalvlaran/mtv/dataset"
	"github.com/katalvlaran/mtv/indepgraph"
	"github.com/katalvlaran/mtv/itemset"
	"github.com/katalvlaran/mtv/maxent"
)

// Mask is a local alias shared with the lower layers.
type Mask = itemset.Mask

// Global composes the independence graph's submodels with the free
// singleton model (spec.md §4.5): Query multiplies each submodel's
// contribution for the bits it owns, with any attribute owned by no
// submodel falling back to the free singleton model's independent
// marginal.
type Global struct {
	d            *dataset.Dataset
	oracle       *dataset.FrequencyOracle
	graph        *indepgraph.Graph
	free         *maxent.Submodel // owns attributes not yet absorbed into any component
	headers      []string
	allSingletons []Mask
}

// New builds a Global model over d. allSingletons is every singleton
// itemset appearing in D (post negation-extension, if enabled).
func New(d *dataset.Dataset, oracle *dataset.FrequencyOracle, allSingletons []Mask) (*Global, error) {
	free := maxent.New()
	for _, s := range allSingletons {
		free.AddConstraint(s, oracle.Fr(s))
	}
	if err := free.Fit(); err != nil {
		return nil, err
	}

	return &Global{
		d:             d,
		oracle:        oracle,
		graph:         indepgraph.New(oracle, allSingletons),
		free:          free,
		headers:       d.Headers(),
		allSingletons: allSingletons,
	}, nil
}

// Graph exposes the underlying independence graph (e.g. for stats
// reporting by mtvdriver).
func (g *Global) Graph() *indepgraph.Graph {
	return g.graph
}

// Headers returns the attribute name list this model was built over
// (possibly nil), for output formatting.
func (g *Global) Headers() []string {
	return g.headers
}

// AddItemset folds a newly chosen itemset into the independence graph,
// refits the merged submodel, and refits the free singleton model with its
// absorbed attributes removed (spec.md §4.7's update_graph). It returns the
// merged component so the driver can apply the max-model-size constraint
// (§4.9) against its Constraints — the C_sub-only itemset list, not
// Model.Constraints() (which also counts the component's free-singleton
// marginals).
func (g *Global) AddItemset(X Mask) (*indepgraph.Component, error) {
	merged, _, err := g.graph.AddNodes(X)
	if err != nil {
		return nil, err
	}

	// A maxent.ErrDidNotConverge here is not fatal (spec.md §7): the driver
	// logs it and keeps using the last weights. We still refit the free
	// model and propagate whatever error either Fit produced so the
	// caller can log it; the merged component itself is always usable.
	fitErr := merged.Model.Fit()
	if err := g.refitFree(merged.Attrs); err != nil {
		return merged, err
	}

	return merged, fitErr
}

// refitFree rebuilds the free singleton model excluding any attribute now
// owned by a component.
func (g *Global) refitFree(absorbed Mask) error {
	owned := absorbed
	for _, c := range g.graph.Components() {
		owned |= c.Attrs
	}

	rebuilt := maxent.New()
	for _, Y := range g.freeUniverse() {
		if Y&owned != 0 {
			continue
		}
		rebuilt.AddConstraint(Y, g.oracle.Fr(Y))
	}
	g.free = rebuilt

	return g.free.Fit()
}

// freeUniverse returns the full singleton universe this model was built
// with: the allSingletons slice passed to New, kept on Global so it
// survives successive rebuilds of the free model.
func (g *Global) freeUniverse() []Mask {
	return g.allSingletons
}

// Query implements spec.md §4.5: iterate components, multiply in each
// intersected submodel's marginal over its share of y, and fold any
// remaining bits into the free singleton model.
//
// Complexity: O(components) submodel queries, each O(2^K).
func (g *Global) Query(y Mask) float64 {
	mask := y
	p := 1.0
	for _, c := range g.graph.Components() {
		if y&c.Attrs == 0 {
			continue
		}
		intersection := c.Attrs & mask
		mask ^= intersection
		p *= c.Model.Query(intersection)
	}
	p *= g.free.Query(mask)

	return p
}

// QueryHeaders resolves names against headers and queries the resulting
// itemset (ported from mtv.py's query_headers).
func (g *Global) QueryHeaders(names []string) (float64, error) {
	x, err := itemset.ForHeaders(names, g.headers)
	if err != nil {
		return 0, dataset.ErrHeaderNotFound
	}

	return g.Query(x), nil
}

// Score returns the BIC-penalized global score (spec.md §4.5/§4.7), where
// lower is better: the negated sum of every submodel's log-likelihood plus
// the free model's, plus the penalty ½·|C|·log2(|D|).
//
// lenC is |C|, the current summary size (owned by mtvdriver, passed in so
// this package stays ignorant of the driver's bookkeeping).
func (g *Global) Score(lenC int) float64 {
	total := -g.free.Score(g.d)
	for _, c := range g.graph.Components() {
		total -= c.Model.Score(g.d)
	}

	total += 0.5 * float64(lenC) * math.Log2(float64(g.d.Len()))

	return total
}

// Weights returns the union of every component's and the free model's
// weight table U (ported from mtv.py's U()).
func (g *Global) Weights() map[Mask]float64 {
	out := make(map[Mask]float64)
	for k, v := range g.free.Weights() {
		out[k] = v
	}
	for _, c := range g.graph.Components() {
		for k, v := range c.Model.Weights() {
			out[k] = v
		}
	}

	return out
}

// U0 returns the product of every submodel's normalizing constant
// (ported from mtv.py's u0()).
func (g *Global) U0() float64 {
	u0 := g.free.U0()
	for _, c := range g.graph.Components() {
		u0 *= c.Model.U0()
	}

	return u0
}

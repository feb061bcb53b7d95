package indepgraph

import (
	"github.com/katalvlaran/mtv/dataset"
	"github.com/katalvlaran/mtv/maxent"
)

// Graph tracks the partition of attributes into independent components
// (spec.md §4.4). It is not safe for concurrent use — the driver owns it
// exclusively (spec.md §5).
type Graph struct {
	oracle     *dataset.FrequencyOracle
	singletons []Mask // the full singleton universe, computed once at construction

	components map[int]*Component
	nextID     int
}

// New builds an empty Graph. oracle supplies fr(Y) for newly formed
// constraints; singletons is the full attribute singleton universe
// (itemset.Singletons(D), possibly post-negation-extension).
func New(oracle *dataset.FrequencyOracle, singletons []Mask) *Graph {
	return &Graph{
		oracle:     oracle,
		singletons: singletons,
		components: make(map[int]*Component),
	}
}

// Components returns the current components in ascending ID order
// (deterministic iteration, matching the rest of this module's discipline).
func (g *Graph) Components() []*Component {
	ids := make([]int, 0, len(g.components))
	for id := range g.components {
		ids = append(ids, id)
	}
	// Small N in practice; insertion sort keeps this file free of a sort
	// import for a handful of components.
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}

	out := make([]*Component, len(ids))
	for i, id := range ids {
		out[i] = g.components[id]
	}

	return out
}

// Models returns the fitted submodel of every current component, in the
// same deterministic order as Components.
func (g *Graph) Models() []*maxent.Submodel {
	comps := g.Components()
	out := make([]*maxent.Submodel, len(comps))
	for i, c := range comps {
		out[i] = c.Model
	}

	return out
}

// AddNodes implements spec.md §4.4's add_nodes operation: X is merged with
// every existing component whose attribute mask intersects it; the merged
// component's constraint set is {X} ∪ the union of the absorbed
// components' constraint sets, and a fresh, unfit Submodel is built with
// one AddConstraint call per itemset in that merged set plus one per free
// singleton in the merged attribute group. The caller is responsible for
// calling the returned Component's Model.Fit.
//
// The returned Component's Constraints holds only the C_sub itemsets bound
// to it (spec.md §4.9's |C_sub|) — it does not include the free-singleton
// marginals folded into Model, which Model.Constraints() would also count.
//
// Returns ErrAlreadyPresent if X is already bound to an existing
// component's constraint set, leaving the graph unmodified.
//
// Complexity: O(existing components + |mergedConstraints| + |singletons|).
func (g *Graph) AddNodes(X Mask) (*Component, []*Component, error) {
	for _, c := range g.components {
		for _, Y := range c.Constraints {
			if Y == X {
				return nil, nil, ErrAlreadyPresent
			}
		}
	}

	var (
		mergedAttrs       = X
		mergedConstraints = []Mask{X}
	)

	for id, c := range g.components {
		if c.Attrs&X != 0 {
			mergedAttrs |= c.Attrs
			mergedConstraints = append(mergedConstraints, c.Constraints...)
			delete(g.components, id)
		}
	}

	model := maxent.New()
	seen := make(map[Mask]bool, len(mergedConstraints))
	for _, Y := range mergedConstraints {
		if seen[Y] {
			continue
		}
		seen[Y] = true
		model.AddConstraint(Y, g.oracle.Fr(Y))
	}
	for _, s := range g.singletons {
		if s&mergedAttrs == 0 || seen[s] {
			continue
		}
		seen[s] = true
		model.AddConstraint(s, g.oracle.Fr(s))
	}

	g.nextID++
	comp := &Component{
		ID:          g.nextID,
		Attrs:       mergedAttrs,
		Constraints: mergedConstraints,
		Model:       model,
	}
	g.components[comp.ID] = comp

	return comp, g.Components(), nil
}

// Stats returns the component count and, for each component (in the same
// deterministic order as Components), the size of its constraint set —
// ported from the original mtv.py's graph_stats.
func (g *Graph) Stats() (count int, sizes []int) {
	comps := g.Components()
	sizes = make([]int, len(comps))
	for i, c := range comps {
		sizes[i] = len(c.Constraints)
	}

	return len(comps), sizes
}

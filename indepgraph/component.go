package indepgraph

import "github.com/katalvlaran/mtv/maxent"

// Mask is a local alias for the attribute bitmask type, shared with maxent
// and itemset.
type Mask = maxent.Mask

// Component is one connected component of the attribute co-occurrence
// graph: a stable ID, its attribute mask, the summary itemsets bound to it,
// and the MaxEnt submodel fit over those itemsets.
type Component struct {
	ID          int
	Attrs       Mask
	Constraints []Mask
	Model       *maxent.Submodel
}

// Package indepgraph tracks the independence graph of spec.md §4.4: the
// partition of attributes into connected components sharing a summary
// constraint, one MaxEnt submodel per component.
//
// Following spec.md §9's design note ("representing [components] as owned
// records in a flat container, indexed by stable IDs, with each attribute
// mapped to its component ID ... is preferred over reference-heavy node
// graphs"), components live in a flat map keyed by an incrementing ID;
// AddNodes scans for attribute-mask intersection, merges, and discards
// absorbed components — the same union-find-by-scan shape as the teacher
// corpus's Kruskal DSU, specialized from per-vertex union-find to
// per-component bitmask merge because a whole attribute group moves at
// once rather than one vertex at a time.
package indepgraph

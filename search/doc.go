// Package search implements FindBestItemset (spec.md §4.6): a
// branch-and-bound traversal of the itemset lattice that returns the top-z
// candidates ranked by the KL-divergence heuristic h(fr(X), query(X)),
// pruned by minimum support, a greedy mode, and an admissible upper bound on
// descendants.
//
// FindBest runs the search single-threaded. FindBestParallel fans the
// top-level branches (one per surviving singleton) across a worker pool and
// merges each branch's top-z list under the same total order, so both
// entry points are deterministic for identical input.
package search

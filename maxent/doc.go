// Package maxent implements the maximum-entropy submodel of spec.md §4.3:
// given a set of itemset-frequency constraints over a shared attribute
// group, it fits (by iterative scaling) and queries the maximum-entropy
// distribution satisfying those constraints.
//
// A Submodel owns one connected component's worth of attributes. Its
// weight table U and normalizing constant u0 are fit by Fit, then queried
// by Query (exact marginalization) and Score (log-likelihood). Submodels
// are cheap to enumerate exactly because the independence graph
// (package indepgraph) keeps each component small (see MaxAttributes);
// WorldTable — modeled on the teacher corpus's dense, row-major
// Matrix/Dense type — caches the per-world probability vector so that after
// a Fit a single world's probability is an O(1) lookup and a marginal query
// is an O(2^K) sum over the table, with no weight products recomputed.
package maxent

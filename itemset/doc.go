// Package itemset provides the bitmask primitives the rest of this module
// builds on: itemsets are never materialized as sets of attribute indices on
// a hot path, they are machine-word bitmasks with O(1) union, intersection,
// containment and population-count.
//
// An attribute universe of size n is represented by bit positions 0..n-1 of
// a Mask. The empty itemset is Mask(0). Mask is a uint64, which bounds this
// implementation to n ≤ 64 attributes (n ≤ 32 once the negation extension in
// §4.8 of the mined model doubles the universe) — the contract the
// specification leaves open ("any integer type supporting &, |, ^, shift,
// and equality") is satisfied by uint64 here; a big.Int-backed Mask for
// wider universes is not implemented (see SPEC_FULL.md §3).
//
// Complexity: every operation below is O(1) except UnionOf (O(len(list))),
// ExtendWithNegation (O(numPositive)), Singletons (O(|D|)), ToIndexList and
// ForHeaders (O(popcount) / O(len(headers))).
package itemset

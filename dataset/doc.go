// Package dataset holds the transactional dataset D (spec.md §3) and the
// frequency oracle fr(X) (§4.2): the fraction of transactions containing a
// given itemset, memoized for the lifetime of the dataset.
//
// Dataset is immutable after construction: New filters empty (zero-valued)
// transactions and validates the attribute universe fits the itemset.Mask
// width. Loader is the external-collaborator seam of spec.md §6 — dataset
// parsing itself is explicitly out of the core's scope; TextLoader is the
// minimal boundary implementation this repo ships so the CLI has something
// to read.
package dataset

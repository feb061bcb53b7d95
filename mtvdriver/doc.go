// Package mtvdriver implements the outer MTV loop (spec.md §4.7): repeatedly
// running FindBestItemset, validating the winner, folding it into the
// global model, applying the max-model-size blacklist (§4.9), and recording
// per-iteration statistics, until k itemsets are chosen or the BIC score
// stops improving.
package mtvdriver

// Package mtv is your toolkit for mining a small, human-readable summary
// of itemsets out of a binary transactional dataset.
//
// 🚀 What is katalvlaran/mtv?
//
//	A MaxEnt itemset summarization engine that brings together:
//
//	  • Frequency estimation and negation-extension over bitmask itemsets
//	  • Iterative-scaling MaxEnt submodels, merged along an independence graph
//	  • A BIC-scored branch-and-bound search for the next best itemset
//	  • A driver loop that turns a dataset into a ranked summary C
//
// ✨ Why choose mtv?
//
//   - Deterministic     — identical output from a sequential or parallel search
//   - Explainable        — every accepted itemset is scored by description length
//   - Extensible         — functional options tune support, width, and search effort
//   - Observable         — structured logs, timers and counters on every run
//
// Under the hood, everything is organized under per-concern subpackages:
//
//	itemset/         — Mask type and its bitwise primitives, negation extension
//	dataset/         — transaction loading, frequency oracle, negation-extended datasets
//	maxent/          — iterative-scaling MaxEnt submodels over an itemset's world table
//	indepgraph/      — independence graph of merged attribute components
//	model/           — the global model composing components with the free singleton model
//	search/          — KL-heuristic branch-and-bound top-z candidate search
//	mtvdriver/       — the iterate-until-converged driver loop
//	statsio/         — summary.dat and stats document writers
//	instrumentation/ — per-iteration timers and counters
//	internal/config/ — flag/file/env parameter resolution for cmd/mtv
//	cmd/mtv/         — the command-line entry point
//
// Quick conceptual example:
//
//	D = {0b011, 0b110, 0b111, ...}
//	C = [0b011, 0b110]   // the mined summary (never holds a singleton)
//
// each itemset in C trades a few bits of description length for a large
// drop in the MaxEnt model's surprise at the data it was fit against.
//
//	go get github.com/katalvlaran/mtv
package mtv

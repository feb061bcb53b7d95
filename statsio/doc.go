// Package statsio serializes a driver run's outputs (spec.md §6): the
// chosen summary as a "summary.dat" file (one whitespace-separated
// attribute-name line per itemset, insertion order) and the per-iteration
// stats as a YAML document consumable by the downstream visualization
// collaborator (out of this module's scope; only the schema below is
// guaranteed).
package statsio

// Package model composes the independence graph's submodels with a single
// "free singleton" submodel into the global MaxEnt model of spec.md §4.5,
// and computes the BIC-penalized score used to drive convergence (§4.7).
package model

package maxent

import "errors"

// ErrDidNotConverge is returned by Fit when the iteration cap is reached
// without every constraint's predicted marginal settling within Epsilon of
// its target (spec.md §7's "IterativeScalingDidNotConverge"). The caller
// (mtvdriver) logs this and continues with the last weights — it is not
// treated as fatal.
var ErrDidNotConverge = errors.New("maxent: iterative scaling did not converge")

// ErrTooManyAttributes is returned by Fit when the submodel's attribute
// group exceeds MaxAttributes, beyond which exact enumeration of 2^K worlds
// is no longer a reasonable implementation choice (spec.md §4.3 leaves
// larger submodels open; the independence graph is designed to keep
// components small in practice).
var ErrTooManyAttributes = errors.New("maxent: submodel attribute group too large for exact enumeration")

package indepgraph

import "errors"

// ErrAlreadyPresent indicates AddNodes was called with an itemset already
// bound to a component's constraint set (callers should not attempt to
// re-add an itemset already in the global summary).
var ErrAlreadyPresent = errors.New("indepgraph: itemset already present in a component")

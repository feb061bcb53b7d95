package search

import "errors"

// ErrEmptySearchSpace is returned by FindBest/FindBestParallel when the
// remaining singleton universe Y (after subtracting the blacklist) is empty
// before any candidate is examined.
var ErrEmptySearchSpace = errors.New("search: empty singleton universe")

package itemset

import "fmt"

// UnknownHeaderError is returned by ForHeaders when a requested attribute
// name does not appear in the supplied headers slice. It is intentionally
// not a sentinel (unlike most errors in this module) because callers need
// the offending name; use errors.As to recover it.
type UnknownHeaderError struct {
	Name string // the header name that could not be resolved
}

func (e *UnknownHeaderError) Error() string {
	return fmt.Sprintf("itemset: unknown header %q", e.Name)
}

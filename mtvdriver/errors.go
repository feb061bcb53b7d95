package mtvdriver

import "errors"

// Construction-time parameter errors (spec.md §7 "InvalidParameter").
var (
	// ErrInvalidSupport indicates s (min support) is outside [0, 1].
	ErrInvalidSupport = errors.New("mtvdriver: min support must be in [0,1]")

	// ErrInvalidK indicates k (target summary size) is negative.
	ErrInvalidK = errors.New("mtvdriver: k must be >= 0")

	// ErrInvalidZ indicates z (top-z capacity) is not positive.
	ErrInvalidZ = errors.New("mtvdriver: z must be > 0")

	// ErrInvalidQ indicates q (max submodel size before blacklist) is negative.
	ErrInvalidQ = errors.New("mtvdriver: q must be >= 0")

	// ErrInvalidM indicates m (max itemset size) is negative.
	ErrInvalidM = errors.New("mtvdriver: m must be >= 0")
)

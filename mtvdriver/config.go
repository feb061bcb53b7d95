package mtvdriver

import "github.com/rs/zerolog"

// Option customizes a Driver's configuration (spec.md §6's parameter
// table). Grounded on the teacher's builder package: a functional-options
// struct applied in order, later options overriding earlier ones.
type Option func(cfg *config)

// config holds every spec.md §6 parameter plus the AMBIENT logger
// injection. Not safe for concurrent mutation; each New call builds its own.
type config struct {
	k          int // used only when hasK is set; otherwise the stop is BIC-driven
	hasK       bool
	m          int
	s          float64
	z          int
	q          int
	hasQ       bool
	greedy     bool
	addNegated bool
	parallel   bool
	workers    int
	logger     zerolog.Logger
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		m:      0,
		s:      0.05,
		z:      10,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithK stops the loop once the summary reaches size k (spec.md §4.7).
func WithK(k int) Option {
	return func(cfg *config) {
		cfg.k = k
		cfg.hasK = true
	}
}

// WithM bounds the maximum itemset size explored by the search (0 = unbounded).
func WithM(m int) Option {
	return func(cfg *config) { cfg.m = m }
}

// WithMinSupport sets s, the minimum support fraction.
func WithMinSupport(s float64) Option {
	return func(cfg *config) { cfg.s = s }
}

// WithZ sets the top-z candidate list capacity.
func WithZ(z int) Option {
	return func(cfg *config) { cfg.z = z }
}

// WithQ sets q, the max |C_sub| before a submodel's singletons are
// blacklisted (spec.md §4.9).
func WithQ(q int) Option {
	return func(cfg *config) {
		cfg.q = q
		cfg.hasQ = true
	}
}

// WithGreedy enables the greedy h_X < parent_h prune.
func WithGreedy(greedy bool) Option {
	return func(cfg *config) { cfg.greedy = greedy }
}

// WithNegation enables the negation extension (spec.md §4.8). The driver
// doubles the dataset's attribute universe at New time when this is set.
func WithNegation(addNegated bool) Option {
	return func(cfg *config) { cfg.addNegated = addNegated }
}

// WithParallelSearch runs FindBestItemset via search.FindBestParallel with
// the given worker count (spec.md §5's permitted internally-parallel
// search). workers <= 0 falls back to GOMAXPROCS.
func WithParallelSearch(workers int) Option {
	return func(cfg *config) {
		cfg.parallel = true
		cfg.workers = workers
	}
}

// WithLogger injects a zerolog.Logger (constructor injection, no
// package-level logger, per spec.md §9's no-process-wide-state rule).
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) { cfg.logger = logger }
}

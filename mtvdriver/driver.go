package mtvdriver

import (
	"context"
	"math/bits"
	"time"

	"github.com/katalvlaran/mtv/dataset"
	"github.com/katalvlaran/mtv/instrumentation"
	"github.com/katalvlaran/mtv/itemset"
	"github.com/katalvlaran/mtv/model"
	"github.com/katalvlaran/mtv/search"
)

// Mask is a local alias for itemset.Mask.
type Mask = itemset.Mask

// IterationStats is one per-iteration record (spec.md §6 "stats"):
// wall time, BIC score, component count, summary-size vector, and the
// search-space size explored to find this iteration's winner.
type IterationStats struct {
	Index           int
	Itemset         []string
	BIC             float64
	Heuristic       float64
	ComponentCount  int
	ComponentSizes  []int
	SearchSpaceSize int
	Elapsed         time.Duration
}

// Driver runs the outer MTV loop of spec.md §4.7. It owns the frequency
// oracle, the global model, the evolving summary C, the blacklist (§4.9),
// and per-run instrumentation. A Driver is not safe for concurrent use —
// only FindBestParallel's internal worker pool runs concurrently, bounded
// to one call at a time (spec.md §5).
type Driver struct {
	cfg *config

	d      *dataset.Dataset
	oracle *dataset.FrequencyOracle
	global *model.Global

	numPositive int
	universe    []Mask
	blacklist   map[Mask]bool

	summary    []Mask
	bicHistory []float64

	timers   *instrumentation.Timers
	counters *instrumentation.Counters
	stats    []IterationStats
}

// New validates cfg, optionally applies the negation extension to d, and
// builds the initial global model over every singleton attribute.
func New(d *dataset.Dataset, opts ...Option) (*Driver, error) {
	cfg := newConfig(opts...)
	if cfg.s < 0 || cfg.s > 1 {
		return nil, ErrInvalidSupport
	}
	if cfg.hasK && cfg.k < 0 {
		return nil, ErrInvalidK
	}
	if cfg.z <= 0 {
		return nil, ErrInvalidZ
	}
	if cfg.hasQ && cfg.q < 0 {
		return nil, ErrInvalidQ
	}
	if cfg.m < 0 {
		return nil, ErrInvalidM
	}

	numPositive := numPositiveAttrs(d)
	if cfg.addNegated {
		extended, err := dataset.WithNegation(d, numPositive)
		if err != nil {
			return nil, err
		}
		d = extended
	}

	oracle := dataset.NewFrequencyOracle(d)
	universe := itemset.Singletons(d.Transactions())
	global, err := model.New(d, oracle, universe)
	if err != nil {
		return nil, err
	}

	return &Driver{
		cfg:         cfg,
		d:           d,
		oracle:      oracle,
		global:      global,
		numPositive: numPositive,
		universe:    universe,
		blacklist:   make(map[Mask]bool),
		timers:      instrumentation.NewTimers(),
		counters:    instrumentation.NewCounters(),
	}, nil
}

func numPositiveAttrs(d *dataset.Dataset) int {
	if d.Headers() != nil {
		return len(d.Headers())
	}

	var seen Mask
	for _, t := range d.Transactions() {
		seen |= t
	}

	return bits.Len64(uint64(seen))
}

// Global returns the driver's global model, for callers that need to query
// it directly (e.g. the CLI's final summary dump).
func (dr *Driver) Global() *model.Global {
	return dr.global
}

// Summary returns the itemsets chosen so far, in insertion order.
func (dr *Driver) Summary() []Mask {
	out := make([]Mask, len(dr.summary))
	copy(out, dr.summary)

	return out
}

// Stats returns the per-iteration record list accumulated so far.
func (dr *Driver) Stats() []IterationStats {
	out := make([]IterationStats, len(dr.stats))
	copy(out, dr.stats)

	return out
}

// Counters exposes the run's running-maximum counters (e.g. the largest
// search space explored), for statsio serialization.
func (dr *Driver) Counters() *instrumentation.Counters {
	return dr.counters
}

// Timers exposes the run's accumulated timers, for statsio serialization.
func (dr *Driver) Timers() *instrumentation.Timers {
	return dr.timers
}

// Run executes the outer loop (spec.md §4.7) until finished() or ctx is
// canceled between iterations.
//
// Complexity: O(iterations · FindBestItemset cost), dominated by the search.
func (dr *Driver) Run(ctx context.Context) error {
	for !dr.finished() {
		if err := ctx.Err(); err != nil {
			return err
		}

		dr.timers.Start("find_best")
		Y := dr.remainingSingletons()

		opts := search.Options{
			MinSupport:  dr.cfg.s,
			Z:           dr.cfg.z,
			M:           dr.cfg.m,
			Greedy:      dr.cfg.greedy,
			AddNegated:  dr.cfg.addNegated,
			NumPositive: dr.numPositive,
		}

		var (
			cands         []search.Candidate
			nodesExplored int
			err           error
		)
		if dr.cfg.parallel {
			cands, nodesExplored, err = search.FindBestParallel(dr.oracle, dr.global, Y, dr.summary, opts, dr.cfg.workers)
		} else {
			cands, nodesExplored, err = search.FindBest(dr.oracle, dr.global, Y, dr.summary, opts)
		}
		elapsed := dr.timers.Stop("find_best")
		if err != nil {
			// Empty search space: nothing left to consider (SearchExhausted).
			break
		}
		dr.counters.Max("search_space", nodesExplored)

		X, ok := search.Best(cands)
		if !ok || !dr.validate(X) {
			break
		}

		dr.addItemset(X, elapsed, nodesExplored)
	}

	return nil
}

// validate implements spec.md §4.7's validation step: reject singletons
// (a safety net — the search should not surface them) and the empty set.
func (dr *Driver) validate(X Mask) bool {
	return X != 0 && !itemset.IsSingleton(X)
}

// remainingSingletons returns the attribute universe minus any blacklisted
// singleton (spec.md §4.9).
func (dr *Driver) remainingSingletons() []Mask {
	out := make([]Mask, 0, len(dr.universe))
	for _, s := range dr.universe {
		if !dr.blacklist[s] {
			out = append(out, s)
		}
	}

	return out
}

// addItemset implements spec.md §4.7's add_itemset: computes the
// heuristic, folds X into the global model, applies the §4.9 blacklist,
// records the BIC score, and appends one IterationStats entry.
func (dr *Driver) addItemset(X Mask, searchElapsed time.Duration, searchedNodes int) {
	h := search.Heuristic(dr.oracle.Fr(X), dr.global.Query(X))

	dr.summary = append(dr.summary, X)

	merged, fitErr := dr.global.AddItemset(X)
	if merged == nil {
		// AddNodes rejected X as already bound to a component — shouldn't
		// happen given search's own inC prune, but don't crash on it.
		dr.cfg.logger.Warn().
			Uint64("itemset", uint64(X)).
			Err(fitErr).
			Msg("itemset could not be folded into the independence graph")

		return
	}
	if fitErr != nil {
		dr.cfg.logger.Warn().
			Uint64("attrs", uint64(merged.Attrs)).
			Err(fitErr).
			Msg("submodel did not converge, retaining last weights")
	}

	// spec.md §4.9: gate on |C_sub|, the summary itemsets bound to this
	// component — merged.Constraints, not merged.Model.Constraints(), which
	// also counts the component's free-singleton marginals.
	if dr.cfg.hasQ && len(merged.Constraints) >= dr.cfg.q {
		for _, b := range bitPositions(merged.Attrs) {
			dr.blacklist[Mask(1)<<uint(b)] = true
		}
	}

	score := dr.global.Score(len(dr.summary))
	dr.bicHistory = append(dr.bicHistory, score)

	componentCount, sizes := dr.global.Graph().Stats()
	dr.stats = append(dr.stats, IterationStats{
		Index:           len(dr.summary) - 1,
		Itemset:         itemset.ToIndexList(X, dr.d.Headers()),
		BIC:             score,
		Heuristic:       h,
		ComponentCount:  componentCount,
		ComponentSizes:  sizes,
		SearchSpaceSize: searchedNodes,
		Elapsed:         searchElapsed,
	})

	dr.cfg.logger.Debug().
		Strs("itemset", itemset.ToIndexList(X, dr.d.Headers())).
		Float64("bic_score", score).
		Ints("model_sizes", sizes).
		Int("searched_nodes", searchedNodes).
		Dur("elapsed", searchElapsed).
		Msg("itemset added to summary")
}

// finished implements spec.md §4.7's convergence rule.
func (dr *Driver) finished() bool {
	if dr.cfg.hasK {
		return len(dr.summary) >= dr.cfg.k
	}
	if len(dr.bicHistory) > 1 {
		n := len(dr.bicHistory)

		return dr.bicHistory[n-2] < dr.bicHistory[n-1]
	}

	return false
}

func bitPositions(x Mask) []int {
	var out []int
	for b := 0; b < 64; b++ {
		if x&(Mask(1)<<uint(b)) != 0 {
			out = append(out, b)
		}
	}

	return out
}

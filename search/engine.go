package search

import (
	"math"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/mtv/dataset"
	"github.com/katalvlaran/mtv/itemset"
	"github.com/katalvlaran/mtv/model"
)

// Mask is a local alias for itemset.Mask.
type Mask = itemset.Mask

// Options configures one FindBest/FindBestParallel invocation (spec.md §6's
// s, z, m, greedy and add_negated parameters). The q-derived blacklist is not
// an option: the caller applies it by leaving blacklisted singletons out of Y.
type Options struct {
	MinSupport  float64 // s: prune any X with fr(X) < MinSupport
	Z           int     // z: top-z list capacity
	M           int     // m: max itemset size (0 = unbounded)
	Greedy      bool
	AddNegated  bool
	NumPositive int // required when AddNegated is set
}

// queryCache memoizes global.Query(x) for the lifetime of one search
// invocation (spec.md §4.7 "reset per-call query cache"). FindBestParallel
// gives every top-level branch its own engine and so its own queryCache.
type queryCache struct {
	mu sync.RWMutex
	m  map[Mask]float64
	g  *model.Global
}

func newQueryCache(g *model.Global) *queryCache {
	return &queryCache{m: make(map[Mask]float64, 256), g: g}
}

func (c *queryCache) p(x Mask) float64 {
	c.mu.RLock()
	v, ok := c.m[x]
	c.mu.RUnlock()
	if ok {
		return v
	}

	v = c.g.Query(x)
	c.mu.Lock()
	c.m[x] = v
	c.mu.Unlock()

	return v
}

// engine holds the read-only state one branch-and-bound traversal shares: the
// frequency oracle, the per-call query cache, the current summary (for the
// "X ∈ C" prune), and the search options. Grounded on the teacher's
// tsp/bb.go bbEngine: a dedicated struct instead of closures, so every piece
// of search state is explicit and the recursion itself stays a thin method.
type engine struct {
	oracle *dataset.FrequencyOracle
	cache  *queryCache
	inC    map[Mask]bool
	opts   Options

	// nodes counts recursive search calls (mtv.py's search_space: one per
	// node visited, including pruned ones), updated atomically because
	// FindBestParallel's branch goroutines add their counts into the root
	// engine's total.
	nodes int64
}

func newEngine(oracle *dataset.FrequencyOracle, global *model.Global, C []Mask, opts Options) *engine {
	inC := make(map[Mask]bool, len(C))
	for _, x := range C {
		inC[x] = true
	}

	return &engine{oracle: oracle, cache: newQueryCache(global), inC: inC, opts: opts}
}

// nodesExplored returns the number of recursive search nodes visited so far.
func (e *engine) nodesExplored() int {
	return int(atomic.LoadInt64(&e.nodes))
}

// evalX computes fr(X), query(X), and h(X), reporting whether X should be
// pruned outright (support floor or already in the summary).
func (e *engine) evalX(X Mask) (frX, pX, hX float64, pruned bool) {
	frX = e.oracle.Fr(X)
	if frX < e.opts.MinSupport || e.inC[X] {
		return frX, 0, 0, true
	}
	pX = e.cache.p(X)
	hX = Heuristic(frX, pX)

	return frX, pX, hX, false
}

// search implements spec.md §4.6's recursive enumeration over prefix X and
// remaining candidates Y. Y is always a suffix of the original singleton
// list passed to the top-level call: branching on Y[i] recurses with
// Y[i+1:], so every itemset is generated exactly once (as a strictly
// increasing combination of singletons) rather than once per permutation.
//
// Complexity: worst case exponential in len(Y); pruning in practice keeps
// the explored fraction small.
func (e *engine) search(X Mask, Y []Mask, z *topZ, parentH float64) {
	atomic.AddInt64(&e.nodes, 1)

	frX, pX, hX, pruned := e.evalX(X)
	if pruned {
		return
	}
	if e.opts.Greedy && hX < parentH {
		return
	}
	z.Offer(X, hX)

	if e.opts.M > 0 && itemset.Popcount(X) >= e.opts.M {
		return
	}
	if len(Y) == 0 {
		return
	}

	var XY = X
	for _, y := range Y {
		XY |= y
	}
	frXY := e.oracle.Fr(XY)
	pXY := e.cache.p(XY)
	b := math.Max(Heuristic(frX, pXY), Heuristic(frXY, pX))
	if z.cap > 0 && z.Len() >= z.cap && b <= z.Worst() {
		return
	}

	for i, y := range Y {
		if e.opts.AddNegated && !itemset.ValidNegationCandidate(X, y, e.opts.NumPositive) {
			continue
		}
		e.search(X|y, Y[i+1:], z, hX)
	}
}

// FindBest runs the sequential branch-and-bound search (spec.md §4.6) over
// singleton candidates Y, excluding anything already in summary C, and
// returns the resulting top-z list sorted descending by heuristic (ties
// broken by earlier insertion), plus the number of recursive search nodes
// visited (ported from mtv.py's search_space, one entry per find_best call).
func FindBest(oracle *dataset.FrequencyOracle, global *model.Global, Y []Mask, C []Mask, opts Options) ([]Candidate, int, error) {
	if len(Y) == 0 {
		return nil, 0, ErrEmptySearchSpace
	}

	e := newEngine(oracle, global, C, opts)
	z := newTopZ(opts.Z)
	e.search(0, Y, z, math.Inf(-1))

	return z.Sorted(), e.nodesExplored(), nil
}

// FindBestParallel is the internally-parallel variant permitted by spec.md
// §5: each top-level branch (one per surviving singleton in Y) is explored
// by its own goroutine, at most workers at a time (GOMAXPROCS when workers
// < 1). The branches share the frequency oracle (safe for concurrent
// read-append); each branch has its own engine and query cache. Branch
// results are merged in branch order — not as goroutines complete — so the
// output is the same top-z list FindBest would produce for identical input,
// satisfying §5's "identical top-z list for identical input" requirement.
//
// Grounded on the teacher's tsp/bb.go engine-per-search-space pattern: one
// engine per branch goroutine. The returned node count is the root node plus
// every branch's recursive search calls. Each branch prunes against its own
// top-z list rather than one shared across branches, so this count can be
// larger than the one FindBest reports for identical input.
func FindBestParallel(oracle *dataset.FrequencyOracle, global *model.Global, Y []Mask, C []Mask, opts Options, workers int) ([]Candidate, int, error) {
	if len(Y) == 0 {
		return nil, 0, ErrEmptySearchSpace
	}
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	e := newEngine(oracle, global, C, opts)
	atomic.AddInt64(&e.nodes, 1) // root node, evaluated here instead of via e.search
	_, _, rootH, pruned := e.evalX(0)
	if pruned {
		rootH = math.Inf(-1)
	}

	branches := make([]*topZ, len(Y))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i := range Y {
		i := i
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			y := Y[i]
			local := newTopZ(opts.Z)
			if e.opts.AddNegated && !itemset.ValidNegationCandidate(0, y, e.opts.NumPositive) {
				branches[i] = local

				return
			}
			be := newEngine(oracle, global, C, opts)
			be.search(y, Y[i+1:], local, rootH)
			atomic.AddInt64(&e.nodes, be.nodes)
			branches[i] = local
		}()
	}
	wg.Wait()

	merged := newTopZ(opts.Z)
	if !pruned {
		merged.Offer(0, rootH)
	}
	for _, b := range branches {
		for _, c := range b.Sorted() {
			merged.Offer(c.X, c.H)
		}
	}

	return merged.Sorted(), e.nodesExplored(), nil
}

// Best picks the driver-facing winner from a top-z list (spec.md §4.6's
// return rule): the first entry whose itemset is neither 0 nor a singleton.
// If no such entry exists, it returns the top entry verbatim, leaving
// rejection to the driver's validate step (§4.7).
func Best(z []Candidate) (Mask, bool) {
	for _, c := range z {
		if c.X != 0 && !itemset.IsSingleton(c.X) {
			return c.X, true
		}
	}
	if len(z) > 0 {
		return z[0].X, true
	}

	return 0, false
}

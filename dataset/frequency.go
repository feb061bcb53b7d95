package dataset

import (
	"sync"

	"github.com/katalvlaran/mtv/itemset"
)

// FrequencyOracle computes and memoizes fr(X) = |{t ∈ D : X ⊆ t}| / |D|
// (spec.md §4.2). The cache persists for the oracle's lifetime; D is
// immutable, so a cached value can never go stale.
//
// FrequencyOracle is safe for concurrent read-append: Fr may be called from
// multiple goroutines (spec.md §5's "optional parallel find_best_itemset
// must treat the frequency cache as concurrent-read-append, no eviction").
// It is not safe for concurrent use with anything that would evict entries
// (there is no eviction API).
type FrequencyOracle struct {
	d     *Dataset
	mu    sync.RWMutex
	cache map[itemset.Mask]float64
}

// NewFrequencyOracle builds an oracle over d. d must outlive the oracle.
func NewFrequencyOracle(d *Dataset) *FrequencyOracle {
	return &FrequencyOracle{
		d:     d,
		cache: make(map[itemset.Mask]float64, 256),
	}
}

// Fr returns fr(x), computing and caching it on first access.
//
// Complexity: O(|D|) on a cache miss, O(1) on a cache hit.
func (o *FrequencyOracle) Fr(x itemset.Mask) float64 {
	o.mu.RLock()
	v, ok := o.cache[x]
	o.mu.RUnlock()
	if ok {
		return v
	}

	count := 0
	transactions := o.d.Transactions()
	for _, t := range transactions {
		if itemset.Contains(t, x) {
			count++
		}
	}
	v = float64(count) / float64(len(transactions))

	o.mu.Lock()
	o.cache[x] = v
	o.mu.Unlock()

	return v
}

// Len returns |D|.
func (o *FrequencyOracle) Len() int {
	return o.d.Len()
}

package dataset

import (
	"math/bits"

	"github.com/katalvlaran/mtv/itemset"
)

// MaxAttributes is the largest attribute universe this package supports,
// bounded by itemset.Mask's uint64 width.
const MaxAttributes = 64

// Dataset is an immutable multiset of transactions (spec.md §3). D is
// read-only after construction; callers must not mutate the slice returned
// by Transactions.
type Dataset struct {
	transactions []itemset.Mask
	headers      []string
}

// New filters zero-valued (empty) transactions, validates the attribute
// universe, and returns an immutable Dataset. headers may be nil; when
// present its length bounds the attribute universe to len(headers) (checked
// against any bit set beyond that width).
//
// Complexity: O(|raw|).
func New(raw []itemset.Mask, headers []string) (*Dataset, error) {
	filtered := make([]itemset.Mask, 0, len(raw))
	var seen itemset.Mask
	for _, t := range raw {
		if t == 0 {
			continue
		}
		filtered = append(filtered, t)
		seen |= t
	}
	if len(filtered) == 0 {
		return nil, ErrEmptyDataset
	}

	highestBit := bits.Len64(uint64(seen))
	if highestBit > MaxAttributes {
		return nil, ErrAttributeOverflow
	}
	if headers != nil && highestBit > len(headers) {
		return nil, ErrAttributeOverflow
	}

	return &Dataset{transactions: filtered, headers: headers}, nil
}

// Transactions returns the filtered, immutable transaction list.
func (d *Dataset) Transactions() []itemset.Mask {
	return d.transactions
}

// Headers returns the attribute name list (possibly nil).
func (d *Dataset) Headers() []string {
	return d.headers
}

// Len returns |D|, the transaction count.
func (d *Dataset) Len() int {
	return len(d.transactions)
}

// HeaderIndex resolves a single attribute name to its bit position.
// Returns ErrHeaderNotFound if name is not present.
func (d *Dataset) HeaderIndex(name string) (int, error) {
	for i, h := range d.headers {
		if h == name {
			return i, nil
		}
	}

	return 0, ErrHeaderNotFound
}

package dataset

import "github.com/katalvlaran/mtv/itemset"

// WithNegation doubles the attribute universe and rewrites every
// transaction to carry negated columns, per spec.md §4.8. numPositive is
// the attribute count of d before doubling (ordinarily len(itemset.Singletons(d.Transactions()))
// or len(d.Headers())). Headers, if present, are extended with a "not_"
// prefix for the negated half so ToIndexList output stays human-readable.
//
// Complexity: O(|D| · numPositive).
func WithNegation(d *Dataset, numPositive int) (*Dataset, error) {
	rewritten := make([]itemset.Mask, len(d.transactions))
	for i, t := range d.transactions {
		rewritten[i] = itemset.ExtendWithNegation(t, numPositive)
	}

	var headers []string
	if d.headers != nil {
		headers = make([]string, 0, 2*numPositive)
		headers = append(headers, d.headers...)
		for i := 0; i < numPositive; i++ {
			name := "not_" + positionalName(d.headers, i)
			headers = append(headers, name)
		}
	}

	return New(rewritten, headers)
}

func positionalName(headers []string, i int) string {
	if i < len(headers) && headers[i] != "" {
		return headers[i]
	}

	return itemset.ToIndexList(itemset.Mask(1)<<uint(i), nil)[0]
}

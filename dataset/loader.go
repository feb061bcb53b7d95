package dataset

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/mtv/itemset"
)

// Loader is the external-collaborator seam of spec.md §6: something that
// turns raw bytes into a transaction list and an attribute-name list. The
// core package never parses a dataset file itself.
type Loader interface {
	Load(r io.Reader) (transactions []itemset.Mask, headers []string, err error)
}

// TextLoader reads the conventional MTV ".dat" line format: one
// whitespace-separated list of 1-based attribute indices per transaction
// line. Blank lines are skipped. This is a minimal, boundary-only parser —
// dataset parsing is explicitly out of the mined core's scope (spec.md §1);
// no ecosystem library in the example pack fits a whitespace-index format
// better than bufio.Scanner (see DESIGN.md).
type TextLoader struct {
	// Headers, if non-nil, is used verbatim instead of being inferred.
	Headers []string
}

// Load implements Loader.
func (l TextLoader) Load(r io.Reader) ([]itemset.Mask, []string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	transactions := make([]itemset.Mask, 0, 256)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var t itemset.Mask
		for _, field := range strings.Fields(line) {
			idx, err := strconv.Atoi(field)
			if err != nil {
				return nil, nil, &ParseError{Line: line, Err: err}
			}
			if idx < 1 || idx > MaxAttributes {
				return nil, nil, &ParseError{Line: line, Err: ErrAttributeOverflow}
			}
			t |= itemset.Mask(1) << uint(idx-1)
		}
		transactions = append(transactions, t)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}

	return transactions, l.Headers, nil
}

package statsio

import (
	"bufio"
	"io"
	"strings"

	"github.com/katalvlaran/mtv/itemset"
)

// WriteSummary writes one line per itemset in summary, insertion order,
// each a whitespace-separated list of attribute names resolved against
// headers (itemset.ToIndexList falls back to numeric position for any bit
// with no header entry).
func WriteSummary(w io.Writer, summary []itemset.Mask, headers []string) error {
	bw := bufio.NewWriter(w)
	for _, x := range summary {
		names := itemset.ToIndexList(x, headers)
		if _, err := bw.WriteString(strings.Join(names, " ")); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

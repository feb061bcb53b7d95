package statsio

import (
	"io"

	"github.com/katalvlaran/mtv/instrumentation"
	"github.com/katalvlaran/mtv/mtvdriver"
	"gopkg.in/yaml.v3"
)

// StatsRecord is the YAML-serializable shape of one mtvdriver.IterationStats
// entry. Field names are the wire contract the downstream visualization
// collaborator parses against (spec.md §6); keep them stable.
type StatsRecord struct {
	Index           int      `yaml:"index"`
	Itemset         []string `yaml:"itemset"`
	BIC             float64  `yaml:"bic_score"`
	Heuristic       float64  `yaml:"heuristic"`
	ComponentCount  int      `yaml:"component_count"`
	ComponentSizes  []int    `yaml:"component_sizes"`
	SearchSpaceSize int      `yaml:"search_space_size"`
	ElapsedMillis   int64    `yaml:"elapsed_ms"`
}

// Document is the top-level stats YAML document: the per-iteration
// records plus run-wide timer/counter summaries.
type Document struct {
	Iterations []StatsRecord    `yaml:"iterations"`
	Timers     map[string]int64 `yaml:"timers_ms"`
	Counters   map[string]int   `yaml:"counters"`
}

// BuildDocument converts a driver's accumulated stats, timers, and counters
// into the wire Document.
func BuildDocument(iterations []mtvdriver.IterationStats, timers *instrumentation.Timers, counters *instrumentation.Counters) Document {
	records := make([]StatsRecord, len(iterations))
	for i, it := range iterations {
		records[i] = StatsRecord{
			Index:           it.Index,
			Itemset:         it.Itemset,
			BIC:             it.BIC,
			Heuristic:       it.Heuristic,
			ComponentCount:  it.ComponentCount,
			ComponentSizes:  it.ComponentSizes,
			SearchSpaceSize: it.SearchSpaceSize,
			ElapsedMillis:   it.Elapsed.Milliseconds(),
		}
	}

	timerSnapshot := timers.Snapshot()
	timerMillis := make(map[string]int64, len(timerSnapshot))
	for k, v := range timerSnapshot {
		timerMillis[k] = v.Milliseconds()
	}

	return Document{
		Iterations: records,
		Timers:     timerMillis,
		Counters:   counters.Snapshot(),
	}
}

// WriteStats marshals doc as YAML to w.
func WriteStats(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()

	return enc.Encode(doc)
}

package analysis

import (
	"sort"

	"github.com/jonathan/run-analyzer/internal/types"
)

// tally counts keys and remembers the order in which each key was first seen
type tally struct {
	order  []string
	counts map[string]int
}

func newTally() *tally {
	return &tally{counts: make(map[string]int)}
}

// add inserts key with count 1 or increments it
func (t *tally) add(key string) {
	if _, seen := t.counts[key]; !seen {
		t.order = append(t.order, key)
	}
	t.counts[key]++
}

// entries returns counts in first-seen order
func (t *tally) entries() []types.KeyCount {
	out := make([]types.KeyCount, 0, len(t.order))
	for _, key := range t.order {
		out = append(out, types.KeyCount{Key: key, Count: t.counts[key]})
	}
	return out
}

// byCountDesc returns counts sorted by count descending. Equal counts keep
// first-seen order.
func (t *tally) byCountDesc() []types.KeyCount {
	out := t.entries()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

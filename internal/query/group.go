package query

import (
	"cmp"
	"slices"

	"github.com/pkordes/securecheck/internal/domain"
)

// counter tallies keys and remembers the order in which each key was first
// seen, so that equal counts sort the same way on every run.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

// add counts key once. Empty keys are missing values and are skipped.
func (c *counter) add(key string) {
	if key == "" {
		return
	}
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// rows returns the groups by count descending, ties in first-seen order,
// truncated to limit when limit > 0. Never nil.
func (c *counter) rows(limit int) []domain.CountRow {
	out := make([]domain.CountRow, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, domain.CountRow{Label: k, Count: c.counts[k]})
	}
	slices.SortStableFunc(out, func(a, b domain.CountRow) int {
		return cmp.Compare(b.Count, a.Count)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

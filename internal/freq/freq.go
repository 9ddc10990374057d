// Package freq provides insertion-ordered frequency tables with a
// deterministic ranked view.
package freq

import "sort"

// Entry is one item of a frequency table with its count.
type Entry struct {
	Item  string
	Count int
}

// Table counts string items while remembering the order in which each
// item was first added. Ranking ties are broken by that order, never
// lexically, so repeated runs over the same corpus traversal produce
// identical output.
type Table struct {
	counts map[string]int
	first  map[string]int
	items  []string
	total  int
}

// New creates an empty table.
func New() *Table {
	return &Table{
		counts: make(map[string]int),
		first:  make(map[string]int),
	}
}

// Add counts one occurrence of item.
func (t *Table) Add(item string) {
	if _, seen := t.counts[item]; !seen {
		t.first[item] = len(t.items)
		t.items = append(t.items, item)
	}
	t.counts[item]++
	t.total++
}

// AddAll counts one occurrence of every item in order.
func (t *Table) AddAll(items []string) {
	for _, item := range items {
		t.Add(item)
	}
}

// Count returns the occurrence count of item, zero if absent.
func (t *Table) Count(item string) int {
	return t.counts[item]
}

// Len returns the number of distinct items.
func (t *Table) Len() int {
	return len(t.items)
}

// Total returns the number of occurrences across all items.
func (t *Table) Total() int {
	return t.total
}

// Items returns every entry in first-appearance order.
func (t *Table) Items() []Entry {
	out := make([]Entry, 0, len(t.items))
	for _, item := range t.items {
		out = append(out, Entry{Item: item, Count: t.counts[item]})
	}
	return out
}

// TopK returns the k highest-count entries, descending by count with
// ties broken by first appearance. k values below one or above the
// number of distinct items return the full ranking.
func (t *Table) TopK(k int) []Entry {
	ranked := t.Items()
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if k > 0 && k < len(ranked) {
		ranked = ranked[:k]
	}
	return ranked
}

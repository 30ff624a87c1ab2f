package triage

import "sort"

// Entry is one ranked tally row.
type Entry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Tally counts occurrences per distinct key and ranks them by count
// descending with a deterministic tie-break: first-seen order. The
// tie-break is an explicit contract here, not an accident of map
// iteration.
type Tally struct {
	counts map[string]int
	order  []string
}

// NewTally returns an empty tally.
func NewTally() *Tally {
	return &Tally{counts: make(map[string]int)}
}

// Add records one occurrence of key.
func (t *Tally) Add(key string) {
	if _, seen := t.counts[key]; !seen {
		t.order = append(t.order, key)
	}
	t.counts[key]++
}

// Distinct returns the number of distinct keys.
func (t *Tally) Distinct() int { return len(t.order) }

// Count returns the count for key, zero if unseen.
func (t *Tally) Count(key string) int { return t.counts[key] }

// Entries returns all entries ranked by count descending, ties broken by
// first-seen order.
func (t *Tally) Entries() []Entry {
	entries := make([]Entry, 0, len(t.order))
	for _, key := range t.order {
		entries = append(entries, Entry{Key: key, Count: t.counts[key]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}

// Top returns the n highest-ranked entries, or all of them when n exceeds
// the distinct count. n <= 0 returns nil.
func (t *Tally) Top(n int) []Entry {
	if n <= 0 {
		return nil
	}
	entries := t.Entries()
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

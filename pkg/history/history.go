// Package history builds the cumulative word-frequency table from dated
// snapshots: one row per date, one column per word in first-seen order,
// each cell the running total of occurrences up to that date.
package history

import (
	"fmt"
	"sort"

	"github.com/dtnitsch/palabras/pkg/snapshot"
)

// Entry is one day's raw word list, repeats included.
type Entry struct {
	Date  string
	Words []string
}

// Rank is one bar of a ranking: a word and its cumulative count.
type Rank struct {
	Word  string
	Count int
}

// Table is a sparse (date, word) -> cumulative count matrix. Dates are
// ascending, words keep the order in which they first appeared, and a
// missing cell means the word had not been seen yet (count zero).
type Table struct {
	dates  []string
	words  []string
	counts map[string]map[string]int
}

// FromEntries accumulates entries in date order. A word occurring twice in
// one entry counts twice. The per-word running counter is local to the
// call; nothing persists between invocations.
func FromEntries(entries []Entry) *Table {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	t := &Table{counts: make(map[string]map[string]int)}
	running := make(map[string]int)

	for _, entry := range sorted {
		for _, word := range entry.Words {
			if _, seen := running[word]; !seen {
				t.words = append(t.words, word)
			}
			running[word]++
		}

		row := make(map[string]int, len(running))
		for word, count := range running {
			row[word] = count
		}
		t.dates = append(t.dates, entry.Date)
		t.counts[entry.Date] = row
	}
	return t
}

// Accumulate reads every snapshot in the store and builds the table.
func Accumulate(store *snapshot.Store) (*Table, error) {
	snaps, err := store.List()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(snaps))
	for _, snap := range snaps {
		words, err := store.Read(snap.Date)
		if err != nil {
			return nil, fmt.Errorf("snapshot %s: %w", snap.Date, err)
		}
		entries = append(entries, Entry{Date: snap.Date, Words: words})
	}
	return FromEntries(entries), nil
}

// Dates returns the processed dates in ascending order.
func (t *Table) Dates() []string {
	return t.dates
}

// Words returns every word ever seen, in first-seen order.
func (t *Table) Words() []string {
	return t.words
}

// Count returns the cumulative count for (date, word), zero if the word
// had not appeared by that date.
func (t *Table) Count(date, word string) int {
	return t.counts[date][word]
}

// Row returns one date's counts in column (first-seen) order.
func (t *Table) Row(date string) []int {
	row := make([]int, len(t.words))
	for i, word := range t.words {
		row[i] = t.counts[date][word]
	}
	return row
}

// LastDate returns the most recent date, false on an empty table.
func (t *Table) LastDate() (string, bool) {
	if len(t.dates) == 0 {
		return "", false
	}
	return t.dates[len(t.dates)-1], true
}

// MaxCount returns the largest cell value in the table. Counts are
// monotone along the date axis, so this is the max of the final row.
func (t *Table) MaxCount() int {
	last, ok := t.LastDate()
	if !ok {
		return 0
	}
	max := 0
	for _, count := range t.counts[last] {
		if count > max {
			max = count
		}
	}
	return max
}

// TopN ranks one date's row descending by count and keeps the first n
// entries. Ties keep column order (stable sort), matching CSV column
// order for reproducible rankings. A non-positive n yields no ranks.
func (t *Table) TopN(date string, n int) []Rank {
	ranks := make([]Rank, len(t.words))
	for i, word := range t.words {
		ranks[i] = Rank{Word: word, Count: t.counts[date][word]}
	}

	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].Count > ranks[j].Count })

	if n < 0 {
		n = 0
	}
	if n < len(ranks) {
		ranks = ranks[:n]
	}
	return ranks
}

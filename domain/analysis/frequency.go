// Package analysis computes derived statistics over a draw history. Everything
// here is recomputed wholesale from the current collection; nothing is cached
// or mutated in place.
package analysis

import (
	"sort"

	"github.com/justinecabel/3-digit-lotto-analyzer/domain/draw"
)

// Entry is the occurrence record for one observed value
type Entry struct {
	Value      int     `json:"value"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Frequencies flattens every draw into one counting pass and returns entries
// sorted by count descending, ties broken by value ascending.
func Frequencies(draws []draw.Draw) []Entry {
	counts := make(map[int]int)
	total := 0
	for _, d := range draws {
		for _, v := range d.Values {
			counts[v]++
			total++
		}
	}

	entries := make([]Entry, 0, len(counts))
	for value, count := range counts {
		entries = append(entries, Entry{
			Value:      value,
			Count:      count,
			Percentage: 100 * float64(count) / float64(total),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Value < entries[j].Value
	})

	return entries
}

// HotDigits derives the frequency-based prediction: the values of the top n
// entries, sorted ascending. With fewer than n distinct values observed the
// shorter list is returned as-is; callers must tolerate a short prediction.
func HotDigits(entries []Entry, n int) []int {
	if n > len(entries) {
		n = len(entries)
	}
	hot := make([]int, 0, n)
	for _, e := range entries[:n] {
		hot = append(hot, e.Value)
	}
	sort.Ints(hot)
	return hot
}

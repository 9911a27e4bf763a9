package lexicon

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Remove deletes words together with their frequencies and every bigram
// they take part in. It returns the number of words that were known.
func (l *Lexicon) Remove(words ...string) int {
	drop := make(map[string]bool, len(words))
	for _, w := range words {
		if w = Normalize(w); l.Contains(w) {
			drop[w] = true
		}
	}
	l.removeSet(drop)
	return len(drop)
}

// Prune removes trained words seen fewer than minCount times. Words that
// were added without a frequency are kept.
func (l *Lexicon) Prune(minCount int) int {
	drop := make(map[string]bool)
	for w, n := range l.unigram {
		if n < minCount {
			drop[w] = true
		}
	}
	l.removeSet(drop)
	return len(drop)
}

// Teach ingests a segmented example such as "new york" and removes every
// known word that would join characters across one of its boundaries, so
// that the example segments the way it is written. The removed words are
// returned in sorted order.
func (l *Lexicon) Teach(example string) []string {
	fields := strings.Fields(Normalize(example))
	if len(fields) == 0 {
		return nil
	}
	l.IngestTrainingText(strings.Join(fields, " "), " ")
	if len(fields) == 1 {
		return nil
	}

	cuts := make([]int, 0, len(fields)-1)
	pos := 0
	for _, f := range fields[:len(fields)-1] {
		pos += utf8.RuneCountInString(f)
		cuts = append(cuts, pos)
	}

	runes := []rune(strings.Join(fields, ""))
	drop := make(map[string]bool)
	for start := range runes {
		for end := start + 2; end <= len(runes); end++ {
			if !straddles(cuts, start, end) {
				continue
			}
			if w := string(runes[start:end]); l.Contains(w) {
				drop[w] = true
			}
		}
	}
	l.removeSet(drop)

	removed := make([]string, 0, len(drop))
	for w := range drop {
		removed = append(removed, w)
	}
	sort.Strings(removed)
	return removed
}

func straddles(cuts []int, start, end int) bool {
	for _, c := range cuts {
		if start < c && c < end {
			return true
		}
	}
	return false
}

func (l *Lexicon) removeSet(drop map[string]bool) {
	if len(drop) == 0 {
		return
	}
	recompute := false
	for w := range drop {
		delete(l.words, w)
		delete(l.unigram, w)
		if utf8.RuneCountInString(w) == l.maxLen {
			recompute = true
		}
	}
	for b := range l.bigram {
		if drop[b.Prev] || drop[b.Next] {
			delete(l.bigram, b)
		}
	}
	if recompute {
		l.maxLen = 0
		for w := range l.words {
			l.maxLen = max(l.maxLen, utf8.RuneCountInString(w))
		}
	}
}

// Package report aggregates statistics over segmentation results.
//
// A Collector receives every result handed to it through the Sink
// interface, computes per-text statistics and keeps running totals. Stopwords
// are supplied by the caller; no word list is bundled.
package report

import (
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/teatak/wordseg/lexicon"
	"github.com/teatak/wordseg/segmenter"
	"github.com/teatak/wordseg/util"
)

// Sink receives segmentation results for reporting.
type Sink interface {
	Consume(text string, res segmenter.Result)
}

// Stats describes one segmented text.
type Stats struct {
	Text               string
	Method             segmenter.Method
	Score              float64
	Tokens             []string
	CharacterCount     int
	WordCount          int
	ContentWordCount   int
	StopwordCount      int
	PunctuationCount   int
	UniqueWords        int
	UniqueContentWords int
	AvgWordLength      float64
	ContentRatio       float64
	WordFrequency      map[string]int
	StopwordsFound     []string
}

// TopWords returns the n most frequent content words, most frequent first.
// n < 0 returns all of them.
func (s *Stats) TopWords(n int) []lexicon.WordCount {
	out := make([]lexicon.WordCount, 0, len(s.WordFrequency))
	for w, c := range s.WordFrequency {
		out = append(out, lexicon.WordCount{Word: w, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Word < out[j].Word
	})
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// Totals are running counters over everything a Collector has consumed.
type Totals struct {
	Analyses       int
	WordsProcessed int
	MethodsUsed    map[segmenter.Method]int
}

// Collector is a Sink that keeps per-text Stats and Totals. It is safe for
// concurrent use.
type Collector struct {
	stopwords map[string]bool

	mu      sync.Mutex
	history []Stats
	totals  Totals
}

var _ Sink = (*Collector)(nil)

// NewCollector creates a collector that treats the given words as stopwords.
func NewCollector(stopwords ...string) *Collector {
	c := &Collector{
		stopwords: make(map[string]bool, len(stopwords)),
		totals:    Totals{MethodsUsed: make(map[segmenter.Method]int)},
	}
	for _, w := range stopwords {
		if w = lexicon.Normalize(w); w != "" {
			c.stopwords[w] = true
		}
	}
	return c
}

// Consume implements Sink.
func (c *Collector) Consume(text string, res segmenter.Result) {
	c.Record(text, res)
}

// Record analyzes res, adds it to the history and totals, and returns the
// recorded Stats.
func (c *Collector) Record(text string, res segmenter.Result) Stats {
	st := c.Analyze(text, res)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = append(c.history, st)
	c.totals.Analyses++
	c.totals.WordsProcessed += st.WordCount
	c.totals.MethodsUsed[res.Method]++
	return st
}

// Analyze computes Stats for one result without recording it.
// A content word is a non-stopword longer than one rune that contains at
// least one letter. White-space tokens are not counted as words.
func (c *Collector) Analyze(text string, res segmenter.Result) Stats {
	st := Stats{
		Text:           text,
		Method:         res.Method,
		Score:          res.Score,
		CharacterCount: utf8.RuneCountInString(lexicon.Normalize(text)),
		WordFrequency:  make(map[string]int),
	}

	unique := make(map[string]bool)
	totalLen := 0
	for _, tok := range res.Tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		st.Tokens = append(st.Tokens, tok)
		st.WordCount++
		totalLen += utf8.RuneCountInString(tok)
		unique[tok] = true

		switch {
		case c.stopwords[tok]:
			st.StopwordCount++
			st.StopwordsFound = append(st.StopwordsFound, tok)
		case utf8.RuneCountInString(tok) > 1 && !util.IsNumericOrPunct(tok):
			st.ContentWordCount++
			st.WordFrequency[tok]++
		}
		if util.IsPunctuation(tok) {
			st.PunctuationCount++
		}
	}

	st.UniqueWords = len(unique)
	st.UniqueContentWords = len(st.WordFrequency)
	if st.WordCount > 0 {
		st.AvgWordLength = float64(totalLen) / float64(st.WordCount)
		st.ContentRatio = float64(st.ContentWordCount) / float64(st.WordCount)
	}
	return st
}

// History returns a copy of the recorded per-text stats in arrival order.
func (c *Collector) History() []Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Stats, len(c.history))
	copy(out, c.history)
	return out
}

// Totals returns a snapshot of the running counters.
func (c *Collector) Totals() Totals {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.totals
	t.MethodsUsed = make(map[segmenter.Method]int, len(c.totals.MethodsUsed))
	for m, n := range c.totals.MethodsUsed {
		t.MethodsUsed[m] = n
	}
	return t
}

// Combined merges the word frequencies of every recorded text.
func (c *Collector) Combined() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	all := Stats{WordFrequency: make(map[string]int)}
	unique := make(map[string]bool)
	totalLen := 0
	for _, st := range c.history {
		for _, tok := range st.Tokens {
			unique[tok] = true
			totalLen += utf8.RuneCountInString(tok)
		}
		all.CharacterCount += st.CharacterCount
		all.WordCount += st.WordCount
		all.ContentWordCount += st.ContentWordCount
		all.StopwordCount += st.StopwordCount
		all.PunctuationCount += st.PunctuationCount
		all.StopwordsFound = append(all.StopwordsFound, st.StopwordsFound...)
		for w, n := range st.WordFrequency {
			all.WordFrequency[w] += n
		}
	}
	all.UniqueWords = len(unique)
	all.UniqueContentWords = len(all.WordFrequency)
	if all.WordCount > 0 {
		all.AvgWordLength = float64(totalLen) / float64(all.WordCount)
		all.ContentRatio = float64(all.ContentWordCount) / float64(all.WordCount)
	}
	return all
}

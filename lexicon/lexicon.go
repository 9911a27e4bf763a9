// Package lexicon holds the known words of a segmentation dictionary together
// with the unigram and bigram frequencies learned from pre-segmented text.
//
// A Lexicon is built up by AddWords, IngestTrainingText and the file loaders,
// then frozen into an immutable snapshot before segmentation. Only the
// snapshot may be shared between goroutines.
package lexicon

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"
)

// ErrInvalidArgument marks errors caused by bad caller input: unknown method
// names, non-positive length caps, malformed dictionary lines.
var ErrInvalidArgument = errors.New("invalid argument")

// Bigram is an ordered pair of adjacent words.
type Bigram struct {
	Prev string
	Next string
}

// WordCount pairs a word with its unigram frequency.
type WordCount struct {
	Word  string
	Count int
}

// Reader is the read-only view of a lexicon used during segmentation.
// Arguments must already be normalized (see Normalize).
type Reader interface {
	Contains(word string) bool
	UnigramCount(word string) int
	BigramCount(prev, next string) int
}

// Normalize trims surrounding white space, lower-cases s and applies NFC
// composition. Every word stored in a lexicon and every text handed to the
// segmenter passes through it. Composition runs last so that Normalize is
// idempotent.
func Normalize(s string) string {
	return norm.NFC.String(strings.ToLower(strings.TrimSpace(s)))
}

type tables struct {
	words   map[string]struct{}
	unigram map[string]int
	bigram  map[Bigram]int
	maxLen  int
}

func newTables() tables {
	return tables{
		words:   make(map[string]struct{}),
		unigram: make(map[string]int),
		bigram:  make(map[Bigram]int),
	}
}

// Contains reports whether word is a known word.
func (t *tables) Contains(word string) bool {
	_, ok := t.words[word]
	return ok
}

// UnigramCount returns how often word was seen in training text, 0 if never.
func (t *tables) UnigramCount(word string) int {
	return t.unigram[word]
}

// BigramCount returns how often next directly followed prev in training text.
func (t *tables) BigramCount(prev, next string) int {
	return t.bigram[Bigram{Prev: prev, Next: next}]
}

// Len returns the number of known words.
func (t *tables) Len() int { return len(t.words) }

// UnigramLen returns the number of words with a non-zero frequency.
func (t *tables) UnigramLen() int { return len(t.unigram) }

// BigramLen returns the number of distinct bigrams.
func (t *tables) BigramLen() int { return len(t.bigram) }

// MaxLen returns the length in runes of the longest known word.
func (t *tables) MaxLen() int { return t.maxLen }

// TopWords returns up to n words with the highest unigram frequency, most
// frequent first. Equal counts are ordered alphabetically.
func (t *tables) TopWords(n int) []WordCount {
	ss := make([]WordCount, 0, len(t.unigram))
	for w, c := range t.unigram {
		ss = append(ss, WordCount{Word: w, Count: c})
	}
	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Count != ss[j].Count {
			return ss[i].Count > ss[j].Count
		}
		return ss[i].Word < ss[j].Word
	})
	if n >= 0 && n < len(ss) {
		ss = ss[:n]
	}
	return ss
}

func (t *tables) insert(word string) {
	if _, ok := t.words[word]; ok {
		return
	}
	t.words[word] = struct{}{}
	if n := utf8.RuneCountInString(word); n > t.maxLen {
		t.maxLen = n
	}
}

func (t *tables) clone() tables {
	c := tables{
		words:   make(map[string]struct{}, len(t.words)),
		unigram: make(map[string]int, len(t.unigram)),
		bigram:  make(map[Bigram]int, len(t.bigram)),
		maxLen:  t.maxLen,
	}
	for w := range t.words {
		c.words[w] = struct{}{}
	}
	for w, n := range t.unigram {
		c.unigram[w] = n
	}
	for b, n := range t.bigram {
		c.bigram[b] = n
	}
	return c
}

// Lexicon is the mutable dictionary used while building and training.
// It is not safe for concurrent use.
type Lexicon struct {
	tables
}

// New creates an empty lexicon.
func New() *Lexicon {
	return &Lexicon{tables: newTables()}
}

// AddWords normalizes and inserts words. Empty words are skipped.
func (l *Lexicon) AddWords(words ...string) {
	for _, w := range words {
		w = Normalize(w)
		if w == "" {
			continue
		}
		l.insert(w)
	}
}

// IngestTrainingText splits pre-segmented text on delimiter and counts
// unigrams and bigrams. Every non-empty token also becomes a known word.
// A bigram is counted only for two non-empty tokens that are adjacent in the
// split, so an empty piece between two delimiters breaks the chain.
// An empty delimiter splits on runs of white space.
func (l *Lexicon) IngestTrainingText(text, delimiter string) {
	if text == "" {
		return
	}
	var pieces []string
	if delimiter == "" {
		pieces = strings.Fields(text)
	} else {
		pieces = strings.Split(text, delimiter)
	}
	l.IngestTokens(pieces)
}

// IngestTokens counts an already split token sequence the way
// IngestTrainingText counts its pieces: an empty token breaks the bigram
// chain.
func (l *Lexicon) IngestTokens(pieces []string) {
	tokens := make([]string, len(pieces))
	for i, p := range pieces {
		tokens[i] = Normalize(p)
	}
	for i, tok := range tokens {
		if tok == "" {
			continue
		}
		l.unigram[tok]++
		l.insert(tok)
		if i > 0 && tokens[i-1] != "" {
			l.bigram[Bigram{Prev: tokens[i-1], Next: tok}]++
		}
	}
}

// AddFrequency adds count to the unigram frequency of word and marks it
// known. Negative counts are rejected.
func (l *Lexicon) AddFrequency(word string, count int) error {
	if count < 0 {
		return errors.Wrapf(ErrInvalidArgument, "negative frequency %d for %q", count, word)
	}
	word = Normalize(word)
	if word == "" {
		return nil
	}
	l.insert(word)
	if count > 0 {
		l.unigram[word] += count
	}
	return nil
}

// Freeze returns an immutable snapshot of the lexicon. Later mutations of l
// do not affect the snapshot.
func (l *Lexicon) Freeze() *Frozen {
	return &Frozen{tables: l.clone()}
}

// Frozen is a read-only lexicon snapshot, safe to share between goroutines.
type Frozen struct {
	tables
}

var (
	_ Reader = (*Lexicon)(nil)
	_ Reader = (*Frozen)(nil)
)

// Build creates a frozen lexicon from a word list and optional training
// corpora. Each corpus is space-delimited pre-segmented text.
func Build(words []string, corpus ...string) *Frozen {
	l := New()
	l.AddWords(words...)
	for _, text := range corpus {
		l.IngestTrainingText(text, " ")
	}
	return l.Freeze()
}

// Package matcher implements forward and backward maximum matching over a
// lexicon.
//
// Both directions take the longest dictionary word at the current position
// and fall back to a single character when nothing matches, so the output
// always covers the whole normalized input. Lengths are counted in runes.
//
// Without a cap each position may scan to the end of the text, which makes a
// call O(L²) in the text length. WithMaxLen bounds the scan to O(L×N).
package matcher

import (
	"github.com/teatak/wordseg/lexicon"
)

type options struct {
	maxLen     int
	normalized bool
}

// Option configures a match call.
type Option func(*options)

// WithMaxLen caps the candidate length in runes. n <= 0 means no cap.
func WithMaxLen(n int) Option {
	return func(o *options) {
		o.maxLen = n
	}
}

// maxLener is implemented by lexicons that track their longest word. No
// candidate longer than that can match, so the scan stops there.
type maxLener interface {
	MaxLen() int
}

// Normalized declares that text has already been through lexicon.Normalize,
// so the matcher uses it as given.
func Normalized() Option {
	return func(o *options) {
		o.normalized = true
	}
}

func prepare(text string, lex lexicon.Reader, opts []Option) (string, int) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.normalized {
		text = lexicon.Normalize(text)
	}
	limit := o.maxLen
	if ml, ok := lex.(maxLener); ok {
		n := max(ml.MaxLen(), 1)
		if limit <= 0 || n < limit {
			limit = n
		}
	}
	return text, limit
}

// runeOffsets returns the byte offset of every rune in s followed by len(s),
// so that s[offs[i]:offs[j]] is the substring of runes i..j-1.
func runeOffsets(s string) []int {
	offs := make([]int, 0, len(s)+1)
	for i := range s {
		offs = append(offs, i)
	}
	return append(offs, len(s))
}

// Forward segments text left to right, taking the longest known word at each
// position.
func Forward(text string, lex lexicon.Reader, opts ...Option) []string {
	text, limit := prepare(text, lex, opts)
	offs := runeOffsets(text)
	n := len(offs) - 1

	tokens := make([]string, 0, n)
	for i := 0; i < n; {
		end := i + 1
		for j := i + 1; j <= n; j++ {
			if limit > 0 && j-i > limit {
				break
			}
			if lex.Contains(text[offs[i]:offs[j]]) {
				end = j
			}
		}
		tokens = append(tokens, text[offs[i]:offs[end]])
		i = end
	}
	return tokens
}

// Backward segments text right to left, taking the longest known word that
// ends at each position. Tokens are returned in reading order.
func Backward(text string, lex lexicon.Reader, opts ...Option) []string {
	text, limit := prepare(text, lex, opts)
	offs := runeOffsets(text)
	n := len(offs) - 1

	var reversed []string
	for e := n; e > 0; {
		start := e - 1
		for s := e - 1; s >= 0; s-- {
			if limit > 0 && e-s > limit {
				break
			}
			if lex.Contains(text[offs[s]:offs[e]]) {
				start = s
			}
		}
		reversed = append(reversed, text[offs[start]:offs[e]])
		e = start
	}

	tokens := make([]string, len(reversed))
	for i, tok := range reversed {
		tokens[len(reversed)-1-i] = tok
	}
	return tokens
}

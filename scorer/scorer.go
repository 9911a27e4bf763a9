// Package scorer ranks candidate segmentations.
//
// Scores are additive heuristics, not probabilities. They only order
// alternatives for the same input and are not comparable across texts.
package scorer

import (
	"unicode/utf8"

	"github.com/teatak/wordseg/lexicon"
)

// Weights used by Sequence and Contextual.
const (
	SequenceBase   = 1000.0
	SequenceSingle = 10.0
	SequenceKnown  = 10.0
	ContextKnown   = 100.0
	ContextBigram  = 10.0
	ContextSingle  = 50.0
)

// Sequence scores a whole segmentation: fewer, longer, known and frequent
// tokens score higher. An empty sequence scores 0.
func Sequence(tokens []string, lex lexicon.Reader) float64 {
	if len(tokens) == 0 {
		return 0
	}
	score := SequenceBase / float64(len(tokens))
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) == 1 {
			score -= SequenceSingle
		}
		if lex.Contains(tok) {
			score += SequenceKnown
		}
		score += float64(lex.UnigramCount(tok))
	}
	return score
}

// Contextual scores one candidate token during statistical search. prev is
// the previously emitted token and is ignored unless hasPrev and useBigram
// are both set.
func Contextual(candidate, prev string, hasPrev bool, lex lexicon.Reader, useBigram bool) float64 {
	score := float64(lex.UnigramCount(candidate))
	if lex.Contains(candidate) {
		score += ContextKnown
	}
	if useBigram && hasPrev {
		score += ContextBigram * float64(lex.BigramCount(prev, candidate))
	}
	if utf8.RuneCountInString(candidate) == 1 {
		score -= ContextSingle
	}
	return score
}

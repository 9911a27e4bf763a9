package segmenter

import (
	"math"

	"github.com/teatak/wordseg/lexicon"
	"github.com/teatak/wordseg/scorer"
)

// statistical greedily picks, at each position, the candidate of 1..maxLen
// runes with the highest contextual score. Candidates are tried shortest
// first and only a strictly higher score replaces the current best, so ties
// go to the shorter candidate. The single rune is always a candidate, which
// guarantees progress.
func statistical(text string, lex lexicon.Reader, useBigram bool, maxLen int) []string {
	runes := []rune(text)
	n := len(runes)
	tokens := make([]string, 0, n)

	for i := 0; i < n; {
		best := ""
		bestLen := 0
		bestScore := math.Inf(-1)
		prev, hasPrev := "", len(tokens) > 0
		if hasPrev {
			prev = tokens[len(tokens)-1]
		}
		for l := 1; l <= maxLen && i+l <= n; l++ {
			cand := string(runes[i : i+l])
			score := scorer.Contextual(cand, prev, hasPrev, lex, useBigram)
			if score > bestScore {
				best, bestLen, bestScore = cand, l, score
			}
		}
		tokens = append(tokens, best)
		i += bestLen
	}
	return tokens
}

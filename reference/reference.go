// Package reference wraps third-party tokenizers used to benchmark the
// dictionary segmenter. The segmenter itself never calls into this package.
package reference

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/words"
	"github.com/go-ego/gse"
	"github.com/pkg/errors"

	"github.com/teatak/wordseg/lexicon"
)

// Tokenizer splits text into words.
type Tokenizer interface {
	Name() string
	Tokenize(text string) ([]string, error)
}

// New returns the reference tokenizer registered under name.
func New(name string, gseDicts ...string) (Tokenizer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "uax29":
		return NewUAX29(), nil
	case "gse":
		return NewGse(gseDicts...)
	default:
		return nil, errors.Wrapf(lexicon.ErrInvalidArgument, "unknown reference tokenizer %q", name)
	}
}

// UAX29 splits text on Unicode word boundaries (UAX #29). Scripts written
// without spaces come out as runs, so it is a baseline rather than a
// competitor.
type UAX29 struct{}

// NewUAX29 creates a Unicode word-boundary tokenizer.
func NewUAX29() *UAX29 { return &UAX29{} }

// Name implements Tokenizer.
func (*UAX29) Name() string { return "uax29" }

// Tokenize implements Tokenizer. Segments made only of white space are
// dropped.
func (*UAX29) Tokenize(text string) ([]string, error) {
	var out []string
	tokens := words.FromString(text)
	for tokens.Next() {
		tok := tokens.Value()
		if isSpace(tok) {
			continue
		}
		out = append(out, tok)
	}
	return out, nil
}

// Gse wraps the gse dictionary segmenter.
type Gse struct {
	seg gse.Segmenter
}

// NewGse loads the given dictionary files, or gse's embedded dictionary when
// none are given.
func NewGse(dictFiles ...string) (*Gse, error) {
	seg, err := gse.New(dictFiles...)
	if err != nil {
		return nil, errors.Wrapf(err, "loading gse dictionaries %v", dictFiles)
	}
	return &Gse{seg: seg}, nil
}

// Name implements Tokenizer.
func (*Gse) Name() string { return "gse" }

// Tokenize implements Tokenizer.
func (g *Gse) Tokenize(text string) ([]string, error) {
	var out []string
	for _, tok := range g.seg.Cut(text) {
		if isSpace(tok) {
			continue
		}
		out = append(out, tok)
	}
	return out, nil
}

func isSpace(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Agreement compares the word boundaries of two segmentations of the same
// text. White space is ignored and boundaries are rune offsets into the
// remaining characters, so tokenizers that drop spaces still line up.
type Agreement struct {
	Candidate int // boundaries in the segmentation under test
	Reference int // boundaries in the reference segmentation
	Matched   int

	Precision float64
	Recall    float64
	F1        float64
	// Aligned is false when the two token streams do not cover the same
	// characters; the scores are then not meaningful.
	Aligned bool
}

// Compare computes boundary agreement of candidate against reference. Both
// sides are lower-cased before alignment is checked.
func Compare(candidate, reference []string) Agreement {
	cb, ctext := boundaries(candidate)
	rb, rtext := boundaries(reference)

	a := Agreement{
		Candidate: len(cb),
		Reference: len(rb),
		Aligned:   ctext == rtext,
	}
	for off := range cb {
		if rb[off] {
			a.Matched++
		}
	}
	if a.Candidate > 0 {
		a.Precision = float64(a.Matched) / float64(a.Candidate)
	}
	if a.Reference > 0 {
		a.Recall = float64(a.Matched) / float64(a.Reference)
	}
	if a.Precision+a.Recall > 0 {
		a.F1 = 2 * a.Precision * a.Recall / (a.Precision + a.Recall)
	}
	return a
}

// boundaries returns the end offsets of every token with white space
// removed, plus the concatenated text they cover.
func boundaries(tokens []string) (map[int]bool, string) {
	set := make(map[int]bool, len(tokens))
	var sb strings.Builder
	pos := 0
	for _, tok := range tokens {
		stripped := strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return unicode.ToLower(r)
		}, tok)
		if stripped == "" {
			continue
		}
		sb.WriteString(stripped)
		pos += utf8.RuneCountInString(stripped)
		set[pos] = true
	}
	return set, sb.String()
}

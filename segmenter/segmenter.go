// Package segmenter chooses a segmentation strategy, runs it over a frozen
// lexicon and returns the tokens with their score.
package segmenter

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/teatak/wordseg/lexicon"
	"github.com/teatak/wordseg/matcher"
	"github.com/teatak/wordseg/scorer"
)

// ErrInvalidArgument is returned for unknown methods, bad length caps and a
// missing lexicon.
var ErrInvalidArgument = lexicon.ErrInvalidArgument

// Method selects the segmentation strategy.
type Method int

const (
	Forward       Method = iota // Forward uses left-to-right maximum matching.
	Backward                    // Backward uses right-to-left maximum matching.
	Bidirectional               // Bidirectional runs both directions and keeps the better score.
	Statistical                 // Statistical picks candidates by frequency and bigram context.
)

var methodNames = [...]string{"forward", "backward", "bidirectional", "statistical"}

// Methods lists every strategy in declaration order.
var Methods = []Method{Forward, Backward, Bidirectional, Statistical}

func (m Method) String() string {
	if m.Valid() {
		return methodNames[m]
	}
	return "Method(" + strconv.Itoa(int(m)) + ")"
}

// Valid reports whether m is one of the declared strategies.
func (m Method) Valid() bool {
	return m >= Forward && m <= Statistical
}

// ParseMethod resolves a strategy name, ignoring case and surrounding space.
func ParseMethod(name string) (Method, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range methodNames {
		if n == key {
			return Method(i), nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidArgument, "unknown segmentation method %q", name)
}

// Options tunes segmentation.
type Options struct {
	// UseBigram adds bigram context to statistical candidate scores.
	UseBigram bool
	// MaxStatisticalLen caps candidate length in runes for Statistical.
	// Statistical runs in O(L×MaxStatisticalLen) and cannot emit known
	// words longer than the cap.
	MaxStatisticalLen int
	// MaxMatchLen caps candidate length in runes for the matching
	// strategies. 0 means no cap, which makes matching O(L²).
	MaxMatchLen int
}

// DefaultStatisticalLen is the default statistical candidate cap.
const DefaultStatisticalLen = 10

// DefaultOptions returns bigram scoring on, a statistical cap of 10 runes
// and uncapped matching.
func DefaultOptions() Options {
	return Options{
		UseBigram:         true,
		MaxStatisticalLen: DefaultStatisticalLen,
	}
}

// Validate checks the length caps.
func (o Options) Validate() error {
	if o.MaxStatisticalLen <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "max statistical length must be positive, got %d", o.MaxStatisticalLen)
	}
	if o.MaxMatchLen < 0 {
		return errors.Wrapf(ErrInvalidArgument, "max match length must not be negative, got %d", o.MaxMatchLen)
	}
	return nil
}

// Result is the outcome of one segmentation call.
type Result struct {
	Tokens []string
	Method Method
	// Score ranks this segmentation against others of the same text.
	Score float64

	// Direction is the strategy that produced Tokens: the winning
	// direction for Bidirectional, Method for everything else.
	Direction Method
	// ForwardScore and BackwardScore are set by Bidirectional.
	ForwardScore  float64
	BackwardScore float64
}

// Segment splits text into tokens with the given method. The tokens
// concatenate to lexicon.Normalize(text). Empty text yields no tokens and a
// zero score.
func Segment(text string, lex *lexicon.Frozen, method Method, opts Options) (Result, error) {
	if lex == nil {
		return Result{}, errors.Wrap(ErrInvalidArgument, "nil lexicon")
	}
	if !method.Valid() {
		return Result{}, errors.Wrapf(ErrInvalidArgument, "unknown segmentation method %d", int(method))
	}
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	text = lexicon.Normalize(text)
	res := Result{Method: method, Direction: method, Tokens: []string{}}
	if text == "" {
		return res, nil
	}

	mopts := []matcher.Option{matcher.Normalized()}
	if opts.MaxMatchLen > 0 {
		mopts = append(mopts, matcher.WithMaxLen(opts.MaxMatchLen))
	}

	switch method {
	case Forward:
		res.Tokens = matcher.Forward(text, lex, mopts...)
		res.Score = scorer.Sequence(res.Tokens, lex)
	case Backward:
		res.Tokens = matcher.Backward(text, lex, mopts...)
		res.Score = scorer.Sequence(res.Tokens, lex)
	case Bidirectional:
		fwd := matcher.Forward(text, lex, mopts...)
		bwd := matcher.Backward(text, lex, mopts...)
		res.ForwardScore = scorer.Sequence(fwd, lex)
		res.BackwardScore = scorer.Sequence(bwd, lex)
		// Equal scores keep the forward segmentation.
		if res.ForwardScore >= res.BackwardScore {
			res.Tokens, res.Score, res.Direction = fwd, res.ForwardScore, Forward
		} else {
			res.Tokens, res.Score, res.Direction = bwd, res.BackwardScore, Backward
		}
	case Statistical:
		res.Tokens = statistical(text, lex, opts.UseBigram, opts.MaxStatisticalLen)
		res.Score = scorer.Sequence(res.Tokens, lex)
	}
	return res, nil
}

package segmenter

import (
	"context"
	"runtime"
	"sync"

	"github.com/pkg/errors"

	"github.com/teatak/wordseg/lexicon"
)

// Segmenter binds a frozen lexicon to a set of options. It holds no mutable
// state and may be shared between goroutines.
type Segmenter struct {
	Lex     *lexicon.Frozen
	Options Options
}

// NewSegmenter creates a segmenter with DefaultOptions.
func NewSegmenter(lex *lexicon.Frozen) *Segmenter {
	return &Segmenter{Lex: lex, Options: DefaultOptions()}
}

// Segment runs Segment with the segmenter's lexicon and options.
func (s *Segmenter) Segment(text string, method Method) (Result, error) {
	return Segment(text, s.Lex, method, s.Options)
}

// Cut returns only the tokens, using the given method (defaults to
// Bidirectional).
func (s *Segmenter) Cut(text string, methods ...Method) ([]string, error) {
	method := Bidirectional
	if len(methods) > 0 {
		method = methods[0]
	}
	res, err := s.Segment(text, method)
	if err != nil {
		return nil, err
	}
	return res.Tokens, nil
}

// SegmentAll segments texts in parallel and returns results in input order.
// Arguments are validated once up front. Cancelling ctx stops workers from
// picking up further texts; a text already being segmented runs to the end.
func (s *Segmenter) SegmentAll(ctx context.Context, texts []string, method Method) ([]Result, error) {
	if s.Lex == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "nil lexicon")
	}
	if !method.Valid() {
		return nil, errors.Wrapf(ErrInvalidArgument, "unknown segmentation method %d", int(method))
	}
	if err := s.Options.Validate(); err != nil {
		return nil, err
	}

	results := make([]Result, len(texts))
	workers := min(runtime.GOMAXPROCS(0), len(texts))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				// Arguments were validated above, so Segment cannot fail here.
				results[i], _ = Segment(texts[i], s.Lex, method, s.Options)
			}
		}()
	}

	var err error
feed:
	for i := range texts {
		if ctx.Err() != nil {
			err = errors.Wrap(ctx.Err(), "segmenting batch")
			break
		}
		select {
		case <-ctx.Done():
			err = errors.Wrap(ctx.Err(), "segmenting batch")
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()
	if err != nil {
		return nil, err
	}
	return results, nil
}

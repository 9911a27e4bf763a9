// Package trainer feeds pre-segmented corpora into a lexicon.
package trainer

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/teatak/wordseg/lexicon"
	"github.com/teatak/wordseg/util"
)

const progressEvery = 10000

// Trainer ingests corpus text line by line. Bigrams never cross a line
// boundary.
type Trainer struct {
	Lex *lexicon.Lexicon
	// Delimiter separates tokens within a line. Empty means runs of white
	// space.
	Delimiter string
	// SkipPunctuation drops tokens made only of punctuation. A dropped token
	// still breaks the bigram chain around it.
	SkipPunctuation bool
}

// Stats counts what a training run consumed.
type Stats struct {
	Lines  int
	Tokens int
}

// New creates a trainer that writes into lex.
func New(lex *lexicon.Lexicon, delimiter string) *Trainer {
	return &Trainer{Lex: lex, Delimiter: delimiter}
}

// IngestLine ingests one line of pre-segmented text and returns the number
// of tokens counted.
func (t *Trainer) IngestLine(line string) int {
	var pieces []string
	if t.Delimiter == "" {
		pieces = strings.Fields(line)
	} else {
		pieces = strings.Split(line, t.Delimiter)
	}

	n := 0
	for i, p := range pieces {
		p = lexicon.Normalize(p)
		if t.SkipPunctuation && util.IsPunctuation(p) {
			p = ""
		}
		if p != "" {
			n++
		}
		pieces[i] = p
	}
	if n == 0 {
		return 0
	}
	t.Lex.IngestTokens(pieces)
	return n
}

// Ingest reads r line by line. It stops early if ctx is cancelled.
func (t *Trainer) Ingest(ctx context.Context, r io.Reader) (Stats, error) {
	var st Stats
	scanner := bufio.NewScanner(r)
	// Set buffer size to handle potentially long lines
	const maxCapacity = 1024 * 1024
	buf := make([]byte, maxCapacity)
	scanner.Buffer(buf, maxCapacity)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return st, errors.Wrapf(err, "training stopped after %d lines", st.Lines)
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		st.Lines++
		st.Tokens += t.IngestLine(line)
		if st.Lines%progressEvery == 0 {
			klog.V(2).Infof("ingested %d lines, %d tokens", st.Lines, st.Tokens)
		}
	}
	if err := scanner.Err(); err != nil {
		return st, errors.Wrap(err, "reading corpus")
	}
	return st, nil
}

// IngestFile ingests the corpus at path.
func (t *Trainer) IngestFile(ctx context.Context, path string) (Stats, error) {
	file, err := os.Open(path)
	if err != nil {
		return Stats{}, errors.Wrapf(err, "opening corpus %q", path)
	}
	defer file.Close()

	st, err := t.Ingest(ctx, file)
	if err != nil {
		return st, errors.Wrapf(err, "training from %q", path)
	}
	klog.V(1).Infof("trained on %s: %d lines, %d tokens, %d words known", path, st.Lines, st.Tokens, t.Lex.Len())
	return st, nil
}

// WriteDictionary saves the lexicon to path in the format lexicon.Load reads.
func (t *Trainer) WriteDictionary(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating dictionary %q", path)
	}
	if _, err := t.Lex.WriteTo(out); err != nil {
		out.Close()
		return errors.Wrapf(err, "writing dictionary %q", path)
	}
	return errors.Wrapf(out.Close(), "closing dictionary %q", path)
}

package lexicon

import (
	"bufio"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Load reads dictionary entries from r.
// Line format: word [frequency [ignored...]]. Blank lines and lines starting
// with '#' are skipped. A frequency seeds the unigram table. A word holding
// white space is written as a Go quoted string, as WriteTo does.
func (l *Lexicon) Load(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 1024*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word, rest, err := splitEntry(line)
		if err != nil {
			return errors.Wrapf(err, "line %d", lineNo)
		}
		if len(rest) == 0 {
			l.AddWords(word)
			continue
		}
		freq, err := strconv.Atoi(rest[0])
		if err != nil {
			return errors.Wrapf(ErrInvalidArgument, "line %d: bad frequency %q for %q", lineNo, rest[0], word)
		}
		if err := l.AddFrequency(word, freq); err != nil {
			return errors.Wrapf(err, "line %d", lineNo)
		}
	}
	return errors.Wrap(scanner.Err(), "reading dictionary")
}

func splitEntry(line string) (string, []string, error) {
	if !strings.HasPrefix(line, `"`) {
		parts := strings.Fields(line)
		return parts[0], parts[1:], nil
	}
	quoted, err := strconv.QuotedPrefix(line)
	if err != nil {
		return "", nil, errors.Wrapf(ErrInvalidArgument, "bad quoted word %s", line)
	}
	word, err := strconv.Unquote(quoted)
	if err != nil {
		return "", nil, errors.Wrapf(ErrInvalidArgument, "bad quoted word %s", quoted)
	}
	return word, strings.Fields(line[len(quoted):]), nil
}

// formatWord quotes words that would not survive splitEntry as written.
func formatWord(word string) string {
	if strings.HasPrefix(word, `"`) || strings.HasPrefix(word, "#") ||
		strings.IndexFunc(word, unicode.IsSpace) >= 0 {
		return strconv.Quote(word)
	}
	return word
}

// LoadFile loads a dictionary file from path.
func (l *Lexicon) LoadFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "opening dictionary %q", path)
	}
	defer file.Close()

	before := l.Len()
	if err := l.Load(file); err != nil {
		return errors.Wrapf(err, "loading dictionary %q", path)
	}
	klog.V(2).Infof("loaded %d new words from %s (total %d)", l.Len()-before, path, l.Len())
	return nil
}

// WriteTo writes the unigram table in the format read by Load, most frequent
// first. Known words with no frequency are written without one.
func (l *Lexicon) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	counted := l.TopWords(-1)
	for _, wc := range counted {
		m, err := bw.WriteString(formatWord(wc.Word) + " " + strconv.Itoa(wc.Count) + "\n")
		n += int64(m)
		if err != nil {
			return n, errors.Wrap(err, "writing dictionary")
		}
	}
	bare := make([]string, 0, len(l.words)-len(counted))
	for word := range l.words {
		if _, ok := l.unigram[word]; !ok {
			bare = append(bare, word)
		}
	}
	sort.Strings(bare)
	for _, word := range bare {
		m, err := bw.WriteString(formatWord(word) + "\n")
		n += int64(m)
		if err != nil {
			return n, errors.Wrap(err, "writing dictionary")
		}
	}
	return n, errors.Wrap(bw.Flush(), "writing dictionary")
}

package trainer

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teatak/wordseg/lexicon"
)

func TestIngestLine(t *testing.T) {
	lex := lexicon.New()
	tr := New(lex, "")

	assert.Equal(t, 4, tr.IngestLine("the cat , sat"))
	assert.Equal(t, 1, lex.UnigramCount(","))
	assert.Equal(t, 1, lex.BigramCount("cat", ","))

	tr.SkipPunctuation = true
	assert.Equal(t, 3, tr.IngestLine("the cat , sat"))
	assert.Equal(t, 1, lex.UnigramCount(","))
	assert.Equal(t, 2, lex.BigramCount("the", "cat"))
	assert.Equal(t, 1, lex.BigramCount("cat", ","))
	assert.Equal(t, 0, lex.BigramCount("cat", "sat"))

	assert.Equal(t, 0, tr.IngestLine(" , ! "))
}

func TestIngestLine_CustomDelimiter(t *testing.T) {
	lex := lexicon.New()
	tr := New(lex, "|")
	assert.Equal(t, 3, tr.IngestLine("ฉัน|รัก|ภาษาไทย"))
	assert.Equal(t, 1, lex.BigramCount("รัก", "ภาษาไทย"))
	assert.True(t, lex.Contains("ฉัน"))
}

func TestIngestLine_PieceWithNewline(t *testing.T) {
	lex := lexicon.New()
	tr := New(lex, "|")
	assert.Equal(t, 2, tr.IngestLine("a\nb|c"))
	assert.True(t, lex.Contains("a\nb"))
	assert.False(t, lex.Contains("a"))
	assert.Equal(t, 1, lex.BigramCount("a\nb", "c"))
}

func TestIngest(t *testing.T) {
	lex := lexicon.New()
	tr := New(lex, " ")
	corpus := "hello world\n\nhello there\n"
	st, err := tr.Ingest(context.Background(), strings.NewReader(corpus))
	require.NoError(t, err)
	assert.Equal(t, Stats{Lines: 2, Tokens: 4}, st)
	assert.Equal(t, 2, lex.UnigramCount("hello"))
	// No bigram across lines.
	assert.Equal(t, 0, lex.BigramCount("world", "hello"))
}

func TestIngest_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(lexicon.New(), " ").Ingest(ctx, strings.NewReader("a b\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestIngestFileAndWriteDictionary(t *testing.T) {
	dir := t.TempDir()
	corpus := filepath.Join(dir, "corpus.txt")
	require.NoError(t, os.WriteFile(corpus, []byte("b a b\nc b\n"), 0o644))

	lex := lexicon.New()
	tr := New(lex, " ")
	st, err := tr.IngestFile(context.Background(), corpus)
	require.NoError(t, err)
	assert.Equal(t, 2, st.Lines)

	dictPath := filepath.Join(dir, "dict.txt")
	require.NoError(t, tr.WriteDictionary(dictPath))
	data, err := os.ReadFile(dictPath)
	require.NoError(t, err)
	assert.Equal(t, "b 3\na 1\nc 1\n", string(data))

	_, err = tr.IngestFile(context.Background(), filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}

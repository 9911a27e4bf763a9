package report

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teatak/wordseg/lexicon"
	"github.com/teatak/wordseg/segmenter"
)

func TestAnalyze(t *testing.T) {
	c := NewCollector("The", "a")
	res := segmenter.Result{
		Tokens: []string{"the", "cat", " ", "sat", ",", "a", "cat", "42", "x"},
		Method: segmenter.Forward,
		Score:  12.5,
	}
	st := c.Analyze("The cat sat, a cat42x", res)

	assert.Equal(t, 21, st.CharacterCount)
	assert.Equal(t, 8, st.WordCount)
	assert.Equal(t, 2, st.StopwordCount)
	assert.Equal(t, []string{"the", "a"}, st.StopwordsFound)
	assert.Equal(t, 3, st.ContentWordCount)
	assert.Equal(t, map[string]int{"cat": 2, "sat": 1}, st.WordFrequency)
	assert.Equal(t, 1, st.PunctuationCount)
	assert.Equal(t, 7, st.UniqueWords)
	assert.Equal(t, 2, st.UniqueContentWords)
	assert.InDelta(t, 3.0/8, st.ContentRatio, 1e-9)
	assert.InDelta(t, 17.0/8, st.AvgWordLength, 1e-9)
	assert.Equal(t, segmenter.Forward, st.Method)

	top := st.TopWords(1)
	require.Len(t, top, 1)
	assert.Equal(t, lexicon.WordCount{Word: "cat", Count: 2}, top[0])
}

func TestAnalyze_Empty(t *testing.T) {
	st := NewCollector().Analyze("", segmenter.Result{Tokens: []string{}})
	assert.Zero(t, st.WordCount)
	assert.Zero(t, st.AvgWordLength)
	assert.Zero(t, st.ContentRatio)
}

func TestCollector(t *testing.T) {
	lex := lexicon.Build([]string{"hello", "world", "cat"})
	seg := segmenter.NewSegmenter(lex)
	c := NewCollector()

	texts := []string{"helloworld", "worldcat", "hellocat"}
	var wg sync.WaitGroup
	for _, text := range texts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := seg.Segment(text, segmenter.Bidirectional)
			if err == nil {
				c.Consume(text, res)
			}
		}()
	}
	wg.Wait()

	totals := c.Totals()
	assert.Equal(t, 3, totals.Analyses)
	assert.Equal(t, 6, totals.WordsProcessed)
	assert.Equal(t, map[segmenter.Method]int{segmenter.Bidirectional: 3}, totals.MethodsUsed)
	assert.Len(t, c.History(), 3)

	all := c.Combined()
	assert.Equal(t, 6, all.WordCount)
	assert.Equal(t, 3, all.UniqueWords)
	assert.Equal(t, map[string]int{"hello": 2, "world": 2, "cat": 2}, all.WordFrequency)
	assert.InDelta(t, 26.0/6, all.AvgWordLength, 1e-9)
}

func TestCollector_Record(t *testing.T) {
	c := NewCollector("the")
	res := segmenter.Result{Tokens: []string{"the", "cat"}, Method: segmenter.Statistical}
	st := c.Record("thecat", res)

	assert.Equal(t, 2, st.WordCount)
	assert.Equal(t, 1, st.StopwordCount)
	history := c.History()
	require.Len(t, history, 1)
	assert.Equal(t, st, history[0])
	assert.Equal(t, 1, c.Totals().MethodsUsed[segmenter.Statistical])
}

func TestRenderStats(t *testing.T) {
	c := NewCollector()
	st := c.Analyze("helloworld", segmenter.Result{Tokens: []string{"hello", "world"}, Method: segmenter.Forward})

	var buf bytes.Buffer
	require.NoError(t, RenderStats(&buf, st, 5))
	out := buf.String()
	assert.Contains(t, out, "hello | world")
	assert.Contains(t, out, "Content ratio")
	assert.Contains(t, out, "100.0%")
	assert.Contains(t, out, "Word")
}

func TestRenderTable(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
	out := RenderTable([]string{"Method", "Tokens"}, [][]string{{"forward", "a | b"}, {"backward"}}, 1)
	assert.Contains(t, strings.ToLower(out), "method")
	assert.Contains(t, out, "forward")
	assert.Contains(t, out, "backward")
}

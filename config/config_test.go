package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teatak/wordseg/lexicon"
	"github.com/teatak/wordseg/segmenter"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	m, err := cfg.Method()
	require.NoError(t, err)
	assert.Equal(t, segmenter.Bidirectional, m)
	assert.Equal(t, segmenter.DefaultOptions(), cfg.SegmenterOptions())
}

func TestSampleConfigMatchesDefaults(t *testing.T) {
	cfg, err := Parse(SampleConfig())
	require.NoError(t, err)
	want := Default()
	assert.Equal(t, want.Segmenter, cfg.Segmenter)
	assert.Equal(t, want.Report.TopN, cfg.Report.TopN)
	assert.Equal(t, want.Lexicon.CorpusDelimiter, cfg.Lexicon.CorpusDelimiter)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wordseg.toml")
	content := `
[segmenter]
method = " Statistical "
max_statistical_len = 6

[lexicon]
dictionary_files = ["a.txt", "b.txt"]

[report]
stopwords = ["the", "a"]

[reference]
engine = "UAX29"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, exists, err := Load(path)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, "statistical", cfg.Segmenter.Method)
	assert.Equal(t, 6, cfg.Segmenter.MaxStatisticalLen)
	assert.True(t, cfg.Segmenter.UseBigram, "unset keys keep defaults")
	assert.Equal(t, []string{"a.txt", "b.txt"}, cfg.Lexicon.DictionaryFiles)
	assert.Equal(t, []string{"the", "a"}, cfg.Report.Stopwords)
	assert.Equal(t, "uax29", cfg.Reference.Engine)
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, exists, err := Load("")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Equal(t, Default(), *cfg)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, exists, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)
	assert.False(t, exists)
	assert.Nil(t, cfg)
}

func TestLoad_UnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[segmenter]\nmethd = \"forward\"\n"), 0o644))
	_, _, err := Load(path)
	assert.Error(t, err)

	_, err = Parse("[segmenter]\nmethd = \"forward\"\n")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"unknown method", "[segmenter]\nmethod = \"sideways\"\n"},
		{"zero statistical cap", "[segmenter]\nmax_statistical_len = 0\n"},
		{"negative match cap", "[segmenter]\nmax_match_len = -2\n"},
		{"negative top_n", "[report]\ntop_n = -1\n"},
		{"unknown engine", "[reference]\nengine = \"spacy\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.toml)
			require.Error(t, err)
			assert.True(t, errors.Is(err, lexicon.ErrInvalidArgument), "got %v", err)
		})
	}
}

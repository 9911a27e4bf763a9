package config

import (
	_ "embed"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/teatak/wordseg/segmenter"
)

//go:embed sample_config.toml
var sampleConfig string

// SampleConfig returns a commented configuration file with default values.
func SampleConfig() string {
	return sampleConfig
}

// Segmenter selects the strategy and its tuning knobs.
type Segmenter struct {
	Method            string `toml:"method"`
	UseBigram         bool   `toml:"use_bigram"`
	MaxStatisticalLen int    `toml:"max_statistical_len"`
	MaxMatchLen       int    `toml:"max_match_len"`
}

// Lexicon lists the dictionaries and training corpora to load.
type Lexicon struct {
	DictionaryFiles []string `toml:"dictionary_files"`
	CorpusFiles     []string `toml:"corpus_files"`
	CorpusDelimiter string   `toml:"corpus_delimiter"`
	SkipPunctuation bool     `toml:"skip_punctuation"`
}

// Report configures token statistics.
type Report struct {
	Stopwords []string `toml:"stopwords"`
	TopN      int      `toml:"top_n"`
}

// Reference selects an optional tokenizer to compare against.
type Reference struct {
	Engine             string   `toml:"engine"`
	GseDictionaryFiles []string `toml:"gse_dictionary_files"`
}

// Config encapsulates all configuration values for wordseg.
type Config struct {
	Segmenter Segmenter `toml:"segmenter"`
	Lexicon   Lexicon   `toml:"lexicon"`
	Report    Report    `toml:"report"`
	Reference Reference `toml:"reference"`
}

// Load reads and validates the configuration at path. An empty path yields
// the defaults; a named file must exist. The second return value reports
// whether a file was read.
func Load(path string) (*Config, bool, error) {
	cfg := Default()
	if path == "" {
		return &cfg, false, cfg.Validate()
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, false, errors.Wrap(err, "open config")
	}
	defer file.Close()

	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, true, errors.Wrapf(err, "parse config %q", path)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, true, err
	}
	return &cfg, true, nil
}

// Parse decodes a configuration from TOML text over the defaults.
func Parse(data string) (*Config, error) {
	cfg := Default()
	decoder := toml.NewDecoder(strings.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() {
	c.Segmenter.Method = strings.ToLower(strings.TrimSpace(c.Segmenter.Method))
	c.Reference.Engine = strings.ToLower(strings.TrimSpace(c.Reference.Engine))
}

// Method returns the configured segmentation method.
func (c *Config) Method() (segmenter.Method, error) {
	return segmenter.ParseMethod(c.Segmenter.Method)
}

// SegmenterOptions converts the [segmenter] section into segmenter.Options.
func (c *Config) SegmenterOptions() segmenter.Options {
	return segmenter.Options{
		UseBigram:         c.Segmenter.UseBigram,
		MaxStatisticalLen: c.Segmenter.MaxStatisticalLen,
		MaxMatchLen:       c.Segmenter.MaxMatchLen,
	}
}

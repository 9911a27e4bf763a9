package config

import "github.com/teatak/wordseg/segmenter"

const (
	defaultMethod          = "bidirectional"
	defaultUseBigram       = true
	defaultMaxMatchLen     = 0
	defaultCorpusDelimiter = " "
	defaultTopN            = 10
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Segmenter: Segmenter{
			Method:            defaultMethod,
			UseBigram:         defaultUseBigram,
			MaxStatisticalLen: segmenter.DefaultStatisticalLen,
			MaxMatchLen:       defaultMaxMatchLen,
		},
		Lexicon: Lexicon{
			CorpusDelimiter: defaultCorpusDelimiter,
		},
		Report: Report{
			TopN: defaultTopN,
		},
	}
}

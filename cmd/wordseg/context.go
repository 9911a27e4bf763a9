package main

import (
	"context"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/teatak/wordseg/config"
	"github.com/teatak/wordseg/lexicon"
	"github.com/teatak/wordseg/reference"
	"github.com/teatak/wordseg/trainer"
)

// commandContext carries global flags and lazily loaded state shared by
// subcommands.
type commandContext struct {
	configPath  string
	dictFiles   []string
	corpusFiles []string

	cfg *config.Config
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, exists, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	if exists {
		klog.V(1).Infof("using config %s", c.configPath)
	}
	cfg.Lexicon.DictionaryFiles = append(cfg.Lexicon.DictionaryFiles, c.dictFiles...)
	cfg.Lexicon.CorpusFiles = append(cfg.Lexicon.CorpusFiles, c.corpusFiles...)
	c.cfg = cfg
	return cfg, nil
}

// buildLexicon loads every configured dictionary and corpus into a fresh
// lexicon.
func (c *commandContext) buildLexicon(ctx context.Context) (*lexicon.Lexicon, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}

	lex := lexicon.New()
	for _, path := range cfg.Lexicon.DictionaryFiles {
		if err := lex.LoadFile(path); err != nil {
			return nil, err
		}
	}

	tr := trainer.New(lex, cfg.Lexicon.CorpusDelimiter)
	tr.SkipPunctuation = cfg.Lexicon.SkipPunctuation
	for _, path := range cfg.Lexicon.CorpusFiles {
		if _, err := tr.IngestFile(ctx, path); err != nil {
			return nil, err
		}
	}
	if lex.Len() == 0 {
		klog.Warning("lexicon is empty; every character will be its own token (pass --dict or --corpus)")
	}
	klog.V(1).Infof("lexicon: %d words, %d bigrams, longest word %d", lex.Len(), lex.BigramLen(), lex.MaxLen())
	return lex, nil
}

// referenceTokenizer returns the configured reference tokenizer, or nil when
// none is configured and name is empty.
func (c *commandContext) referenceTokenizer(name string) (reference.Tokenizer, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = cfg.Reference.Engine
	}
	if name == "" || name == "none" {
		return nil, nil
	}
	tok, err := reference.New(name, cfg.Reference.GseDictionaryFiles...)
	if err != nil {
		return nil, errors.Wrap(err, "reference tokenizer")
	}
	return tok, nil
}

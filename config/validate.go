package config

import (
	"github.com/pkg/errors"

	"github.com/teatak/wordseg/lexicon"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSegmenter(); err != nil {
		return err
	}
	if err := c.validateReport(); err != nil {
		return err
	}
	return c.validateReference()
}

func (c *Config) validateSegmenter() error {
	if _, err := c.Method(); err != nil {
		return errors.Wrap(err, "segmenter.method")
	}
	if err := c.SegmenterOptions().Validate(); err != nil {
		return errors.Wrap(err, "segmenter")
	}
	return nil
}

func (c *Config) validateReport() error {
	if c.Report.TopN < 0 {
		return errors.Wrapf(lexicon.ErrInvalidArgument, "report.top_n must not be negative, got %d", c.Report.TopN)
	}
	return nil
}

func (c *Config) validateReference() error {
	switch c.Reference.Engine {
	case "", "uax29", "gse":
		return nil
	default:
		return errors.Wrapf(lexicon.ErrInvalidArgument, "reference.engine must be uax29, gse or empty, got %q", c.Reference.Engine)
	}
}

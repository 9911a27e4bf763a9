package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/teatak/wordseg/config"
	"github.com/teatak/wordseg/report"
	"github.com/teatak/wordseg/segmenter"
)

type segmentFlags struct {
	method      string
	noBigram    bool
	maxStatLen  int
	maxMatchLen int
	showScore   bool
	showStats   bool
}

func newSegmentCommand(ctx *commandContext) *cobra.Command {
	var flags segmentFlags

	cmd := &cobra.Command{
		Use:   "segment [text...]",
		Short: "Segment text given as arguments, or line by line from stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			method, opts, err := flags.resolve(cmd, cfg)
			if err != nil {
				return err
			}
			lex, err := ctx.buildLexicon(cmd.Context())
			if err != nil {
				return err
			}
			seg := &segmenter.Segmenter{Lex: lex.Freeze(), Options: opts}

			var collector *report.Collector
			if flags.showStats {
				collector = report.NewCollector(cfg.Report.Stopwords...)
			}
			out := cmd.OutOrStdout()

			process := func(text string) error {
				res, err := seg.Segment(text, method)
				if err != nil {
					return err
				}
				line := strings.Join(res.Tokens, " / ")
				if flags.showScore {
					line = fmt.Sprintf("%s  [%s, score %.1f]", line, res.Direction, res.Score)
				}
				fmt.Fprintln(out, line)
				if collector != nil {
					st := collector.Record(text, res)
					return report.RenderStats(out, st, cfg.Report.TopN)
				}
				return nil
			}

			if len(args) > 0 {
				return process(strings.Join(args, " "))
			}

			in := cmd.InOrStdin()
			if f, ok := in.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
				fmt.Fprintln(out, "Enter text to segment (Ctrl+D to exit):")
			}
			if err := eachLine(in, process); err != nil {
				return err
			}
			if collector != nil && collector.Totals().Analyses > 1 {
				fmt.Fprintln(out, "Combined:")
				return report.RenderStats(out, collector.Combined(), cfg.Report.TopN)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.method, "method", "m", "", "forward, backward, bidirectional or statistical (default from config)")
	cmd.Flags().BoolVar(&flags.noBigram, "no-bigram", false, "Ignore bigram context in statistical mode")
	cmd.Flags().IntVar(&flags.maxStatLen, "max-len", 0, "Longest statistical candidate in characters")
	cmd.Flags().IntVar(&flags.maxMatchLen, "max-match-len", 0, "Longest matching candidate in characters (0 = no limit)")
	cmd.Flags().BoolVar(&flags.showScore, "score", false, "Print the chosen direction and score")
	cmd.Flags().BoolVar(&flags.showStats, "stats", false, "Print token statistics")
	return cmd
}

// resolve merges command-line overrides into the configured method and
// options.
func (f *segmentFlags) resolve(cmd *cobra.Command, cfg *config.Config) (segmenter.Method, segmenter.Options, error) {
	name := cfg.Segmenter.Method
	if f.method != "" {
		name = f.method
	}
	method, err := segmenter.ParseMethod(name)
	if err != nil {
		return 0, segmenter.Options{}, err
	}

	opts := cfg.SegmenterOptions()
	if f.noBigram {
		opts.UseBigram = false
	}
	if cmd.Flags().Changed("max-len") {
		opts.MaxStatisticalLen = f.maxStatLen
	}
	if cmd.Flags().Changed("max-match-len") {
		opts.MaxMatchLen = f.maxMatchLen
	}
	if err := opts.Validate(); err != nil {
		return 0, segmenter.Options{}, err
	}
	return method, opts, nil
}

func eachLine(r io.Reader, fn func(string) error) error {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 1024*1024)
	scanner.Buffer(buf, 1024*1024)
	for scanner.Scan() {
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		if err := fn(text); err != nil {
			return err
		}
	}
	return errors.Wrap(scanner.Err(), "reading input")
}

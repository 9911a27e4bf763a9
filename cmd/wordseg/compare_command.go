package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/teatak/wordseg/reference"
	"github.com/teatak/wordseg/report"
	"github.com/teatak/wordseg/segmenter"
)

func newCompareCommand(ctx *commandContext) *cobra.Command {
	var refName string

	cmd := &cobra.Command{
		Use:   "compare [text...]",
		Short: "Segment text with every method side by side",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			lex, err := ctx.buildLexicon(cmd.Context())
			if err != nil {
				return err
			}
			ref, err := ctx.referenceTokenizer(refName)
			if err != nil {
				return err
			}
			seg := &segmenter.Segmenter{Lex: lex.Freeze(), Options: cfg.SegmenterOptions()}

			out := cmd.OutOrStdout()
			run := func(text string) error {
				return compareText(out, seg, ref, text)
			}
			if len(args) > 0 {
				return run(strings.Join(args, " "))
			}
			return eachLine(cmd.InOrStdin(), run)
		},
	}

	cmd.Flags().StringVarP(&refName, "reference", "r", "", "Reference tokenizer: uax29, gse or none (default from config)")
	return cmd
}

func compareText(out io.Writer, seg *segmenter.Segmenter, ref reference.Tokenizer, text string) error {
	var refTokens []string
	if ref != nil {
		toks, err := ref.Tokenize(text)
		if err != nil {
			return err
		}
		refTokens = toks
	}

	headers := []string{"Method", "Tokens", "Count", "Score"}
	if ref != nil {
		headers = append(headers, "F1 vs "+ref.Name())
	}

	rows := make([][]string, 0, len(segmenter.Methods)+1)
	for _, m := range segmenter.Methods {
		res, err := seg.Segment(text, m)
		if err != nil {
			return err
		}
		name := m.String()
		if m == segmenter.Bidirectional {
			name = fmt.Sprintf("%s (%s)", name, res.Direction)
		}
		row := []string{name, strings.Join(res.Tokens, " | "), strconv.Itoa(len(res.Tokens)), fmt.Sprintf("%.1f", res.Score)}
		if ref != nil {
			a := reference.Compare(res.Tokens, refTokens)
			if !a.Aligned {
				klog.Warningf("%s and %s cover different characters for %q", m, ref.Name(), text)
			}
			row = append(row, fmt.Sprintf("%.3f", a.F1))
		}
		rows = append(rows, row)
	}
	if ref != nil {
		rows = append(rows, []string{ref.Name(), strings.Join(refTokens, " | "), strconv.Itoa(len(refTokens)), "", ""})
	}

	fmt.Fprintf(out, "Text: %s\n", text)
	_, err := fmt.Fprintln(out, report.RenderTable(headers, rows, 2, 3, 4))
	return err
}

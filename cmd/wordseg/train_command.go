package main

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/teatak/wordseg/report"
	"github.com/teatak/wordseg/trainer"
)

func newTrainCommand(ctx *commandContext) *cobra.Command {
	var (
		inputs          []string
		output          string
		delimiter       string
		skipPunctuation bool
		top             int
		minCount        int
	)

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Count words and bigrams in pre-segmented text and write a dictionary",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			inputs = append(inputs, args...)
			if len(inputs) == 0 {
				return errors.New("no input corpus (use --input or pass file names)")
			}

			// Existing dictionaries and corpora are the starting point.
			lex, err := ctx.buildLexicon(cmd.Context())
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("delimiter") {
				delimiter = cfg.Lexicon.CorpusDelimiter
			}
			tr := trainer.New(lex, delimiter)
			tr.SkipPunctuation = skipPunctuation || cfg.Lexicon.SkipPunctuation

			out := cmd.OutOrStdout()
			var total trainer.Stats
			for _, path := range inputs {
				st, err := tr.IngestFile(cmd.Context(), path)
				if err != nil {
					return err
				}
				total.Lines += st.Lines
				total.Tokens += st.Tokens
			}
			if minCount > 1 {
				n := lex.Prune(minCount)
				fmt.Fprintf(out, "Pruned %d words seen fewer than %d times\n", n, minCount)
			}
			fmt.Fprintf(out, "Trained on %d lines, %d tokens: %d words, %d bigrams\n",
				total.Lines, total.Tokens, lex.Len(), lex.BigramLen())

			if output != "" {
				if err := tr.WriteDictionary(output); err != nil {
					return err
				}
				fmt.Fprintf(out, "Dictionary saved to %s\n", output)
			}

			if top > 0 {
				words := lex.TopWords(top)
				rows := make([][]string, len(words))
				for i, wc := range words {
					rows[i] = []string{strconv.Itoa(i + 1), wc.Word, strconv.Itoa(wc.Count)}
				}
				fmt.Fprintln(out, report.RenderTable([]string{"#", "Word", "Count"}, rows, 0, 2))
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&inputs, "input", "i", nil, "Pre-segmented corpus file; repeatable")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the trained dictionary to this file")
	cmd.Flags().StringVar(&delimiter, "delimiter", "", "Token delimiter inside a line (default white space)")
	cmd.Flags().BoolVar(&skipPunctuation, "skip-punctuation", false, "Do not count punctuation-only tokens")
	cmd.Flags().IntVar(&minCount, "min-count", 0, "Drop trained words seen fewer than this many times")
	cmd.Flags().IntVar(&top, "top", 10, "Show the most frequent words")
	return cmd
}

package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/teatak/wordseg/report"
	"github.com/teatak/wordseg/server"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve segmentation over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			method, err := cfg.Method()
			if err != nil {
				return err
			}
			lex, err := ctx.buildLexicon(cmd.Context())
			if err != nil {
				return err
			}
			srv, err := server.New(lex, method, cfg.SegmenterOptions(), report.NewCollector(cfg.Report.Stopwords...))
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return srv.ListenAndServe(runCtx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "Listen address")
	return cmd
}

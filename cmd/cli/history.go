package main

import (
	"io"

	"github.com/dmitrijs2005/easypost-cli/internal/client/cli"
	"github.com/dmitrijs2005/easypost-cli/internal/client/config"
	"github.com/dmitrijs2005/easypost-cli/internal/client/ledger"
	"github.com/dmitrijs2005/easypost-cli/internal/client/session"
	"github.com/dmitrijs2005/easypost-cli/internal/client/view"
	"github.com/spf13/cobra"
)

func newHistoryCmd(out, errOut io.Writer) *cobra.Command {
	var (
		limit int
		mode  string
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List postage bought from this machine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			if mode != "" {
				m, err := session.ParseModeArg(mode)
				if err != nil {
					return err
				}
				mode = m.String()
			}

			ctx := cmd.Context()
			led, err := ledger.Open(ctx, cfg.LedgerDSN)
			if err != nil {
				return err
			}
			defer led.Close()

			newLogger(cfg, errOut).Debug(ctx, "listing history", "dsn", cfg.LedgerDSN, "mode", mode, "limit", limit)
			return cli.ShowHistory(ctx, led, view.NewPrinter(out, !cfg.NoColor), mode, limit)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of purchases to show, 0 for all")
	cmd.Flags().StringVar(&mode, "mode", "", "only show test or prod purchases")
	return cmd
}

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/easypost-cli/internal/buildinfo"
	"github.com/dmitrijs2005/easypost-cli/internal/client/cli"
	"github.com/dmitrijs2005/easypost-cli/internal/client/client"
	"github.com/dmitrijs2005/easypost-cli/internal/client/config"
	"github.com/dmitrijs2005/easypost-cli/internal/client/credentials"
	"github.com/dmitrijs2005/easypost-cli/internal/client/labels"
	"github.com/dmitrijs2005/easypost-cli/internal/client/ledger"
	"github.com/dmitrijs2005/easypost-cli/internal/client/session"
	"github.com/dmitrijs2005/easypost-cli/internal/client/view"
	"github.com/dmitrijs2005/easypost-cli/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "easypost-cli [t|test|p|prod]",
		Short: "Interactive client for the EasyPost shipping API",
		Long: "Browse shipments and addresses, create shipments and buy postage.\n" +
			"Without a mode argument you are asked whether to start in Test or Prod mode.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.Context(), cmd.Flags(), args, in, out, errOut)
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	config.BindFlags(cmd.PersistentFlags())
	cmd.AddCommand(newHistoryCmd(out, errOut), newVersionCmd(out))
	return cmd
}

func newLogger(cfg *config.Config, errOut io.Writer) logging.Logger {
	level, _ := logging.ParseLevel(cfg.LogLevel)
	return logging.New(errOut, level)
}

func runInteractive(ctx context.Context, fs *pflag.FlagSet, args []string, in io.Reader, out, errOut io.Writer) error {
	cfg, err := config.Load(fs)
	if err != nil {
		return err
	}

	var hint string
	if len(args) == 1 {
		m, err := session.ParseModeArg(args[0])
		if err != nil {
			return err
		}
		hint = m.String()
	}

	logger := newLogger(cfg, errOut)
	printer := view.NewPrinter(out, !cfg.NoColor)
	buildinfo.PrintBanner(out)

	console := cli.NewConsole(in, printer)
	store := credentials.NewStore(cfg.CredentialsPath())
	sess, err := session.Bootstrap(ctx, hint, console, store, out)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	deps := cli.Deps{
		Client: client.NewEasyPostClient(sess.APIKey, client.Options{
			BaseURL:  cfg.APIBaseURL,
			Timeout:  cfg.Timeout,
			Attempts: cfg.Retries,
			Logger:   logger,
		}),
		Logger: logger,
	}

	led, err := ledger.Open(ctx, cfg.LedgerDSN)
	if err != nil {
		logger.Warn(ctx, "purchase history disabled", "dsn", cfg.LedgerDSN, "err", err)
		printer.Error("Warning: purchase history disabled: " + err.Error())
	} else {
		defer led.Close()
		deps.Ledger = led
	}

	if cfg.Archive.Enabled() {
		arc, err := labels.NewS3Archiver(ctx, cfg.Archive)
		if err != nil {
			logger.Warn(ctx, "label archive disabled", "bucket", cfg.Archive.Bucket, "err", err)
			printer.Error("Warning: label archive disabled: " + err.Error())
		} else {
			deps.Archiver = arc
		}
	}

	return cli.NewApp(sess, console, deps).Run(ctx)
}

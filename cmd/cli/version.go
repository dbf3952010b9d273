package main

import (
	"io"

	"github.com/dmitrijs2005/easypost-cli/internal/buildinfo"
	"github.com/spf13/cobra"
)

func newVersionCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			buildinfo.PrintBuildData(out)
		},
	}
}

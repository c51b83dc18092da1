// Command midnightdark-lsp serves theme JSON and midnightdark.hcl files
// over the Language Server Protocol on stdio.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jsvensson/midnightdark/internal/lsp"
)

var version = "dev"

func main() {
	var verbosity int

	cmd := &cobra.Command{
		Use:          "midnightdark-lsp",
		Short:        "Language server for Midnight Dark theme files",
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return lsp.NewServer(version).Run(verbosity)
		},
	}
	cmd.Flags().IntVar(&verbosity, "verbosity", 1, "log verbosity, logs go to stderr")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

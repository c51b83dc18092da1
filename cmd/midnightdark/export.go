package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsvensson/midnightdark"
)

var exportOpts struct {
	templates string
	out       string
	apps      []string
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render terminal and editor ports of the theme from templates",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOpts.templates, "templates", "templates", "templates directory")
	exportCmd.Flags().StringVar(&exportOpts.out, "out", "dist", "output directory")
	exportCmd.Flags().StringArrayVar(&exportOpts.apps, "app", nil, "export only for specific apps (can be repeated)")
}

func runExport(cmd *cobra.Command, args []string) error {
	e := &midnightdark.Exporter{
		TemplatesDir: project.Path(exportOpts.templates),
		OutputDir:    project.Path(exportOpts.out),
		Apps:         exportOpts.apps,
	}

	written, err := project.Export(e)
	if err != nil {
		return fmt.Errorf("exporting: %w", err)
	}

	for _, path := range written {
		fmt.Fprintln(cmd.OutOrStdout(), displayPath(path))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d file(s) to %s\n", len(written), displayPath(e.OutputDir))
	return nil
}

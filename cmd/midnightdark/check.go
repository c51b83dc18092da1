package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jsvensson/midnightdark/internal/report"
	"github.com/jsvensson/midnightdark/internal/watch"
)

var testOpts struct {
	output string
	watch  bool
}

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Run every theme check and print a summary",
	Args:  cobra.NoArgs,
	RunE:  runTest,
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Clean artifacts and validate the theme for packaging",
	Args:  cobra.NoArgs,
	RunE:  runBuild,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print theme statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := project.Stats()
		if err != nil {
			textReport(cmd).Stats(nil, err.Error())
			return errFailed
		}
		textReport(cmd).Stats(stats, "")
		return nil
	},
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove build artifacts",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		textReport(cmd).Cleaned(project.Clean())
	},
}

func init() {
	testCmd.Flags().StringVarP(&testOpts.output, "output", "o", "text", "output format: text, json or yaml")
	testCmd.Flags().BoolVarP(&testOpts.watch, "watch", "w", false, "re-run when the theme, manifest or config changes")
}

func runTest(cmd *cobra.Command, args []string) error {
	format, err := report.ParseFormat(testOpts.output)
	if err != nil {
		return err
	}

	if !testOpts.watch {
		ok, err := testOnce(cmd, format)
		if err != nil {
			return err
		}
		if !ok {
			return errFailed
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchTests(ctx, cmd, format)
}

// testOnce runs the suite and renders it in format.
func testOnce(cmd *cobra.Command, format report.Format) (bool, error) {
	out := cmd.OutOrStdout()

	if format != report.FormatText {
		summary := project.Test(nil)
		if format == report.FormatJSON {
			return summary.OK(), report.JSON(out, summary)
		}
		return summary.OK(), report.YAML(out, summary)
	}

	text := textReport(cmd)
	text.Banner("🧪 Running Midnight Dark Theme Tests...")
	summary := project.Test(text.Result)
	text.Summary(summary)
	text.TestEpilogue(summary.OK())
	return summary.OK(), nil
}

func watchTests(ctx context.Context, cmd *cobra.Command, format report.Format) error {
	w, err := watch.New(project.WatchFiles(), watch.DefaultDebounce)
	if err != nil {
		return err
	}

	if _, err := testOnce(cmd, format); err != nil {
		w.Close()
		return err
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "\n👀 Watching for changes (Ctrl+C to stop)...")

	return w.Run(ctx, func(changed []string) {
		names := make([]string, 0, len(changed))
		for _, path := range changed {
			if rel, err := filepath.Rel(project.Root, path); err == nil {
				path = rel
			}
			names = append(names, path)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "\n🔄 Changed: %s\n\n", strings.Join(names, ", "))

		if project.ConfigPath != "" {
			if err := loadProject(cmd, nil); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				return
			}
		}
		if _, err := testOnce(cmd, format); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
	})
}

func runBuild(cmd *cobra.Command, args []string) error {
	text := textReport(cmd)
	text.Banner("🚀 Building Midnight Dark Theme...")

	summary := project.Build(text.Cleaned, text.Result)

	text.Stats(summary.Stats, summary.StatsError)
	text.BuildEpilogue(summary.OK())
	if !summary.OK() {
		return errFailed
	}
	return nil
}

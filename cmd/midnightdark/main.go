// Command midnightdark validates and packages the Midnight Dark theme.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/jsvensson/midnightdark"
	"github.com/jsvensson/midnightdark/internal/report"
)

var version = "dev" // Injected at build time via ldflags

// errFailed signals a run whose findings were already printed.
var errFailed = errors.New("checks failed")

var globalOpts struct {
	root      string
	config    string
	theme     string
	verbosity int
	noColor   bool
}

var project *midnightdark.Project

var rootCmd = &cobra.Command{
	Use:           "midnightdark",
	Short:         "Validate, package and port the Midnight Dark VS Code theme",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// loadProject is the PersistentPreRunE of commands that work on a project.
func loadProject(cmd *cobra.Command, args []string) error {
	commonlog.Configure(globalOpts.verbosity, nil)

	p, err := midnightdark.Load(globalOpts.root, globalOpts.config)
	if err != nil {
		return err
	}
	p.SetTheme(globalOpts.theme)
	project = p
	return nil
}

func textReport(cmd *cobra.Command) *report.Text {
	styles := report.DefaultStyles()
	if globalOpts.noColor {
		styles = report.PlainStyles()
	}
	return report.NewText(cmd.OutOrStdout(), styles)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&globalOpts.root, "root", ".", "project root directory")
	flags.StringVar(&globalOpts.config, "config", "", "config file (default: midnightdark.hcl or midnightdark.toml in the root)")
	flags.StringVar(&globalOpts.theme, "theme", "", "theme file to check instead of the configured one")
	flags.CountVarP(&globalOpts.verbosity, "verbose", "v", "log more detail (repeat for debug output)")
	flags.BoolVar(&globalOpts.noColor, "no-color", false, "disable colored output")

	for _, cmd := range []*cobra.Command{testCmd, buildCmd, statsCmd, cleanCmd, fmtCmd, exportCmd} {
		cmd.PersistentPreRunE = loadProject
	}

	rootCmd.AddCommand(testCmd, buildCmd, statsCmd, cleanCmd, fmtCmd, contrastCmd, exportCmd, versionCmd)
}

// run executes the CLI with args and returns the process exit code: 0 when
// every check passed, 1 otherwise.
func run(args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

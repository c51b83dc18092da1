package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jsvensson/midnightdark/internal/format"
)

var fmtCheck bool

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format theme JSON and config files",
	Long: `Format theme JSON (2-space indentation, key order kept) and midnightdark.hcl
files in place. Prints the name of each file that was modified. Without
arguments the themes contributed by package.json are formatted.`,
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().BoolVarP(&fmtCheck, "check", "c", false, "check if files are formatted (do not write changes)")
}

func runFmt(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		paths = project.ThemeFiles()
	}

	hasErrors := false
	needsFormatting := false

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		content := string(data)
		formatted, err := format.File(filepath.Base(path), content)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error formatting %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		if formatted == content {
			continue
		}

		fmt.Fprintln(cmd.OutOrStdout(), displayPath(path))
		needsFormatting = true

		if !fmtCheck {
			if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error writing %s: %v\n", path, err)
				hasErrors = true
			}
		}
	}

	if hasErrors || (fmtCheck && needsFormatting) {
		return errFailed
	}
	return nil
}

// displayPath shortens paths inside the project root.
func displayPath(path string) string {
	if rel, err := filepath.Rel(project.Root, path); err == nil && filepath.IsLocal(rel) {
		return rel
	}
	return path
}

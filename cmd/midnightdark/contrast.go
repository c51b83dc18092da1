package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jsvensson/midnightdark/internal/color"
)

var contrastMin float64

var contrastCmd = &cobra.Command{
	Use:   "contrast <background> <foreground>",
	Short: "Compute the WCAG contrast ratio of two colors",
	Long: `Compute the WCAG 2.x contrast ratio of two hex colors and the conformance
level it reaches. When the pair is below --min, a foreground with the same
hue that reaches it is suggested.`,
	Example: "  midnightdark contrast '#1a1b26' '#c0caf5'",
	Args:    cobra.ExactArgs(2),
	RunE:    runContrast,
}

func init() {
	contrastCmd.Flags().Float64Var(&contrastMin, "min", color.RatioAA, "ratio a suggested foreground must reach")
}

func runContrast(cmd *cobra.Command, args []string) error {
	bg, err := color.ParseThemeHex(args[0])
	if err != nil {
		return fmt.Errorf("parsing background: %w", err)
	}
	fg, err := color.ParseThemeHex(args[1])
	if err != nil {
		return fmt.Errorf("parsing foreground: %w", err)
	}

	out := cmd.OutOrStdout()
	ratio := color.ContrastRatio(bg, fg)
	fmt.Fprintf(out, "%s  %s on %s: %.2f:1 (%s)\n", swatch(bg, fg), fg.Hex(), bg.Hex(), ratio, color.LevelFor(ratio))

	if ratio >= contrastMin {
		return nil
	}
	if s, ok := color.SuggestForeground(fg, bg, contrastMin); ok {
		fmt.Fprintf(out, "%s  suggested foreground: %s (%.2f:1)\n", swatch(bg, s), s.Hex(), color.ContrastRatio(bg, s))
	} else {
		fmt.Fprintf(out, "no foreground with this hue reaches %.2f:1\n", contrastMin)
	}
	return nil
}

// swatch renders sample text in fg on bg.
func swatch(bg, fg color.Color) string {
	if globalOpts.noColor {
		return "[Aa]"
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg.Hex())).
		Foreground(lipgloss.Color(fg.Hex())).
		Render(" Aa ")
}

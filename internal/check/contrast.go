package check

import (
	"errors"

	"github.com/jsvensson/midnightdark/internal/color"
	"github.com/jsvensson/midnightdark/internal/config"
	"github.com/jsvensson/midnightdark/internal/vscode"
)

// Contrast measures WCAG contrast of the editor and the main UI surfaces.
// Poor contrast is reported but never fails the check.
var Contrast = Check{
	Name:    "Color Contrast",
	Icon:    "🎨",
	Start:   "Testing color contrast...",
	Subject: "Color contrast test",
	Verb:    "completed",
	Run:     runContrast,
}

func runContrast(env *Env, r *Recorder) error {
	_, th, err := env.LoadTheme()
	if err != nil {
		return err
	}
	if th.Raw.Kind("colors") != vscode.KindObject {
		return errors.New("Missing or invalid colors object")
	}

	cfg := env.Config.Contrast
	editor := cfg.Editor
	bg, okBg := th.ColorOr(editor.Background, editor.FallbackBackground)
	fg, okFg := th.ColorOr(editor.Foreground, editor.FallbackForeground)
	if okBg && okFg {
		ratio := color.ContrastRatio(bg, fg)
		r.Info("Background vs Foreground: %.2f:1", ratio)
		switch {
		case ratio >= color.RatioAAA:
			r.Pass("AAA compliance (excellent)")
		case ratio >= cfg.MinRatio:
			r.Pass("AA compliance (good)")
		default:
			r.Warn("Below AA compliance (consider improving)")
			suggest(r, fg, bg, cfg.MinRatio)
		}
	} else {
		r.Warn("Could not parse background or foreground colors")
	}

	passed := 0
	for _, pair := range cfg.Pairs {
		ratio, ok := pairRatio(th, pair)
		if !ok {
			env.Log.Debugf("contrast pair %s: colors missing or unparseable", pair.Name)
			continue
		}
		if ratio >= cfg.MinRatio {
			passed++
			continue
		}
		r.Warn("%s: %.2f:1 (%s on %s)", pair.Name, ratio, pair.Foreground, pair.Background)
	}
	r.Info("UI contrast pairs: %d/%d passed", passed, len(cfg.Pairs))
	return nil
}

func pairRatio(th *vscode.Theme, pair config.ContrastPair) (float64, bool) {
	bg, ok := th.ColorOr(pair.Background, pair.FallbackBackground)
	if !ok {
		return 0, false
	}
	fg, ok := th.ColorOr(pair.Foreground, pair.FallbackForeground)
	if !ok {
		return 0, false
	}
	return color.ContrastRatio(bg, fg), true
}

func suggest(r *Recorder, fg, bg color.Color, minRatio float64) {
	if fix, ok := color.SuggestForeground(fg, bg, minRatio); ok {
		r.Info("Suggested foreground: %s (%.2f:1)", fix.Hex(), color.ContrastRatio(bg, fix))
	}
}

package check

import (
	"errors"
	"sort"
	"strings"

	"github.com/jsvensson/midnightdark/internal/color"
	"github.com/jsvensson/midnightdark/internal/config"
	"github.com/jsvensson/midnightdark/internal/vscode"
)

// Consistency measures how much of the reference palette the theme uses.
// A low score is reported but never fails the check.
var Consistency = Check{
	Name:    "Color Consistency",
	Icon:    "🎯",
	Start:   "Testing color consistency...",
	Subject: "Color consistency test",
	Run:     runConsistency,
}

func runConsistency(env *Env, r *Recorder) error {
	_, th, err := env.LoadTheme()
	if err != nil {
		return err
	}
	if th.Raw.Kind("colors") != vscode.KindObject {
		return errors.New("Missing or invalid colors object")
	}

	palette := env.Config.Palette
	if len(palette) == 0 {
		r.Info("No reference palette configured")
		return nil
	}

	used := th.UsedColors()
	candidates := usedCandidates(used)

	matched := 0
	for _, p := range palette {
		expected := strings.ToLower(p.Hex)
		if used[expected] {
			matched++
			r.Pass("%s color (%s) is used", p.Name, p.Hex)
			continue
		}
		want, err := color.ParseHex(expected)
		if err != nil {
			r.Warn("%s color (%s) is not used", p.Name, p.Hex)
			continue
		}
		if near, dist, ok := color.Nearest(want, candidates); ok {
			r.Warn("%s color (%s) is not used (nearest: %s, ΔE %.1f)", p.Name, p.Hex, near.Hex(), dist*100)
		} else {
			r.Warn("%s color (%s) is not used", p.Name, p.Hex)
		}
	}

	percentage := float64(matched) / float64(len(palette)) * 100
	r.Info("Color consistency: %.1f%% (%d/%d)", percentage, matched, len(palette))
	r.Info("Color variations found: %d", countVariations(th, palette))

	if percentage >= env.Config.Thresholds.Consistency {
		r.Conclude(Pass, "Color consistency test passed")
	} else {
		r.Conclude(Warn, "Color consistency could be improved")
	}
	return nil
}

// countVariations counts the distinct UI color values, alpha suffixes
// included, whose base is one of the palette colors.
func countVariations(th *vscode.Theme, palette []config.PaletteColor) int {
	variations := make(map[string]bool)
	for _, v := range th.Colors {
		base, ok := color.BaseHex(v)
		if !ok {
			continue
		}
		for _, p := range palette {
			if base == strings.ToLower(p.Hex) {
				variations[v] = true
				break
			}
		}
	}
	return len(variations)
}

func usedCandidates(used map[string]bool) []color.Color {
	keys := make([]string, 0, len(used))
	for k := range used {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]color.Color, 0, len(keys))
	for _, k := range keys {
		if c, err := color.ParseHex(k); err == nil {
			out = append(out, c)
		}
	}
	return out
}

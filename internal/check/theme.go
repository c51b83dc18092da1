package check

import (
	"fmt"

	"github.com/jsvensson/midnightdark/internal/vscode"
)

// Theme validates the structure of the theme descriptor and every token
// color rule.
var Theme = Check{
	Name:    "Theme Validation",
	Icon:    "🔍",
	Start:   "Validating theme JSON...",
	Subject: "Theme JSON validation",
	Run:     runTheme,
}

// BuildTheme is the build's variant of Theme: it checks the descriptor's
// shape and counts but leaves individual rules alone.
var BuildTheme = Check{
	Name:    "Theme Validation",
	Icon:    "🔍",
	Start:   "Validating theme JSON...",
	Subject: "Theme JSON validation",
	Run:     runBuildTheme,
}

func runBuildTheme(env *Env, r *Recorder) error {
	_, err := validateThemeShape(env, r)
	return err
}

func runTheme(env *Env, r *Recorder) error {
	th, err := validateThemeShape(env, r)
	if err != nil {
		return err
	}

	for i, tc := range th.TokenColors {
		label := tc.Label(i)
		if !tc.HasName() {
			return fmt.Errorf("Token color rule %d missing name", i)
		}
		if !tc.HasScope() {
			return fmt.Errorf("Token color rule %q missing scope", label)
		}
		if !tc.HasSettings() {
			return fmt.Errorf("Token color rule %q missing settings", label)
		}
		if tc.Settings.Foreground == "" {
			r.Warn("Token color rule %q missing foreground color", label)
		}
	}
	return nil
}

// validateThemeShape checks the required keys, the type and the color and
// rule counts.
func validateThemeShape(env *Env, r *Recorder) (*vscode.Theme, error) {
	_, th, err := env.LoadTheme()
	if err != nil {
		return nil, err
	}

	for _, key := range vscode.RequiredThemeKeys {
		if !th.Raw.Present(key) {
			return nil, fmt.Errorf("Missing required property: %s", key)
		}
	}

	if th.Type != env.Config.Type {
		return nil, fmt.Errorf("Invalid theme type: %s. Expected '%s'", th.Type, env.Config.Type)
	}

	limits := env.Config.Thresholds
	if n := th.ColorCount(); n < limits.MinUIColors {
		r.Warn("Only %d UI colors defined (recommended: %d+)", n, limits.MinUIColors)
	} else {
		r.Pass("%d UI colors defined", n)
	}

	if th.Raw.Kind("tokenColors") != vscode.KindArray {
		return nil, fmt.Errorf("tokenColors must be an array")
	}

	if n := len(th.TokenColors); n < limits.MinTokenRules {
		r.Warn("Only %d token color rules defined (recommended: %d+)", n, limits.MinTokenRules)
	} else {
		r.Pass("%d token color rules defined", n)
	}
	return th, nil
}

package check

import (
	"errors"
	"strings"

	"github.com/jsvensson/midnightdark/internal/vscode"
)

// Completeness reports essential UI colors and common syntax scopes the
// theme leaves undefined.
var Completeness = Check{
	Name:    "Theme Completeness",
	Icon:    "🔍",
	Start:   "Testing theme completeness...",
	Subject: "Theme completeness test",
	Verb:    "completed",
	Run:     runCompleteness,
}

func runCompleteness(env *Env, r *Recorder) error {
	_, th, err := env.LoadTheme()
	if err != nil {
		return err
	}
	colors, ok := th.Raw.Object("colors")
	if !ok {
		return errors.New("Missing or invalid colors object")
	}
	if th.Raw.Kind("tokenColors") != vscode.KindArray {
		return errors.New("Missing or invalid tokenColors array")
	}

	var missingColors []string
	for _, key := range env.Config.EssentialColors {
		if !colors.Present(key) {
			missingColors = append(missingColors, key)
		}
	}
	if len(missingColors) > 0 {
		r.Warn("Missing essential colors: %s", strings.Join(missingColors, ", "))
	} else {
		r.Pass("All essential UI colors defined")
	}

	var missingScopes []string
	for _, scope := range env.Config.CommonScopes {
		if !coversScope(th, scope) {
			missingScopes = append(missingScopes, scope)
		}
	}
	if len(missingScopes) > 0 {
		r.Warn("Missing common scopes: %s", strings.Join(missingScopes, ", "))
	} else {
		r.Pass("All common syntax scopes covered")
	}

	found := 0
	for _, scope := range env.Config.LanguageScopes {
		if _, ok := th.TokenFor(scope); ok {
			found++
		}
	}
	r.Info("Language-specific scopes: %d/%d found", found, len(env.Config.LanguageScopes))
	return nil
}

// coversScope reports whether any rule has a selector containing scope.
func coversScope(th *vscode.Theme, scope string) bool {
	for _, tc := range th.TokenColors {
		if tc.Scope.Contains(scope) {
			return true
		}
	}
	return false
}

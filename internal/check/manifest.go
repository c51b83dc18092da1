package check

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/jsvensson/midnightdark/internal/vscode"
)

// Package validates the extension manifest and the themes it contributes.
var Package = Check{
	Name:    "Package Validation",
	Icon:    "🔍",
	Start:   "Validating package.json...",
	Subject: "Package.json validation",
	Run:     runPackage,
}

func runPackage(env *Env, r *Recorder) error {
	name := filepath.Base(env.Config.Manifest)
	if !env.Exists(env.Config.Manifest) {
		return fmt.Errorf("%s not found", name)
	}

	m, err := env.LoadManifest()
	if err != nil {
		return err
	}

	for _, key := range vscode.RequiredManifestKeys {
		if !m.Raw.Present(key) {
			return fmt.Errorf("Missing required property: %s", key)
		}
	}
	if m.VSCode == "" {
		return errors.New("Missing vscode engine specification")
	}
	if !m.ThemesDeclared {
		return errors.New("Missing or invalid themes contribution")
	}
	if len(m.Themes) == 0 {
		return errors.New("No themes defined in contribution")
	}

	for _, t := range m.Themes {
		if t.Path == "" {
			return errors.New("Theme missing path property")
		}
		if !env.Exists(t.Path) {
			return fmt.Errorf("Theme file not found: %s", t.Path)
		}
		if t.Label == "" {
			return errors.New("Theme missing label property")
		}
		if t.UITheme == "" {
			return errors.New("Theme missing uiTheme property")
		}
	}

	if !m.Raw.Present("publisher") {
		r.Warn("Publisher not specified")
	}
	if !m.Raw.Present("author") {
		r.Warn("Author not specified")
	}

	env.Log.Debugf("manifest declares %d theme(s)", len(m.Themes))
	return nil
}

package vscode

import (
	"encoding/json"
	"fmt"
	"os"
)

// RequiredManifestKeys are the extension manifest keys a theme package needs.
var RequiredManifestKeys = []string{
	"name",
	"displayName",
	"description",
	"version",
	"engines",
	"contributes",
}

// Manifest is the subset of package.json a theme extension relies on.
type Manifest struct {
	Name        string
	DisplayName string
	Description string
	Version     string
	Publisher   string
	VSCode      string
	Themes      []ThemeContribution

	// ThemesDeclared is true when contributes.themes is an array.
	ThemesDeclared bool

	Raw Object
}

// ThemeContribution is one contributes.themes entry.
type ThemeContribution struct {
	Label   string `json:"label"`
	UITheme string `json:"uiTheme"`
	Path    string `json:"path"`
}

// LoadManifest reads and parses package.json.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return ParseManifest(data)
}

// ParseManifest parses an extension manifest. Missing keys are not errors.
func ParseManifest(data []byte) (*Manifest, error) {
	var raw Object
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing manifest JSON: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("parsing manifest JSON: document is not an object")
	}

	m := &Manifest{Raw: raw}
	m.Name, _ = raw.String("name")
	m.DisplayName, _ = raw.String("displayName")
	m.Description, _ = raw.String("description")
	m.Version, _ = raw.String("version")
	m.Publisher, _ = raw.String("publisher")

	if engines, ok := raw.Object("engines"); ok {
		m.VSCode, _ = engines.String("vscode")
	}

	if contributes, ok := raw.Object("contributes"); ok && contributes.Kind("themes") == KindArray {
		m.ThemesDeclared = true
		var items []json.RawMessage
		if err := json.Unmarshal(contributes["themes"], &items); err != nil {
			return nil, fmt.Errorf("parsing contributes.themes: %w", err)
		}
		for _, item := range items {
			var entry Object
			if json.Unmarshal(item, &entry) != nil {
				entry = Object{}
			}
			var tc ThemeContribution
			tc.Path, _ = entry.String("path")
			tc.Label, _ = entry.String("label")
			tc.UITheme, _ = entry.String("uiTheme")
			m.Themes = append(m.Themes, tc)
		}
	}

	return m, nil
}

// ThemePaths returns the path of every contributed theme, in order.
func (m *Manifest) ThemePaths() []string {
	paths := make([]string, 0, len(m.Themes))
	for _, t := range m.Themes {
		if t.Path != "" {
			paths = append(paths, t.Path)
		}
	}
	return paths
}

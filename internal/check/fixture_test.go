package check

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jsvensson/midnightdark/internal/config"
)

const themePath = "themes/midnight-dark-color-theme.json"

func validTheme() map[string]any {
	colors := map[string]any{}
	for _, key := range config.Default().EssentialColors {
		if strings.Contains(key, "ackground") {
			colors[key] = "#1a1b26"
		} else {
			colors[key] = "#c0caf5"
		}
	}
	colors["editorCursor.foreground"] = "#c792ea"
	colors["editor.selectionBackground"] = "#c792ea40"

	rule := func(name string, scope any, fg string) map[string]any {
		return map[string]any{
			"name":     name,
			"scope":    scope,
			"settings": map[string]any{"foreground": fg},
		}
	}

	return map[string]any{
		"name":   "Midnight Dark",
		"type":   "dark",
		"colors": colors,
		"tokenColors": []any{
			rule("Comment", []string{"comment", "punctuation.definition.comment"}, "#5c6370"),
			rule("Keyword", "keyword", "#c792ea"),
			rule("String", "string", "#c3e88d"),
			rule("Constant", "constant", "#f78c6c"),
			rule("Function", "entity.name.function", "#82aaff"),
			rule("Variable", "variable", "#f07178"),
			rule("Punctuation", "punctuation", "#89ddff"),
			rule("Heading", "markup.heading", "#82aaff"),
		},
	}
}

func validManifest() map[string]any {
	return map[string]any{
		"name":        "midnight-dark",
		"displayName": "Midnight Dark",
		"description": "A dark theme",
		"version":     "1.0.0",
		"publisher":   "jsvensson",
		"author":      "Johan Svensson",
		"engines":     map[string]any{"vscode": "^1.60.0"},
		"contributes": map[string]any{
			"themes": []any{
				map[string]any{"label": "Midnight Dark", "uiTheme": "vs-dark", "path": "./" + themePath},
			},
		},
	}
}

// project writes a complete theme extension into a temp dir.
type project struct {
	t    *testing.T
	root string
}

func newProject(t *testing.T) *project {
	t.Helper()
	p := &project{t: t, root: t.TempDir()}
	p.writeJSON(themePath, validTheme())
	p.writeJSON("package.json", validManifest())
	for _, f := range []string{"README.md", "LICENSE", "CHANGELOG.md", "icon.png", ".gitignore", "DEVELOP.md"} {
		p.write(f, "x\n")
	}
	return p
}

func (p *project) write(rel, content string) {
	p.t.Helper()
	path := filepath.Join(p.root, filepath.FromSlash(rel))
	require.NoError(p.t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(p.t, os.WriteFile(path, []byte(content), 0o644))
}

func (p *project) writeJSON(rel string, v any) {
	p.t.Helper()
	data, err := json.MarshalIndent(v, "", "  ")
	require.NoError(p.t, err)
	p.write(rel, string(data)+"\n")
}

func (p *project) remove(rel string) {
	p.t.Helper()
	require.NoError(p.t, os.Remove(filepath.Join(p.root, filepath.FromSlash(rel))))
}

func (p *project) env() *Env {
	return NewEnv(p.root, nil)
}

func (p *project) run(c Check) *Result {
	return runOne(p.env(), c)
}

func hasFinding(res *Result, sev Severity, substr string) bool {
	for _, f := range res.Findings {
		if f.Severity == sev && strings.Contains(f.Message, substr) {
			return true
		}
	}
	return false
}

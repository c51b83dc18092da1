package lsp

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/jsvensson/midnightdark/internal/color"
	"github.com/jsvensson/midnightdark/internal/config"
	"github.com/jsvensson/midnightdark/internal/vscode"
)

// analyzeTheme checks a theme descriptor the way the release checks do and
// records where every color literal sits.
func analyzeTheme(content string) *AnalysisResult {
	result := &AnalysisResult{Kind: kindTheme, DefinedColors: make(map[string]bool)}
	li := newLineIndex(content)
	top := li.rangeOf(0, 0)

	root, comments, diags := parseJSON(content)
	for _, c := range comments {
		style := "//"
		if c.Block {
			style = "/* */"
		}
		result.addError(li.rangeOf(c.Start, c.End), fmt.Sprintf("comments (%s style) are not allowed in theme JSON", style))
	}
	if diags.HasErrors() {
		for _, d := range diags {
			if d.Severity != hcl.DiagError {
				continue
			}
			rng := top
			if d.Subject != nil {
				rng = li.rangeOf(d.Subject.Start.Byte, d.Subject.End.Byte)
			}
			result.addError(rng, jsonDiagMessage(d))
		}
		return result
	}
	if root.Kind != jsonObject {
		result.addError(li.rangeOf(root.Start, root.End), "theme must be a JSON object")
		return result
	}

	for _, key := range vscode.RequiredThemeKeys {
		if _, ok := root.member(key); !ok {
			result.addError(top, "missing required property: "+key)
		}
	}

	if m, ok := root.member("type"); ok && m.Value.Kind != jsonString {
		result.addError(li.rangeOf(m.Value.Start, m.Value.End), "type must be a string")
	}
	if m, ok := root.member("colors"); ok {
		result.analyzeColors(li, m.Value)
	}
	if m, ok := root.member("tokenColors"); ok {
		result.analyzeTokenColors(li, m.Value)
	}

	return result
}

func (r *AnalysisResult) analyzeColors(li *lineIndex, colors *jsonNode) {
	rng := li.rangeOf(colors.Start, colors.End)
	if colors.Kind != jsonObject {
		r.addError(rng, "colors must be an object")
		return
	}
	r.ColorsRange = &rng

	for _, m := range colors.Members {
		r.DefinedColors[m.Key] = true
		valueRange := li.rangeOf(m.Value.Start, m.Value.End)
		if m.Value.Kind != jsonString {
			r.addError(valueRange, fmt.Sprintf("colors.%s: expected a color string", m.Key))
			continue
		}
		c, err := color.ParseThemeHex(m.Value.Str)
		if err != nil {
			r.addError(valueRange, fmt.Sprintf("colors.%s: %s", m.Key, err))
			continue
		}
		r.Colors = append(r.Colors, ColorLocation{Range: valueRange, Color: c, Key: m.Key})
		if m.Key == "editor.background" {
			bg := c
			r.Background = &bg
		}
	}

	var missing []string
	for _, key := range config.Default().EssentialColors {
		if !r.DefinedColors[key] {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		keyRange := protocol.Range{Start: rng.Start, End: rng.Start}
		r.addInfo(keyRange, "missing essential colors: "+strings.Join(missing, ", "))
	}
}

func (r *AnalysisResult) analyzeTokenColors(li *lineIndex, rules *jsonNode) {
	if rules.Kind != jsonArray {
		r.addError(li.rangeOf(rules.Start, rules.End), "tokenColors must be an array")
		return
	}

	for i, rule := range rules.Items {
		rng := li.rangeOf(rule.Start, rule.End)
		if rule.Kind != jsonObject {
			r.addError(rng, fmt.Sprintf("token color rule %d must be an object", i))
			continue
		}

		label := fmt.Sprintf("#%d", i)
		if m, ok := rule.member("name"); ok && m.Value.Kind == jsonString && m.Value.Str != "" {
			label = m.Value.Str
		} else {
			r.addError(rng, fmt.Sprintf("token color rule %d missing name", i))
		}

		if m, ok := rule.member("scope"); !ok || !hasScope(m.Value) {
			r.addError(rng, fmt.Sprintf("token color rule %q missing scope", label))
		}

		settings, ok := rule.member("settings")
		if !ok || settings.Value.Kind != jsonObject {
			r.addError(rng, fmt.Sprintf("token color rule %q missing settings", label))
			continue
		}

		if _, ok := settings.Value.member("foreground"); !ok {
			r.addWarning(li.rangeOf(settings.Value.Start, settings.Value.End),
				fmt.Sprintf("token color rule %q missing foreground color", label))
		}
		for _, key := range []string{"foreground", "background"} {
			m, ok := settings.Value.member(key)
			if !ok {
				continue
			}
			valueRange := li.rangeOf(m.Value.Start, m.Value.End)
			c, err := color.ParseThemeHex(m.Value.Str)
			if m.Value.Kind != jsonString || err != nil {
				r.addError(valueRange, fmt.Sprintf("token color rule %q: invalid %s %s", label, key, content(li, m.Value)))
				continue
			}
			r.Colors = append(r.Colors, ColorLocation{Range: valueRange, Color: c, Key: label + "." + key})
		}
	}
}

// hasScope reports whether a scope value names at least one selector.
func hasScope(n *jsonNode) bool {
	switch n.Kind {
	case jsonString:
		return n.Str != ""
	case jsonArray:
		return len(n.Items) > 0
	}
	return false
}

func content(li *lineIndex, n *jsonNode) string {
	return li.content[n.Start:n.End]
}

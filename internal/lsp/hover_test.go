package lsp

import (
	"strings"
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func hoverMarkdown(t *testing.T, h *protocol.Hover) string {
	t.Helper()
	if h == nil {
		t.Fatal("expected non-nil hover result")
	}
	mc, ok := h.Contents.(protocol.MarkupContent)
	if !ok {
		t.Fatalf("expected MarkupContent, got %T", h.Contents)
	}
	if mc.Kind != protocol.MarkupKindMarkdown {
		t.Errorf("expected markdown kind, got %q", mc.Kind)
	}
	return mc.Value
}

func TestHover_TokenForeground(t *testing.T) {
	result := Analyze("theme.json", validThemeJSON)

	// Inside "#c792ea" of the Keyword rule.
	h := hover(result, validThemeJSON, protocol.Position{Line: 21, Character: 25})
	value := hoverMarkdown(t, h)

	for _, want := range []string{
		"**Keyword.foreground**",
		"`#c792ea`",
		"`rgb(199, 146, 234)`",
		"Contrast on `#1a1b26`: **7.10:1** (AAA)",
	} {
		if !strings.Contains(value, want) {
			t.Errorf("hover should contain %q, got:\n%s", want, value)
		}
	}
	if h.Range == nil || h.Range.Start.Character != 22 {
		t.Errorf("hover range = %+v, want the color literal", h.Range)
	}
}

func TestHover_LowContrast(t *testing.T) {
	result := Analyze("theme.json", validThemeJSON)

	// Inside "#5c6370" of the Comment rule.
	value := hoverMarkdown(t, hover(result, validThemeJSON, protocol.Position{Line: 13, Character: 26}))
	if !strings.Contains(value, "**2.83:1** (Fail)") {
		t.Errorf("expected a failing contrast line, got:\n%s", value)
	}
}

func TestHover_BackgroundHasNoContrastLine(t *testing.T) {
	result := Analyze("theme.json", validThemeJSON)

	value := hoverMarkdown(t, hover(result, validThemeJSON, protocol.Position{Line: 4, Character: 27}))
	if !strings.Contains(value, "**editor.background**") {
		t.Errorf("expected key title, got:\n%s", value)
	}
	if strings.Contains(value, "Contrast") {
		t.Errorf("background should not be rated against itself, got:\n%s", value)
	}
}

func TestHover_ConfigReference(t *testing.T) {
	result := Analyze("midnightdark.hcl", validConfigHCL)

	var ref *ColorLocation
	for i, cl := range result.Colors {
		if cl.IsRef {
			ref = &result.Colors[i]
			break
		}
	}
	if ref == nil {
		t.Fatal("expected a palette reference color location")
	}

	pos := protocol.Position{Line: ref.Range.Start.Line, Character: ref.Range.Start.Character + 2}
	value := hoverMarkdown(t, hover(result, validConfigHCL, pos))
	if !strings.Contains(value, "**palette.background**") {
		t.Errorf("hover should show the reference text, got:\n%s", value)
	}
	if !strings.Contains(value, "rgb(26, 27, 38)") {
		t.Errorf("hover should show rgb, got:\n%s", value)
	}
}

func TestHover_NoColor(t *testing.T) {
	result := Analyze("theme.json", validThemeJSON)
	if h := hover(result, validThemeJSON, protocol.Position{Line: 1, Character: 4}); h != nil {
		t.Errorf("expected nil hover outside colors, got %+v", h)
	}
	if h := hover(nil, validThemeJSON, protocol.Position{}); h != nil {
		t.Errorf("expected nil hover without analysis")
	}
}

package lsp

import (
	"slices"
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func labels(items []protocol.CompletionItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Label)
	}
	return out
}

func TestComplete_ThemeRootKeys(t *testing.T) {
	content := "{\n  \n  \"name\": \"x\"\n}\n"
	result := Analyze("theme.json", content)

	items := complete(result, content, protocol.Position{Line: 1, Character: 2})
	got := labels(items)
	want := []string{"type", "colors", "tokenColors"}
	if !slices.Equal(got, want) {
		t.Fatalf("labels = %v, want %v", got, want)
	}
	if items[0].InsertText == nil || *items[0].InsertText != `"type": ` {
		t.Errorf("expected a quoted key insert, got %v", items[0].InsertText)
	}
}

func TestComplete_ThemeRootKeysInsideString(t *testing.T) {
	content := "{\n  \"name\": \"x\",\n  \"\"\n}\n"

	items := complete(nil, content, protocol.Position{Line: 2, Character: 3})
	if len(items) != 4 {
		t.Fatalf("expected all 4 root keys when the document does not parse, got %v", labels(items))
	}
	for _, item := range items {
		if item.InsertText != nil {
			t.Errorf("%s: no insert text expected inside a string", item.Label)
		}
	}
}

func TestComplete_ThemeColorKeys(t *testing.T) {
	content := "{\n  \"colors\": {\n    \"editor.background\": \"#1a1b26\",\n    \n  }\n}\n"
	result := &AnalysisResult{
		Kind:          kindTheme,
		DefinedColors: map[string]bool{"editor.background": true},
	}

	items := complete(result, content, protocol.Position{Line: 3, Character: 4})
	got := labels(items)
	if len(got) != 13 {
		t.Fatalf("expected 13 essential colors, got %d: %v", len(got), got)
	}
	if slices.Contains(got, "editor.background") {
		t.Error("defined color should not be offered")
	}
	if got[0] != "editor.foreground" {
		t.Errorf("first item = %q, want editor.foreground", got[0])
	}
	if k := items[0].Kind; k == nil || *k != protocol.CompletionItemKindColor {
		t.Errorf("expected color kind")
	}
}

func TestComplete_ThemeSettingsKeys(t *testing.T) {
	content := "{\n  \"tokenColors\": [\n    {\n      \"name\": \"x\",\n      \"settings\": {\n        \n      }\n    }\n  ]\n}\n"

	got := labels(complete(nil, content, protocol.Position{Line: 5, Character: 8}))
	want := []string{"foreground", "background", "fontStyle"}
	if !slices.Equal(got, want) {
		t.Errorf("labels = %v, want %v", got, want)
	}
}

func TestComplete_ThemeFontStyle(t *testing.T) {
	content := "{\n  \"tokenColors\": [\n    {\n      \"settings\": {\n        \"fontStyle\": \"\"\n      }\n    }\n  ]\n}\n"

	got := labels(complete(nil, content, protocol.Position{Line: 4, Character: 22}))
	want := []string{"italic", "bold", "underline", "strikethrough"}
	if !slices.Equal(got, want) {
		t.Errorf("labels = %v, want %v", got, want)
	}
}

func TestComplete_ThemeNothingInValues(t *testing.T) {
	content := "{\n  \"name\": \"\"\n}\n"
	if items := complete(nil, content, protocol.Position{Line: 1, Character: 11}); len(items) != 0 {
		t.Errorf("expected no completions in a name value, got %v", labels(items))
	}
}

func TestScanToCursor_SkipsComments(t *testing.T) {
	content := "{\n  // \"colors\": {\n  /* { */\n  "
	cur := scanToCursor(content, len(content))
	if len(cur.stack) != 1 {
		t.Fatalf("comments should not open containers, stack = %+v", cur.stack)
	}
	if !cur.atKey() {
		t.Error("expected key position")
	}
}

func TestComplete_ConfigPaletteReference(t *testing.T) {
	content := validConfigHCL + "thresholds {\n  min_ui_colors = palette.\n}\n"
	result := Analyze("midnightdark.hcl", validConfigHCL)

	items := complete(result, content, protocol.Position{Line: 14, Character: 26})
	got := labels(items)
	want := []string{"background", "muted", "primary"}
	if !slices.Equal(got, want) {
		t.Fatalf("labels = %v, want %v", got, want)
	}
	if items[0].Detail == nil || *items[0].Detail != "#1a1b26" {
		t.Errorf("expected hex detail, got %v", items[0].Detail)
	}
}

func TestComplete_ConfigValuePosition(t *testing.T) {
	content := "palette {\n  accent = \n}\n"
	result := &AnalysisResult{Kind: kindConfig}

	got := labels(complete(result, content, protocol.Position{Line: 1, Character: 11}))
	want := []string{"brighten", "darken", "palette"}
	if !slices.Equal(got, want) {
		t.Errorf("labels = %v, want %v", got, want)
	}
}

func TestComplete_ConfigBlocks(t *testing.T) {
	result := &AnalysisResult{Kind: kindConfig}

	tests := []struct {
		name    string
		content string
		pos     protocol.Position
		want    []string
	}{
		{
			name:    "root",
			content: "theme = \"t.json\"\n\n",
			pos:     protocol.Position{Line: 1, Character: 0},
			want:    []string{"manifest", "type", "clean", "palette", "thresholds", "files", "contrast", "completeness"},
		},
		{
			name:    "contrast",
			content: "contrast {\n  \n}\n",
			pos:     protocol.Position{Line: 1, Character: 2},
			want:    []string{"min_ratio", "editor", "pair"},
		},
		{
			name:    "editor",
			content: "contrast {\n  editor {\n    background = \"a\"\n    \n  }\n}\n",
			pos:     protocol.Position{Line: 3, Character: 4},
			want:    []string{"foreground", "fallback_background", "fallback_foreground"},
		},
		{
			name:    "palette",
			content: "palette {\n  \n}\n",
			pos:     protocol.Position{Line: 1, Character: 2},
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := labels(complete(result, tt.content, tt.pos))
			if len(tt.want) == 0 && len(got) == 0 {
				return
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("labels = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetermineBlock(t *testing.T) {
	lines := splitLines("contrast {\n  pair \"panel\" {\n    background = \"a\"\n  }\n  \n}\n")

	tests := []struct {
		line int
		want string
	}{
		{0, "contrast"},
		{2, "pair"},
		{4, "contrast"},
		{6, ""},
	}
	for _, tt := range tests {
		if got := determineBlock(lines, tt.line); got != tt.want {
			t.Errorf("determineBlock(line %d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

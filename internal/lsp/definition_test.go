package lsp

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestPaletteRefAtCursor(t *testing.T) {
	tests := []struct {
		line string
		char uint32
		want string
	}{
		{"  bg = palette.background", 9, "palette.background"},
		{"  bg = palette.background", 20, "palette.background"},
		{"  bg = darken(palette.primary, 0.2)", 16, "palette.primary"},
		{"  bg = palette.background", 3, ""},
		{"  bg = palette.", 10, ""},
		{"  bg = palette.a.b", 10, ""},
		{"  bg = palette.background", 40, ""},
	}

	for _, tt := range tests {
		if got := paletteRefAtCursor(tt.line, tt.char); got != tt.want {
			t.Errorf("paletteRefAtCursor(%q, %d) = %q, want %q", tt.line, tt.char, got, tt.want)
		}
	}
}

func TestDefinition(t *testing.T) {
	uri := "file:///project/midnightdark.hcl"
	result := Analyze(uri, validConfigHCL)

	tests := []struct {
		name     string
		pos      protocol.Position
		wantLine uint32
		found    bool
	}{
		{"fallback reference", protocol.Position{Line: 10, Character: 30}, 4, true},
		{"function argument", protocol.Position{Line: 5, Character: 24}, 3, true},
		{"attribute name", protocol.Position{Line: 10, Character: 6}, 0, false},
		{"past last line", protocol.Position{Line: 40, Character: 0}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := definition(result, validConfigHCL, uri, tt.pos)
			if !tt.found {
				if loc != nil {
					t.Errorf("expected no location, got %+v", loc)
				}
				return
			}
			if loc == nil {
				t.Fatal("expected a location")
			}
			if string(loc.URI) != uri {
				t.Errorf("URI = %q", loc.URI)
			}
			if loc.Range.Start.Line != tt.wantLine || loc.Range.Start.Character != 2 {
				t.Errorf("definition at %+v, want %d:2", loc.Range.Start, tt.wantLine)
			}
		})
	}
}

func TestDefinition_UndefinedEntry(t *testing.T) {
	content := "contrast {\n  editor {\n    fallback_background = palette.nope\n  }\n}\n"
	result := Analyze("midnightdark.hcl", content)

	if loc := definition(result, content, "midnightdark.hcl", protocol.Position{Line: 2, Character: 32}); loc != nil {
		t.Errorf("expected nil for an undefined entry, got %+v", loc)
	}
	if loc := definition(nil, content, "midnightdark.hcl", protocol.Position{}); loc != nil {
		t.Errorf("expected nil without analysis")
	}
}

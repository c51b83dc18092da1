package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Theme != DefaultTheme {
		t.Errorf("Theme = %q, want %q", cfg.Theme, DefaultTheme)
	}
	if cfg.Thresholds.SizeWarn != 100*1024 {
		t.Errorf("SizeWarn = %d, want %d", cfg.Thresholds.SizeWarn, 100*1024)
	}
	if cfg.Thresholds.ParseWarn != 10*time.Millisecond {
		t.Errorf("ParseWarn = %v, want 10ms", cfg.Thresholds.ParseWarn)
	}
	if len(cfg.EssentialColors) != 14 {
		t.Errorf("len(EssentialColors) = %d, want 14", len(cfg.EssentialColors))
	}
	if len(cfg.Contrast.Pairs) != 4 {
		t.Errorf("len(Contrast.Pairs) = %d, want 4", len(cfg.Contrast.Pairs))
	}
	if cfg.Palette[0].Name != "primary" || cfg.Palette[0].Hex != "#c792ea" {
		t.Errorf("Palette[0] = %+v, want primary #c792ea", cfg.Palette[0])
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestParseHCL(t *testing.T) {
	src := `
theme = "themes/other.json"
type  = "light"
clean = ["*.vsix"]

thresholds {
  min_ui_colors = 20
  parse_warn_ms = 25
}

files {
  required = ["README.md"]
}

contrast {
  min_ratio = 7

  editor {
    fallback_background = "#000000"
  }

  pair "panel" {
    background = "panel.background"
    foreground = "panel.foreground"
  }
}

completeness {
  scopes = ["comment", "string"]
}

palette {
  primary = "#C792EA"
  muted   = darken(palette.primary, 0.2)
  glow    = brighten("#808080", 0.1)
}
`
	cfg, err := ParseHCL([]byte(src), "midnightdark.hcl")
	if err != nil {
		t.Fatalf("ParseHCL() error: %v", err)
	}

	if cfg.Theme != "themes/other.json" {
		t.Errorf("Theme = %q", cfg.Theme)
	}
	if cfg.Type != "light" {
		t.Errorf("Type = %q", cfg.Type)
	}
	if cfg.Manifest != DefaultManifest {
		t.Errorf("Manifest = %q, want default", cfg.Manifest)
	}
	if cfg.Thresholds.MinUIColors != 20 {
		t.Errorf("MinUIColors = %d, want 20", cfg.Thresholds.MinUIColors)
	}
	if cfg.Thresholds.MinTokenRules != DefaultMinTokenRules {
		t.Errorf("MinTokenRules = %d, want default", cfg.Thresholds.MinTokenRules)
	}
	if cfg.Thresholds.ParseWarn != 25*time.Millisecond {
		t.Errorf("ParseWarn = %v", cfg.Thresholds.ParseWarn)
	}
	if got := strings.Join(cfg.Files.Required, ","); got != "README.md" {
		t.Errorf("Files.Required = %q", got)
	}
	if len(cfg.Files.Optional) != 3 {
		t.Errorf("Files.Optional should keep defaults, got %v", cfg.Files.Optional)
	}
	if last := cfg.Files.Build[len(cfg.Files.Build)-1]; last != "themes/other.json" {
		t.Errorf("Files.Build should follow the theme path, got %q", last)
	}
	if cfg.Contrast.MinRatio != 7 {
		t.Errorf("MinRatio = %v", cfg.Contrast.MinRatio)
	}
	if cfg.Contrast.Editor.FallbackBackground != "#000000" {
		t.Errorf("Editor.FallbackBackground = %q", cfg.Contrast.Editor.FallbackBackground)
	}
	if cfg.Contrast.Editor.Background != "editor.background" {
		t.Errorf("Editor.Background = %q, want default", cfg.Contrast.Editor.Background)
	}
	if len(cfg.Contrast.Pairs) != 1 || cfg.Contrast.Pairs[0].Name != "panel" {
		t.Errorf("Contrast.Pairs = %+v", cfg.Contrast.Pairs)
	}
	if len(cfg.CommonScopes) != 2 {
		t.Errorf("CommonScopes = %v", cfg.CommonScopes)
	}
	if len(cfg.EssentialColors) != 14 {
		t.Errorf("EssentialColors should keep defaults, got %d", len(cfg.EssentialColors))
	}

	wantNames := []string{"primary", "muted", "glow"}
	if len(cfg.Palette) != len(wantNames) {
		t.Fatalf("Palette = %+v", cfg.Palette)
	}
	for i, want := range wantNames {
		if cfg.Palette[i].Name != want {
			t.Errorf("Palette[%d].Name = %q, want %q", i, cfg.Palette[i].Name, want)
		}
	}
	if cfg.Palette[0].Hex != "#c792ea" {
		t.Errorf("Palette[0].Hex = %q, want normalized #c792ea", cfg.Palette[0].Hex)
	}
	if cfg.Palette[2].Hex != "#999999" {
		t.Errorf("Palette[2].Hex = %q, want #999999", cfg.Palette[2].Hex)
	}
}

func TestParseHCLPaletteReferences(t *testing.T) {
	src := `
contrast {
  editor {
    fallback_background = palette.background
    fallback_foreground = brighten(palette.text, 0.1)
  }
}

palette {
  background = "#1a1b26"
  text       = "#808080"
}
`
	cfg, err := ParseHCL([]byte(src), "midnightdark.hcl")
	if err != nil {
		t.Fatalf("ParseHCL() error: %v", err)
	}
	if got := cfg.Contrast.Editor.FallbackBackground; got != "#1a1b26" {
		t.Errorf("FallbackBackground = %q, want #1a1b26", got)
	}
	if got := cfg.Contrast.Editor.FallbackForeground; got != "#999999" {
		t.Errorf("FallbackForeground = %q, want #999999", got)
	}
}

func TestParseHCLUnknownPaletteReference(t *testing.T) {
	src := "contrast {\n  editor {\n    fallback_background = palette.missing\n  }\n}\n"
	if _, err := ParseHCL([]byte(src), "test.hcl"); err == nil {
		t.Fatal("expected error for undefined palette reference")
	}
}

func TestParseHCLErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"syntax error", `theme = `, "parsing HCL"},
		{"unknown attribute", `colour = "x"`, "decoding config"},
		{"bad palette color", "palette {\n  a = \"#12\"\n}", "palette.a"},
		{"forward palette reference", "palette {\n  a = palette.b\n  b = \"#ffffff\"\n}", "palette.a"},
		{"nested palette block", "palette {\n  group {\n    a = \"#ffffff\"\n  }\n}", "nested blocks"},
		{"ratio out of range", "contrast {\n  min_ratio = 30\n}", "min_ratio"},
		{"pair without label", "contrast {\n  pair {\n    background = \"a\"\n    foreground = \"b\"\n  }\n}", "decoding config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHCL([]byte(tt.src), "test.hcl")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.want)
			}
		})
	}
}

func TestParseTOML(t *testing.T) {
	src := `
manifest = "ext/package.json"

[thresholds]
consistency = 50.0
size_warn_kb = 200

[[contrast.pair]]
name = "terminal"
background = "terminal.background"
foreground = "terminal.foreground"

[palette]
secondary = "#89DDFF"
primary = "#c792ea"
`
	cfg, err := ParseTOML([]byte(src))
	if err != nil {
		t.Fatalf("ParseTOML() error: %v", err)
	}

	if cfg.Manifest != "ext/package.json" {
		t.Errorf("Manifest = %q", cfg.Manifest)
	}
	if cfg.Thresholds.Consistency != 50 {
		t.Errorf("Consistency = %v", cfg.Thresholds.Consistency)
	}
	if cfg.Thresholds.SizeWarn != 200*1024 {
		t.Errorf("SizeWarn = %d", cfg.Thresholds.SizeWarn)
	}
	if len(cfg.Contrast.Pairs) != 1 || cfg.Contrast.Pairs[0].Background != "terminal.background" {
		t.Errorf("Contrast.Pairs = %+v", cfg.Contrast.Pairs)
	}
	if len(cfg.Palette) != 2 || cfg.Palette[0].Name != "primary" || cfg.Palette[1].Hex != "#89ddff" {
		t.Errorf("Palette = %+v, want sorted by name and normalized", cfg.Palette)
	}
}

func TestParseTOMLUnknownKey(t *testing.T) {
	if _, err := ParseTOML([]byte(`colour = "x"`)); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestLoadProject(t *testing.T) {
	t.Run("no config uses defaults", func(t *testing.T) {
		cfg, path, err := LoadProject(t.TempDir(), "")
		if err != nil {
			t.Fatalf("LoadProject() error: %v", err)
		}
		if path != "" {
			t.Errorf("path = %q, want empty", path)
		}
		if cfg.Theme != DefaultTheme {
			t.Errorf("Theme = %q", cfg.Theme)
		}
	})

	t.Run("hcl found before toml", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "midnightdark.toml", `type = "light"`)
		hclPath := writeFile(t, dir, "midnightdark.hcl", `type = "hc"`)

		cfg, path, err := LoadProject(dir, "")
		if err != nil {
			t.Fatalf("LoadProject() error: %v", err)
		}
		if path != hclPath {
			t.Errorf("path = %q, want %q", path, hclPath)
		}
		if cfg.Type != "hc" {
			t.Errorf("Type = %q, want hc", cfg.Type)
		}
	})

	t.Run("explicit path must exist", func(t *testing.T) {
		dir := t.TempDir()
		if _, _, err := LoadProject(dir, filepath.Join(dir, "nope.hcl")); err == nil {
			t.Error("expected error for missing explicit config")
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "config.yaml", "type: dark")
		if _, err := Load(path); err == nil {
			t.Error("expected error for .yaml config")
		}
	})
}

// Package vscode models the two JSON documents a VS Code theme extension
// ships: the color theme descriptor and the extension manifest.
package vscode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jsvensson/midnightdark/internal/color"
)

// RequiredThemeKeys are the top-level keys every theme descriptor must carry.
var RequiredThemeKeys = []string{"name", "type", "colors", "tokenColors"}

// Theme is a parsed color theme descriptor.
type Theme struct {
	Name        string
	Type        string
	Colors      map[string]string
	TokenColors []TokenColor

	// Raw holds every top-level key as found in the document.
	Raw Object
}

// TokenColor is one entry of tokenColors.
type TokenColor struct {
	Name     string
	Scope    Scopes
	Settings TokenSettings

	Raw Object
}

// TokenSettings is the settings object of a token color rule.
type TokenSettings struct {
	Foreground string `json:"foreground,omitempty"`
	Background string `json:"background,omitempty"`
	FontStyle  string `json:"fontStyle,omitempty"`
}

// Scopes holds a rule's scope selectors. VS Code accepts either a single
// string or an array of strings; any other value is kept as Other.
type Scopes struct {
	Values []string
	List   bool
	Other  bool // neither a string nor an array, so no usable selectors
}

func (s *Scopes) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch kindOf(data) {
	case KindString:
		var one string
		if err := json.Unmarshal(data, &one); err != nil {
			return err
		}
		*s = Scopes{Values: []string{one}}
	case KindArray:
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		s.List = true
		s.Values = s.Values[:0]
		for _, item := range items {
			var v string
			if json.Unmarshal(item, &v) == nil {
				s.Values = append(s.Values, v)
			}
		}
	case KindNull, KindMissing:
		*s = Scopes{}
	default:
		*s = Scopes{Other: true}
	}
	return nil
}

// Count returns the number of selectors. A string scope counts as one.
func (s Scopes) Count() int {
	if s.List {
		return len(s.Values)
	}
	return 1
}

// Contains reports whether any selector contains sub.
func (s Scopes) Contains(sub string) bool {
	for _, v := range s.Values {
		if strings.Contains(v, sub) {
			return true
		}
	}
	return false
}

// Has reports whether any selector equals scope exactly.
func (s Scopes) Has(scope string) bool {
	for _, v := range s.Values {
		if v == scope {
			return true
		}
	}
	return false
}

// HasName reports whether the rule has a non-empty name.
func (tc TokenColor) HasName() bool {
	return tc.Raw.Present("name")
}

// HasScope reports whether the rule has a non-empty scope. A scope of
// another JSON type is truthy, so it counts even though it names nothing.
func (tc TokenColor) HasScope() bool {
	return tc.Raw.Present("scope") && (tc.Scope.Other || len(tc.Scope.Values) > 0)
}

// HasSettings reports whether the rule has a settings object.
func (tc TokenColor) HasSettings() bool {
	return tc.Raw.Present("settings")
}

// Label names the rule in messages: its name, or its index when unnamed.
func (tc TokenColor) Label(index int) string {
	if tc.Name != "" {
		return tc.Name
	}
	return fmt.Sprintf("#%d", index)
}

// Style resolves the rule's foreground and fontStyle.
func (tc TokenColor) Style() (color.Style, error) {
	c, err := color.ParseThemeHex(tc.Settings.Foreground)
	if err != nil {
		return color.Style{}, err
	}
	style := color.Style{Color: c}
	for _, f := range strings.Fields(tc.Settings.FontStyle) {
		switch f {
		case "bold":
			style.Bold = true
		case "italic":
			style.Italic = true
		case "underline":
			style.Underline = true
		case "strikethrough":
			style.Strikethrough = true
		}
	}
	return style, nil
}

// LoadTheme reads and parses a theme descriptor from disk.
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}
	return ParseTheme(data)
}

// ParseTheme parses a theme descriptor. Only malformed JSON or a non-object
// document is an error; missing or mistyped keys are left for the caller to
// inspect through Raw.
func ParseTheme(data []byte) (*Theme, error) {
	var raw Object
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing theme JSON: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("parsing theme JSON: document is not an object")
	}

	t := &Theme{
		Colors: make(map[string]string),
		Raw:    raw,
	}
	t.Name, _ = raw.String("name")
	t.Type, _ = raw.String("type")

	if colors, ok := raw.Object("colors"); ok {
		for key := range colors {
			if s, ok := colors.String(key); ok {
				t.Colors[key] = s
			}
		}
	}

	if raw.Kind("tokenColors") == KindArray {
		var items []json.RawMessage
		if err := json.Unmarshal(raw["tokenColors"], &items); err != nil {
			return nil, fmt.Errorf("parsing tokenColors: %w", err)
		}
		for _, item := range items {
			t.TokenColors = append(t.TokenColors, parseTokenColor(item))
		}
	}

	return t, nil
}

// parseTokenColor never fails: values of the wrong type are dropped from
// the typed fields and stay visible through Raw.
func parseTokenColor(data json.RawMessage) TokenColor {
	var tc TokenColor
	if kindOf(data) != KindObject || json.Unmarshal(data, &tc.Raw) != nil {
		// Non-object rules carry nothing; the checks report them as
		// missing name, scope and settings.
		tc.Raw = Object{}
		return tc
	}
	tc.Name, _ = tc.Raw.String("name")
	if v, ok := tc.Raw["scope"]; ok {
		_ = tc.Scope.UnmarshalJSON(v)
	}
	if settings, ok := tc.Raw.Object("settings"); ok {
		tc.Settings.Foreground, _ = settings.String("foreground")
		tc.Settings.Background, _ = settings.String("background")
		tc.Settings.FontStyle, _ = settings.String("fontStyle")
	}
	return tc
}

// Color resolves a UI color key.
func (t *Theme) Color(key string) (color.Color, bool) {
	v, ok := t.Colors[key]
	if !ok {
		return color.Color{}, false
	}
	c, err := color.ParseThemeHex(v)
	if err != nil {
		return color.Color{}, false
	}
	return c, true
}

// ColorOr resolves a UI color key, falling back to a hex literal.
func (t *Theme) ColorOr(key, fallback string) (color.Color, bool) {
	v, ok := t.Colors[key]
	if !ok || v == "" {
		v = fallback
	}
	c, err := color.ParseThemeHex(v)
	if err != nil {
		return color.Color{}, false
	}
	return c, true
}

// TotalScopes counts scope selectors over all rules.
func (t *Theme) TotalScopes() int {
	total := 0
	for _, tc := range t.TokenColors {
		total += tc.Scope.Count()
	}
	return total
}

// UsedColors returns the set of lowercased #rrggbb bases referenced by UI
// colors and token foregrounds.
func (t *Theme) UsedColors() map[string]bool {
	used := make(map[string]bool)
	for _, v := range t.Colors {
		if base, ok := color.BaseHex(v); ok {
			used[base] = true
		}
	}
	for _, tc := range t.TokenColors {
		if base, ok := color.BaseHex(tc.Settings.Foreground); ok {
			used[base] = true
		}
	}
	return used
}

// TokenFor returns the last rule whose selectors contain scope exactly,
// mirroring VS Code where later rules win.
func (t *Theme) TokenFor(scope string) (TokenColor, bool) {
	for i := len(t.TokenColors) - 1; i >= 0; i-- {
		if t.TokenColors[i].Scope.Has(scope) {
			return t.TokenColors[i], true
		}
	}
	return TokenColor{}, false
}

// ColorCount counts the keys of the colors object, whatever their values.
func (t *Theme) ColorCount() int {
	colors, _ := t.Raw.Object("colors")
	return len(colors)
}

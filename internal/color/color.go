package color

import (
	"fmt"
	"strings"
)

// Color represents an RGB color. The R, G, B uint8 fields are the source of truth;
// all output formats are derived from them.
type Color struct {
	R, G, B uint8
}

// Style represents a token color rule's resolved color and font styles.
type Style struct {
	Color         Color
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
}

// ParseHex parses a hex color string like "#eb6f92" into a Color.
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q: must be 6 hex digits", s)
	}
	var r, g, b uint8
	_, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return Color{R: r, G: g, B: b}, nil
}

// ParseThemeHex parses a color value as VS Code accepts it in theme files:
// #rgb, #rgba, #rrggbb or #rrggbbaa. The alpha channel is discarded.
func ParseThemeHex(s string) (Color, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(raw) {
	case 3, 4:
		var b strings.Builder
		for _, ch := range raw[:3] {
			b.WriteRune(ch)
			b.WriteRune(ch)
		}
		raw = b.String()
	case 6:
	case 8:
		raw = raw[:6]
	default:
		return Color{}, fmt.Errorf("invalid theme color %q: must be 3, 4, 6 or 8 hex digits", s)
	}
	for _, ch := range raw {
		if !isHexDigit(ch) {
			return Color{}, fmt.Errorf("invalid theme color %q: non-hex character %q", s, ch)
		}
	}
	return ParseHex(raw)
}

// BaseHex returns the lowercased #rrggbb part of a theme color string,
// dropping any alpha suffix. ok is false when s is not a # color.
func BaseHex(s string) (base string, ok bool) {
	if !strings.HasPrefix(s, "#") {
		return "", false
	}
	if len(s) > 7 {
		s = s[:7]
	}
	return strings.ToLower(s), true
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// Hex returns the color as a hex string with leading #, e.g. "#eb6f92".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// HexBare returns the color as a hex string without leading #, e.g. "eb6f92".
func (c Color) HexBare() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// RGB returns the color as an rgb() string, e.g. "rgb(235, 111, 146)".
func (c Color) RGB() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

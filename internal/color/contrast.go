package color

import "math"

// WCAG 2.x conformance thresholds for normal and large text.
const (
	RatioAAA     = 7.0
	RatioAA      = 4.5
	RatioAALarge = 3.0
)

// Level is the WCAG conformance level reached by a contrast ratio.
type Level int

const (
	LevelFail Level = iota
	LevelAALarge
	LevelAA
	LevelAAA
)

func (l Level) String() string {
	switch l {
	case LevelAAA:
		return "AAA"
	case LevelAA:
		return "AA"
	case LevelAALarge:
		return "AA Large"
	default:
		return "Fail"
	}
}

// LevelFor classifies a contrast ratio.
func LevelFor(ratio float64) Level {
	switch {
	case ratio >= RatioAAA:
		return LevelAAA
	case ratio >= RatioAA:
		return LevelAA
	case ratio >= RatioAALarge:
		return LevelAALarge
	default:
		return LevelFail
	}
}

// Luminance returns the WCAG relative luminance of c in [0, 1].
func Luminance(c Color) float64 {
	return 0.2126*wcagLinear(c.R) + 0.7152*wcagLinear(c.G) + 0.0722*wcagLinear(c.B)
}

// wcagLinear linearizes an sRGB channel using the WCAG 2.x threshold (0.03928),
// not the IEC 0.04045 used by srgbToLinear.
func wcagLinear(v uint8) float64 {
	c := float64(v) / 255.0
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// ContrastRatio returns the WCAG contrast ratio between two colors, in [1, 21].
// The argument order does not matter.
func ContrastRatio(a, b Color) float64 {
	la, lb := Luminance(a), Luminance(b)
	lighter := math.Max(la, lb)
	darker := math.Min(la, lb)
	return (lighter + 0.05) / (darker + 0.05)
}

// SuggestForeground walks the OKLCH lightness of fg away from bg until the
// pair reaches minRatio, keeping hue and chroma. ok is false if no lightness
// in range satisfies the ratio.
func SuggestForeground(fg, bg Color, minRatio float64) (Color, bool) {
	if ContrastRatio(fg, bg) >= minRatio {
		return fg, true
	}

	l, _, _ := RGBToOKLCH(fg)
	step := 0.01
	if Luminance(bg) > 0.5 {
		step = -step
	}

	for cur := l + step; cur >= 0 && cur <= 1; cur += step {
		candidate := StepLightness(fg, cur)
		if ContrastRatio(candidate, bg) >= minRatio {
			return candidate, true
		}
	}
	return fg, false
}

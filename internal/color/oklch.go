package color

import "math"

// RGBToOKLCH converts an sRGB Color to OKLCH components.
// L is lightness [0, 1], chroma is colorfulness [0, ~0.37], hue is in degrees [0, 360).
func RGBToOKLCH(c Color) (l, chroma, hue float64) {
	L, a, b := linearRGBToOKLAB(
		srgbToLinear(float64(c.R)/255.0),
		srgbToLinear(float64(c.G)/255.0),
		srgbToLinear(float64(c.B)/255.0),
	)

	chroma = math.Hypot(a, b)
	hue = math.Mod(math.Atan2(b, a)*180.0/math.Pi+360.0, 360.0)
	return L, chroma, hue
}

// OKLCHToRGB converts OKLCH components to an sRGB Color, clamping out-of-gamut
// channels.
func OKLCHToRGB(l, chroma, hue float64) Color {
	rad := hue * math.Pi / 180.0
	lr, lg, lb := oklabToLinearRGB(l, chroma*math.Cos(rad), chroma*math.Sin(rad))

	return Color{
		R: to8bit(linearToSRGB(clamp01(lr))),
		G: to8bit(linearToSRGB(clamp01(lg))),
		B: to8bit(linearToSRGB(clamp01(lb))),
	}
}

// StepLightness returns c with the given absolute OKLCH lightness, preserving
// hue and chroma. Lightness should be in [0, 1].
func StepLightness(c Color, lightness float64) Color {
	_, chroma, hue := RGBToOKLCH(c)
	return OKLCHToRGB(lightness, chroma, hue)
}

func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func linearToSRGB(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}

func linearRGBToOKLAB(r, g, b float64) (L, A, B float64) {
	l := math.Cbrt(0.4122214708*r + 0.5363325363*g + 0.0514459929*b)
	m := math.Cbrt(0.2119034982*r + 0.6806995451*g + 0.1073969566*b)
	s := math.Cbrt(0.0883024619*r + 0.2817188376*g + 0.6299787005*b)

	L = 0.2104542553*l + 0.7936177850*m - 0.0040720468*s
	A = 1.9779984951*l - 2.4285922050*m + 0.4505937099*s
	B = 0.0259040371*l + 0.7827717662*m - 0.8086757660*s
	return L, A, B
}

func oklabToLinearRGB(L, a, b float64) (r, g, bl float64) {
	l := L + 0.3963377774*a + 0.2158037573*b
	m := L - 0.1055613458*a - 0.0638541728*b
	s := L - 0.0894841775*a - 1.2914855480*b
	l, m, s = l*l*l, m*m*m, s*s*s

	r = +4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g = -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	bl = -0.0041960863*l - 0.7034186147*m + 1.7076147010*s
	return r, g, bl
}

func to8bit(v float64) uint8 {
	return uint8(math.Round(v * 255.0))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

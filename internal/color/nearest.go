package color

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Distance returns the CIEDE2000 perceptual distance between two colors.
// Identical colors have distance 0; a difference around 0.01 is barely visible.
func Distance(a, b Color) float64 {
	return toColorful(a).DistanceCIEDE2000(toColorful(b))
}

// Nearest returns the candidate closest to target and its distance.
// ok is false when candidates is empty.
func Nearest(target Color, candidates []Color) (best Color, dist float64, ok bool) {
	dist = math.Inf(1)
	for _, c := range candidates {
		if d := Distance(target, c); d < dist {
			best, dist, ok = c, d, true
		}
	}
	return best, dist, ok
}

func toColorful(c Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

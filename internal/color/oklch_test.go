package color

import (
	"math"
	"testing"
)

func absDiffUint8(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

func TestRGBToOKLCH_KnownColors(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		wantL float64
		wantC float64
	}{
		{"black", Color{0, 0, 0}, 0.0, 0.0},
		{"white", Color{255, 255, 255}, 1.0, 0.0},
		{"red", Color{255, 0, 0}, 0.6279, 0.2577},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, c, _ := RGBToOKLCH(tt.color)
			if math.Abs(l-tt.wantL) > 0.01 {
				t.Errorf("L = %v, want %v", l, tt.wantL)
			}
			if math.Abs(c-tt.wantC) > 0.01 {
				t.Errorf("C = %v, want %v", c, tt.wantC)
			}
		})
	}
}

func TestOKLCHRoundTrip(t *testing.T) {
	colors := []Color{
		{26, 27, 38},
		{192, 202, 245},
		{199, 146, 234},
		{240, 113, 120},
	}

	for _, c := range colors {
		t.Run(c.Hex(), func(t *testing.T) {
			got := OKLCHToRGB(RGBToOKLCH(c))
			if absDiffUint8(got.R, c.R) > 1 || absDiffUint8(got.G, c.G) > 1 || absDiffUint8(got.B, c.B) > 1 {
				t.Errorf("round trip %v -> %v", c, got)
			}
		})
	}
}

func TestStepLightness(t *testing.T) {
	c := Color{199, 146, 234}
	lighter := StepLightness(c, 0.9)
	l, _, _ := RGBToOKLCH(lighter)
	if math.Abs(l-0.9) > 0.02 {
		t.Errorf("StepLightness(%v, 0.9) lightness = %v", c, l)
	}
}

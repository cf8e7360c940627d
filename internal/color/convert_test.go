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
		name       string
		r, g, b    uint8
		wantL      float64
		wantC      float64
		wantH      float64
		achromatic bool // skip hue check when chroma is negligible
	}{
		{name: "black", r: 0, g: 0, b: 0, wantL: 0.0, wantC: 0.0, achromatic: true},
		{name: "white", r: 255, g: 255, b: 255, wantL: 1.0, wantC: 0.0, achromatic: true},
		{name: "red", r: 255, wantL: 0.6279, wantC: 0.2577, wantH: 29.23},
		{name: "green (0,128,0)", g: 128, wantL: 0.5196, wantC: 0.1766, wantH: 142.50},
		{name: "blue", b: 255, wantL: 0.4520, wantC: 0.3132, wantH: 264.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, c, h := rgbToOKLCH(tt.r, tt.g, tt.b)

			if math.Abs(l-tt.wantL) > 0.01 {
				t.Errorf("L = %f, want %f", l, tt.wantL)
			}
			if math.Abs(c-tt.wantC) > 0.01 {
				t.Errorf("C = %f, want %f", c, tt.wantC)
			}
			if !tt.achromatic && math.Abs(h-tt.wantH) > 0.6 {
				t.Errorf("H = %f, want %f", h, tt.wantH)
			}
		})
	}
}

func TestOKLCH_Roundtrip(t *testing.T) {
	colors := []Color{
		{R: 255, A: 1},
		{G: 255, A: 1},
		{B: 255, A: 1},
		{R: 128, G: 128, B: 128, A: 1},
		{R: 235, G: 111, B: 146, A: 1},
		{R: 49, G: 116, B: 143, A: 1},
		{R: 156, G: 207, B: 216, A: 1},
	}

	for _, c := range colors {
		l, ch, h := rgbToOKLCH(c.R, c.G, c.B)
		r, g, b := oklchToRGB(l, ch, h)

		if absDiffUint8(r, c.R) > 1 || absDiffUint8(g, c.G) > 1 || absDiffUint8(b, c.B) > 1 {
			t.Errorf("(%d,%d,%d) round-tripped to (%d,%d,%d)", c.R, c.G, c.B, r, g, b)
		}
	}
}

func TestOKLCH_RoundtripExactForGrayscaleAndPrimaries(t *testing.T) {
	colors := [][3]uint8{
		{0, 0, 0}, {255, 255, 255}, {128, 128, 128}, {64, 64, 64},
		{255, 0, 0}, {0, 255, 0}, {0, 0, 255},
		{255, 255, 0}, {0, 255, 255}, {255, 0, 255},
	}

	for _, c := range colors {
		l, ch, h := rgbToOKLCH(c[0], c[1], c[2])
		r, g, b := oklchToRGB(l, ch, h)
		if r != c[0] || g != c[1] || b != c[2] {
			t.Errorf("(%d,%d,%d) round-tripped to (%d,%d,%d), want exact", c[0], c[1], c[2], r, g, b)
		}
	}
}

func TestOKLCH_RoundtripSampledCube(t *testing.T) {
	// Sample the sRGB cube at a coarse grid; every sample must round-trip
	// within ±1 per channel.
	for r := 0; r <= 255; r += 17 {
		for g := 0; g <= 255; g += 17 {
			for b := 0; b <= 255; b += 17 {
				l, ch, h := rgbToOKLCH(uint8(r), uint8(g), uint8(b))
				rr, gg, bb := oklchToRGB(l, ch, h)
				if absDiffUint8(rr, uint8(r)) > 1 || absDiffUint8(gg, uint8(g)) > 1 || absDiffUint8(bb, uint8(b)) > 1 {
					t.Fatalf("(%d,%d,%d) round-tripped to (%d,%d,%d)", r, g, b, rr, gg, bb)
				}
			}
		}
	}
}

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name                string
		r, g, b             uint8
		wantH, wantS, wantL float64
	}{
		{name: "red", r: 255, wantH: 0, wantS: 100, wantL: 50},
		{name: "achromatic gray", r: 128, g: 128, b: 128, wantH: 0, wantS: 0, wantL: 50.196},
		{name: "rose", r: 235, g: 111, b: 146, wantH: 343.06, wantS: 75.61, wantL: 67.84},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, l := rgbToHSL(tt.r, tt.g, tt.b)
			if math.Abs(h-tt.wantH) > 0.05 || math.Abs(s-tt.wantS) > 0.05 || math.Abs(l-tt.wantL) > 0.05 {
				t.Errorf("got (%f, %f, %f), want (%f, %f, %f)", h, s, l, tt.wantH, tt.wantS, tt.wantL)
			}
		})
	}
}

func TestHSLToRGB(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		r, g, b uint8
	}{
		{name: "green", h: 120, s: 50, l: 50, r: 64, g: 191, b: 64},
		{name: "sky", h: 210, s: 75, l: 60, r: 76, g: 153, b: 230},
		{name: "achromatic", h: 0, s: 0, l: 50, r: 128, g: 128, b: 128},
		{name: "white", h: 0, s: 0, l: 100, r: 255, g: 255, b: 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := hslToRGB(tt.h, tt.s, tt.l)
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("got (%d,%d,%d), want (%d,%d,%d)", r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestHSL_Roundtrip(t *testing.T) {
	colors := [][3]uint8{
		{235, 111, 146}, {49, 116, 143}, {156, 207, 216}, {64, 191, 64},
	}

	for _, c := range colors {
		h, s, l := rgbToHSL(c[0], c[1], c[2])
		r, g, b := hslToRGB(h, s, l)
		if r != c[0] || g != c[1] || b != c[2] {
			t.Errorf("(%d,%d,%d) round-tripped to (%d,%d,%d)", c[0], c[1], c[2], r, g, b)
		}
	}
}

func TestNormalizeHue(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0}, {360, 0}, {-120, 240}, {480, 120}, {720, 0}, {-360, 0},
	}
	for _, tt := range tests {
		if got := normalizeHue(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("normalizeHue(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

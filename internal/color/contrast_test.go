package color

import (
	"math"
	"testing"
)

func TestLuminance(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  float64
	}{
		{name: "black", color: Color{A: 1}, want: 0},
		{name: "white", color: Color{R: 255, G: 255, B: 255, A: 1}, want: 1},
		{name: "red", color: Color{R: 255, A: 1}, want: 0.2126},
		{name: "mid gray", color: Color{R: 128, G: 128, B: 128, A: 1}, want: 0.2159},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Luminance(tt.color); math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Luminance = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContrastRatio(t *testing.T) {
	black := Color{A: 1}
	white := Color{R: 255, G: 255, B: 255, A: 1}
	red := Color{R: 255, A: 1}
	teal := Color{R: 49, G: 116, B: 143, A: 1}

	cases := []struct {
		name string
		a, b Color
		want float64
	}{
		{name: "black on white", a: black, b: white, want: 21},
		{name: "order independent", a: white, b: black, want: 21},
		{name: "identical", a: red, b: red, want: 1},
		{name: "red on white", a: red, b: white, want: 3.998},
		{name: "teal on white", a: teal, b: white, want: 5.217},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContrastRatio(tt.a, tt.b); math.Abs(got-tt.want) > 0.005 {
				t.Errorf("ContrastRatio = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMeetsAA(t *testing.T) {
	black := Color{A: 1}
	white := Color{R: 255, G: 255, B: 255, A: 1}
	red := Color{R: 255, A: 1}
	teal := Color{R: 49, G: 116, B: 143, A: 1}

	if !MeetsAA(black, white) || !MeetsAAA(black, white) {
		t.Error("black on white must meet AA and AAA")
	}
	if MeetsAA(red, white) {
		t.Error("red on white (≈4.0) must not meet AA")
	}
	if !MeetsAA(teal, white) {
		t.Error("teal on white (≈5.2) must meet AA")
	}
	if MeetsAAA(teal, white) {
		t.Error("teal on white (≈5.2) must not meet AAA")
	}
}

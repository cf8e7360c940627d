package color

import (
	"math"
	"testing"
)

func TestParseHexForms(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{
			name:  "six digit",
			input: "#eb6f92",
			want:  Color{R: 235, G: 111, B: 146, A: 1, Family: FamilyHex, Hints: StyleHints{HexLen: 6}},
		},
		{
			name:  "three digit expands",
			input: "#f0c",
			want:  Color{R: 255, G: 0, B: 204, A: 1, Family: FamilyHex, Hints: StyleHints{HexLen: 3}},
		},
		{
			name:  "four digit carries alpha",
			input: "#f0c8",
			want:  Color{R: 255, G: 0, B: 204, A: 136.0 / 255.0, Family: FamilyHex, Hints: StyleHints{HexLen: 4}},
		},
		{
			name:  "eight digit carries alpha",
			input: "#ff00ccff",
			want:  Color{R: 255, G: 0, B: 204, A: 1, Family: FamilyHex, Hints: StyleHints{HexLen: 8}},
		},
		{
			name:  "uppercase recorded",
			input: "#AABBCC",
			want:  Color{R: 170, G: 187, B: 204, A: 1, Family: FamilyHex, Hints: StyleHints{HexLen: 6, HexUpper: true}},
		},
		{
			name:  "digits only count as lowercase",
			input: "#112233",
			want:  Color{R: 17, G: 34, B: 51, A: 1, Family: FamilyHex, Hints: StyleHints{HexLen: 6}},
		},
		{name: "five digits", input: "#fffff", wantErr: true},
		{name: "seven digits", input: "#fffffff", wantErr: true},
		{name: "bad digit", input: "#zzzzzz", wantErr: true},
		{name: "bare hash", input: "#", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseRGBFunctional(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{
			name:  "legacy commas",
			input: "rgb(235, 111, 146)",
			want:  Color{R: 235, G: 111, B: 146, A: 1, Family: FamilyRGB, Hints: StyleHints{Legacy: true}},
		},
		{
			name:  "legacy rgba with number alpha",
			input: "rgba(255, 0, 0, 0.5)",
			want:  Color{R: 255, G: 0, B: 0, A: 0.5, Family: FamilyRGB, Hints: StyleHints{Legacy: true}},
		},
		{
			name:  "modern spaces",
			input: "rgb(235 111 146)",
			want:  Color{R: 235, G: 111, B: 146, A: 1, Family: FamilyRGB},
		},
		{
			name:  "modern slash percent alpha",
			input: "rgb(255 0 0 / 50%)",
			want:  Color{R: 255, G: 0, B: 0, A: 0.5, Family: FamilyRGB, Hints: StyleHints{AlphaPercent: true}},
		},
		{
			name:  "percent channels map to 0-255",
			input: "rgb(100% 0% 80%)",
			want:  Color{R: 255, G: 0, B: 204, A: 1, Family: FamilyRGB},
		},
		{
			name:  "out of range channels clamp",
			input: "rgb(300 -20 128)",
			want:  Color{R: 255, G: 0, B: 128, A: 1, Family: FamilyRGB},
		},
		{
			name:  "uppercase keyword",
			input: "RGB(1 2 3)",
			want:  Color{R: 1, G: 2, B: 3, A: 1, Family: FamilyRGB},
		},
		{name: "mixed comma and slash", input: "rgb(255, 0, 0 / 0.5)", wantErr: true},
		{name: "mixed comma and space", input: "rgb(255, 0 0)", wantErr: true},
		{name: "two channels", input: "rgb(255 0)", wantErr: true},
		{name: "five comma fields", input: "rgb(1, 2, 3, 4, 5)", wantErr: true},
		{name: "missing paren", input: "rgb(255 0 0", wantErr: true},
		{name: "junk channel", input: "rgb(red 0 0)", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLegacyModernEquivalence(t *testing.T) {
	legacy, err := Parse("rgba(255, 0, 0, 0.5)")
	if err != nil {
		t.Fatalf("legacy parse: %v", err)
	}
	modern, err := Parse("rgb(255 0 0 / 50%)")
	if err != nil {
		t.Fatalf("modern parse: %v", err)
	}

	if legacy.R != modern.R || legacy.G != modern.G || legacy.B != modern.B {
		t.Errorf("channels differ: %+v vs %+v", legacy, modern)
	}
	if math.Abs(legacy.A-modern.A) > 1e-9 {
		t.Errorf("alpha differs: %v vs %v", legacy.A, modern.A)
	}
	if legacy.Hints == modern.Hints {
		t.Error("expected distinct style hints for legacy and modern inputs")
	}
	if !legacy.Hints.Legacy || legacy.Hints.AlphaPercent {
		t.Errorf("legacy hints = %+v", legacy.Hints)
	}
	if modern.Hints.Legacy || !modern.Hints.AlphaPercent {
		t.Errorf("modern hints = %+v", modern.Hints)
	}
}

func TestParseHSL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{
			name:  "modern",
			input: "hsl(120 50% 50%)",
			want:  Color{R: 64, G: 191, B: 64, A: 1, Family: FamilyHSL},
		},
		{
			name:  "legacy hsla",
			input: "hsla(120, 50%, 50%, 0.5)",
			want:  Color{R: 64, G: 191, B: 64, A: 0.5, Family: FamilyHSL, Hints: StyleHints{Legacy: true}},
		},
		{
			name:  "bare saturation and lightness",
			input: "hsl(120 50 50)",
			want:  Color{R: 64, G: 191, B: 64, A: 1, Family: FamilyHSL},
		},
		{
			name:  "negative hue wraps",
			input: "hsl(-120 50% 50%)",
			want:  Color{R: 64, G: 64, B: 191, A: 1, Family: FamilyHSL},
		},
		{
			name:  "hue past 360 wraps",
			input: "hsl(480 50% 50%)",
			want:  Color{R: 64, G: 191, B: 64, A: 1, Family: FamilyHSL},
		},
		{
			name:  "achromatic",
			input: "hsl(0 0% 50%)",
			want:  Color{R: 128, G: 128, B: 128, A: 1, Family: FamilyHSL},
		},
		{
			name:  "saturation clamps",
			input: "hsl(120 150% 50%)",
			want:  Color{R: 0, G: 255, B: 0, A: 1, Family: FamilyHSL},
		},
		{name: "percent hue", input: "hsl(50% 50% 50%)", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseOKLCH(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{
			name:  "modern",
			input: "oklch(70% 0.1 50)",
			want:  Color{R: 209, G: 140, B: 101, A: 1, Family: FamilyOKLCH},
		},
		{
			name:  "percent alpha",
			input: "oklch(70% 0.1 50 / 50%)",
			want:  Color{R: 209, G: 140, B: 101, A: 0.5, Family: FamilyOKLCH, Hints: StyleHints{AlphaPercent: true}},
		},
		{
			name:  "percent chroma maps to reference max",
			input: "oklch(70% 25% 50)",
			want:  Color{R: 209, G: 140, B: 101, A: 1, Family: FamilyOKLCH},
		},
		{
			name:  "oklcha keyword",
			input: "oklcha(70% 0.1 50 / 0.5)",
			want:  Color{R: 209, G: 140, B: 101, A: 0.5, Family: FamilyOKLCH},
		},
		{
			name:  "negative hue wraps",
			input: "oklch(70% 0.1 -310)",
			want:  Color{R: 209, G: 140, B: 101, A: 1, Family: FamilyOKLCH},
		},
		{
			name:  "white at full lightness",
			input: "oklch(100% 0 0)",
			want:  Color{R: 255, G: 255, B: 255, A: 1, Family: FamilyOKLCH},
		},
		{name: "lightness without percent", input: "oklch(0.7 0.1 50)", wantErr: true},
		{name: "negative chroma", input: "oklch(70% -0.1 50)", wantErr: true},
		{name: "comma syntax", input: "oklch(70%, 0.1, 50)", wantErr: true},
		{name: "percent hue", input: "oklch(70% 0.1 50%)", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseNamed(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{
			name:  "rebeccapurple",
			input: "rebeccapurple",
			want:  Color{R: 102, G: 51, B: 153, A: 1, Family: FamilyNamed},
		},
		{
			name:  "case insensitive",
			input: "SteelBlue",
			want:  Color{R: 70, G: 130, B: 180, A: 1, Family: FamilyNamed},
		},
		{
			name:  "surrounding whitespace",
			input: "  tomato  ",
			want:  Color{R: 255, G: 99, B: 71, A: 1, Family: FamilyNamed},
		},
		{name: "unknown keyword", input: "not-a-color", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseAlphaClamped(t *testing.T) {
	c, err := Parse("rgb(0 0 0 / 1.5)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.A != 1 {
		t.Errorf("A = %v, want 1", c.A)
	}

	c, err = Parse("rgb(0 0 0 / -0.5)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.A != 0 {
		t.Errorf("A = %v, want 0", c.A)
	}
}
